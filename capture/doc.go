// This file is part of Phosphor.
//
// Phosphor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Phosphor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Phosphor.  If not, see <https://www.gnu.org/licenses/>.

// Package capture defines the boundary types of the capture pipeline: the
// format/resolution/framerate model a device advertises, the session Config
// built from it, the decoded Frame and the FrameSink it is delivered to,
// and the StopSignal that ends a session.
//
// Device enumeration itself is not part of this package. Whatever mechanism
// discovers devices and their formats is expected to construct VideoFormat
// values and hand them over; from that point on the types in this package
// are the only contract between the enumeration layer, the decode pipeline
// (package capture/pipeline) and the render side.
package capture
