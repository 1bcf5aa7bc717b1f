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

// Package pipeline implements the capture half of the application: the
// opening of a V4L2 device through FFmpeg's device demuxer, a dedicated
// packet reader goroutine and the decode/convert loop that turns compressed
// or raw packets into RGB frames for the render side.
//
// The pipeline is two poll loops joined by single-slot handoffs from the
// slot package. The packet reader drains the demuxer as fast as the device
// produces data and publishes the newest packet; the decode loop collects
// whatever packet is current, decodes it and publishes the resulting frame
// to the FrameSink it was given. Neither loop ever blocks on the other;
// when either side falls behind, stale values are displaced and released.
// Displacement is the intended behaviour of a live pipeline and is not
// logged as an error.
//
// Run is synchronous and returns only when the StopSignal is raised or a
// fatal error occurs. The caller is expected to run it on its own
// goroutine.
package pipeline
