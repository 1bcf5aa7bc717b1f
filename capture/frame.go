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

package capture

import (
	"sync/atomic"
)

// Frame is one decoded and colour-converted video frame. Pix is tightly
// packed RGB, three bytes per pixel, Width*Height*3 bytes in total.
//
// A Frame is created once per decode iteration and is never written to
// again after publication. The render side reads it without copying; a new
// frame always replaces the old one, never patches it in place.
type Frame struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewFrame is the preferred method of initialisation of the Frame type.
func NewFrame(width int, height int) *Frame {
	return &Frame{
		Pix:    make([]uint8, width*height*3),
		Width:  width,
		Height: height,
	}
}

// FrameSink is the delivery point for decoded frames. Publish never blocks;
// a frame that is still unconsumed when the next one arrives is displaced
// and returned. Displaced frames are not an error, they are the intended
// backpressure mechanism.
type FrameSink interface {
	Publish(f *Frame) (*Frame, bool)
}

// StopSignal requests the cooperative shutdown of the capture pipeline. It
// is set exactly once, by the owner of the pipeline, and never reset. The
// lifetime of a StopSignal is scoped to a single pipeline run.
type StopSignal struct {
	flag atomic.Bool
}

// Stop the pipeline. Both the packet reader and the decode loop terminate
// within one poll interval of the signal being set.
func (s *StopSignal) Stop() {
	s.flag.Store(true)
}

// Stopped returns true once Stop has been called.
func (s *StopSignal) Stopped() bool {
	return s.flag.Load()
}
