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

package pipeline

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/tubeglow/phosphor/capture"
	"github.com/tubeglow/phosphor/logger"
)

// converter turns decoded frames into tightly packed RGB. the software
// scale context cannot be created until the pixel format of the stream is
// known, which in turn is not reliable until the first frame has been
// decoded, so creation is deferred until then.
type converter struct {
	scale  *astiav.SoftwareScaleContext
	rgb    *astiav.Frame
	width  int
	height int
}

func (c *converter) convert(src *astiav.Frame) (*capture.Frame, error) {
	if c.scale == nil {
		sc, err := astiav.CreateSoftwareScaleContext(
			src.Width(), src.Height(), src.PixelFormat(),
			src.Width(), src.Height(), astiav.PixelFormatRgb24,
			astiav.NewSoftwareScaleContextFlags(astiav.SoftwareScaleContextFlagFastBilinear),
		)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w: %w", ErrConvert, err)
		}

		c.scale = sc
		c.rgb = astiav.AllocFrame()
		c.width = src.Width()
		c.height = src.Height()

		logger.Logf(logger.Allow, "pipeline", "converting %s %dx%d to rgb24",
			src.PixelFormat(), c.width, c.height)
	} else if src.Width() != c.width || src.Height() != c.height {
		// a capture device does not change resolution mid-stream. if the
		// dimensions move the stream is not what we negotiated and there is
		// no sensible recovery
		return nil, fmt.Errorf("pipeline: %w: frame size changed from %dx%d to %dx%d",
			ErrConvert, c.width, c.height, src.Width(), src.Height())
	}

	if err := c.scale.ScaleFrame(src, c.rgb); err != nil {
		return nil, fmt.Errorf("pipeline: %w: %w", ErrConvert, err)
	}

	b, err := c.rgb.Data().Bytes(1)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w: %w", ErrConvert, err)
	}

	f := capture.NewFrame(c.width, c.height)
	copy(f.Pix, b)

	return f, nil
}

func (c *converter) free() {
	if c.rgb != nil {
		c.rgb.Free()
		c.rgb = nil
	}
	if c.scale != nil {
		c.scale.Free()
		c.scale = nil
	}
}
