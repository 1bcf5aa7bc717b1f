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
	"fmt"
	"slices"
)

// Resolution is one of the frame sizes advertised by a capture device for a
// VideoFormat, along with the frame rates supported at that size. Width and
// Height are always greater than zero for a resolution queried from a
// device.
type Resolution struct {
	Width      int
	Height     int
	Framerates []int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// VideoFormat identifies one pixel encoding offered by a capture device: a
// fourcc tag, a human readable description and the set of resolutions the
// device advertises for the encoding.
//
// VideoFormat values are queried once per device selection and are not
// changed afterwards.
type VideoFormat struct {
	FourCC      string
	Description string
	Resolutions []Resolution
}

func (f VideoFormat) String() string {
	return fmt.Sprintf("%s (%s)", f.FourCC, f.Description)
}

// Config fully describes one capture session: the device to open and the
// format/resolution/framerate combination to request from it.
type Config struct {
	// device identifier as supplied by device enumeration (eg. /dev/video0)
	Device string

	Format    VideoFormat
	Width     int
	Height    int
	Framerate int
}

// Validate checks that the requested resolution and framerate are among the
// combinations the Format advertises. The decode backend will reject an
// unsupported combination anyway but validation produces a much clearer
// error, before the device is touched.
func (c Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("config: no capture device specified")
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid resolution %dx%d", c.Width, c.Height)
	}

	for _, res := range c.Format.Resolutions {
		if res.Width == c.Width && res.Height == c.Height {
			if !slices.Contains(res.Framerates, c.Framerate) {
				return fmt.Errorf("config: %d fps not advertised for %s at %s",
					c.Framerate, c.Format.FourCC, res)
			}
			return nil
		}
	}

	return fmt.Errorf("config: resolution %dx%d not advertised for %s",
		c.Width, c.Height, c.Format.FourCC)
}
