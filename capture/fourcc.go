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
	"strconv"
	"strings"
)

// NormalizedTag returns the fourcc tag in the form expected by the decode
// backend. Vendor packed-YUV tags map to their standard four character
// equivalents and the compressed JPEG tag maps to the motion-JPEG decoder
// path. Unrecognised tags are passed through lower-cased; the backend
// rejects them if unsupported.
//
// V4L2 pads fourcc tags with NULs so any trailing NULs are trimmed first.
func (f VideoFormat) NormalizedTag() string {
	tag := strings.ToLower(strings.TrimRight(f.FourCC, "\x00"))
	switch tag {
	case "yuyv":
		return "yuyv422"
	case "mjpg":
		return "mjpeg"
	}
	return tag
}

// Compressed returns true if the normalized tag selects the compressed codec
// path rather than the raw pixel path.
func (f VideoFormat) Compressed() bool {
	return f.NormalizedTag() == "mjpeg"
}

// OpenOptions returns the demuxer options for an explicit low-latency open
// of the capture device: no internal read-ahead buffering, aggressive
// discard of corrupt input and a minimal probe/analysis duration. First
// frame latency is favoured over format-detection robustness; the format is
// already known from device enumeration.
func (c Config) OpenOptions() map[string]string {
	opts := map[string]string{
		"video_size":      fmt.Sprintf("%dx%d", c.Width, c.Height),
		"framerate":       strconv.Itoa(c.Framerate),
		"fflags":          "nobuffer+discardcorrupt",
		"probesize":       "32",
		"analyzeduration": "100000",
	}

	if c.Format.Compressed() {
		opts["input_format"] = c.Format.NormalizedTag()
	} else {
		opts["input_format"] = "rawvideo"
		opts["pixel_format"] = c.Format.NormalizedTag()
	}

	return opts
}
