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

package capture_test

import (
	"testing"

	"github.com/tubeglow/phosphor/capture"
	"github.com/tubeglow/phosphor/test"
)

func TestNormalizedTag(t *testing.T) {
	f := capture.VideoFormat{FourCC: "YUYV"}
	test.ExpectEquality(t, f.NormalizedTag(), "yuyv422")
	test.ExpectFailure(t, f.Compressed())

	f = capture.VideoFormat{FourCC: "MJPG"}
	test.ExpectEquality(t, f.NormalizedTag(), "mjpeg")
	test.ExpectSuccess(t, f.Compressed())

	// V4L2 pads fourcc tags with NULs
	f = capture.VideoFormat{FourCC: "YUYV\x00\x00"}
	test.ExpectEquality(t, f.NormalizedTag(), "yuyv422")

	// unrecognised tags pass through lower-cased for the backend to judge
	f = capture.VideoFormat{FourCC: "NV12"}
	test.ExpectEquality(t, f.NormalizedTag(), "nv12")
	test.ExpectFailure(t, f.Compressed())
}

func TestOpenOptionsRawPath(t *testing.T) {
	cfg := capture.Config{
		Device:    "/dev/video0",
		Format:    capture.VideoFormat{FourCC: "YUYV"},
		Width:     1280,
		Height:    720,
		Framerate: 30,
	}

	opts := cfg.OpenOptions()
	test.ExpectEquality(t, opts["video_size"], "1280x720")
	test.ExpectEquality(t, opts["framerate"], "30")
	test.ExpectEquality(t, opts["input_format"], "rawvideo")
	test.ExpectEquality(t, opts["pixel_format"], "yuyv422")

	// low-latency open options
	test.ExpectEquality(t, opts["fflags"], "nobuffer+discardcorrupt")
	test.ExpectEquality(t, opts["probesize"], "32")
	test.ExpectEquality(t, opts["analyzeduration"], "100000")
}

func TestOpenOptionsCompressedPath(t *testing.T) {
	cfg := capture.Config{
		Device:    "/dev/video0",
		Format:    capture.VideoFormat{FourCC: "MJPG"},
		Width:     1920,
		Height:    1080,
		Framerate: 60,
	}

	opts := cfg.OpenOptions()
	test.ExpectEquality(t, opts["input_format"], "mjpeg")

	// no pixel format hint on the compressed path
	_, ok := opts["pixel_format"]
	test.ExpectFailure(t, ok)
}

func TestConfigValidation(t *testing.T) {
	format := capture.VideoFormat{
		FourCC:      "MJPG",
		Description: "Motion-JPEG",
		Resolutions: []capture.Resolution{
			{Width: 1920, Height: 1080, Framerates: []int{15, 30}},
			{Width: 1280, Height: 720, Framerates: []int{30, 60}},
		},
	}

	cfg := capture.Config{
		Device:    "/dev/video0",
		Format:    format,
		Width:     1920,
		Height:    1080,
		Framerate: 30,
	}
	test.ExpectSuccess(t, cfg.Validate())

	// 60 fps is not advertised at 1920x1080
	cfg.Framerate = 60
	test.ExpectFailure(t, cfg.Validate())

	// but it is at 1280x720
	cfg.Width = 1280
	cfg.Height = 720
	test.ExpectSuccess(t, cfg.Validate())

	// resolution not advertised at all
	cfg.Width = 640
	cfg.Height = 480
	test.ExpectFailure(t, cfg.Validate())

	// missing device
	cfg = capture.Config{Format: format, Width: 1920, Height: 1080, Framerate: 30}
	test.ExpectFailure(t, cfg.Validate())

	// nonsense resolution
	cfg = capture.Config{Device: "/dev/video0", Format: format, Width: 0, Height: 1080, Framerate: 30}
	test.ExpectFailure(t, cfg.Validate())
}

func TestNewFrame(t *testing.T) {
	f := capture.NewFrame(640, 480)
	test.ExpectEquality(t, f.Width, 640)
	test.ExpectEquality(t, f.Height, 480)
	test.ExpectEquality(t, len(f.Pix), 640*480*3)
}

func TestStopSignal(t *testing.T) {
	var stop capture.StopSignal
	test.ExpectFailure(t, stop.Stopped())
	stop.Stop()
	test.ExpectSuccess(t, stop.Stopped())

	// setting again is harmless
	stop.Stop()
	test.ExpectSuccess(t, stop.Stopped())
}
