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

package crt

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/tubeglow/phosphor/capture"
)

// Texture holds the GPU copy of the most recently consumed capture frame.
// Render() must be called from the thread that owns the GL context, which
// is also the thread that consumes frames from the delivery slot.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// NewTexture is the preferred method of initialisation of the Texture type.
func NewTexture() *Texture {
	tex := &Texture{}

	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return tex
}

// ID returns the GL texture ID. Suitable as the source texture argument to
// Renderer.Render().
func (tex *Texture) ID() uint32 {
	return tex.id
}

// Render uploads the frame's pixel data. Texture storage is recreated when
// the frame dimensions change and subloaded otherwise.
func (tex *Texture) Render(frame *capture.Frame) {
	// frame rows are tightly packed, not 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	defer gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	if tex.width != int32(frame.Width) || tex.height != int32(frame.Height) {
		tex.width = int32(frame.Width)
		tex.height = int32(frame.Height)
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGB, tex.width, tex.height, 0,
			gl.RGB, gl.UNSIGNED_BYTE,
			gl.Ptr(frame.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, tex.width, tex.height,
			gl.RGB, gl.UNSIGNED_BYTE,
			gl.Ptr(frame.Pix))
	}
}

// Destroy the texture.
func (tex *Texture) Destroy() {
	if tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
	}
}
