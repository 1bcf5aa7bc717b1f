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

// Package shaders embeds the GLSL sources for the CRT render graph. One
// file per pass.
package shaders

import _ "embed"

//go:embed "straight.vert"
var StraightVertexShader []byte

//go:embed "yflip.vert"
var YFlipVertexShader []byte

//go:embed "color.frag"
var ColorShader []byte

//go:embed "pixelate.frag"
var PixelateShader []byte

//go:embed "bloompass_horz.frag"
var BloomHorzShader []byte

//go:embed "bloompass_vert.frag"
var BloomVertShader []byte

//go:embed "scanpass_horz.frag"
var ScanHorzShader []byte

//go:embed "scanpass_vert.frag"
var ScanVertShader []byte

//go:embed "composite.frag"
var CompositeShader []byte
