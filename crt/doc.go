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

// Package crt renders capture frames through a multi-pass CRT emulation
// based on Timothy Lottes' shader. With the CRT effect enabled the passes
// run in a fixed order:
//
//  1. pixelate (optional). lookups quantized to a fixed 854x480 grid
//  2. horizontal bloom. 7-tap blur, hardness from Params.HardBloomPix
//  3. vertical bloom. 5-tap blur, hardness from Params.HardBloomScan
//  4. horizontal scan. 5-tap blur, hardness from Params.HardPix
//  5. vertical scan. 5-tap blur, hardness from Params.HardScan and falloff
//     exponent from Params.Shape
//  6. composite. combines scanline and bloom results, applies barrel warp,
//     the selected shadow mask, brightness boost and gamma conversion
//
// Passes 1 to 5 draw into offscreen framebuffers sized to the capture
// resolution. The composite draws to the screen inside an aspect-correct
// viewport. When the CRT effect is disabled the frame is presented through
// a single aspect-correct draw, optionally pixelated, with no offscreen
// work at all.
//
// The two colour chains (bloom, scanline) work in linear colour. The first
// pass of each chain linearises the source with a 2.2 gamma and the
// composite converts back to display gamma.
package crt
