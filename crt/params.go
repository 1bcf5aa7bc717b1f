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

// the shadow mask patterns selectable through Params.ShadowMask
const (
	MaskNone = iota
	MaskTV
	MaskGrille
	MaskStretchedVGA
	MaskVGA
	numMasks
)

// Params are the tunable values consumed by the render graph. The renderer
// never owns or mutates a Params value; a copy is passed in on every call
// to Render() so the owner is free to change values between frames.
type Params struct {
	// geometric barrel warp on the horizontal and vertical axes. 0.0 to
	// 0.125
	WarpX float32
	WarpY float32

	// hardness of the vertical scanline falloff. -20.0 to -1.0
	HardScan float32

	// hardness of the horizontal pixel falloff. -20.0 to 0.0
	HardPix float32

	// hardness of the two bloom blur passes. HardBloomPix -4.0 to -0.5,
	// HardBloomScan -4.0 to -1.0
	HardBloomPix  float32
	HardBloomScan float32

	// how much of the bloom result is added into the final composite. 0.0
	// to 1.0
	BloomAmount float32

	// exponent used in the vertical scanline falloff function. 0.0 to 10.0
	Shape float32

	// one of the Mask* constants
	ShadowMask int

	// brightness multiplier applied before gamma conversion. 0.0 to 2.0
	BrightBoost float32
}

// NewParams returns a Params with the shipped defaults.
func NewParams() Params {
	return Params{
		WarpX:         0.031,
		WarpY:         0.041,
		HardScan:      -8.0,
		HardPix:       -3.0,
		HardBloomPix:  -1.5,
		HardBloomScan: -2.0,
		BloomAmount:   0.15,
		Shape:         2.0,
		ShadowMask:    MaskStretchedVGA,
		BrightBoost:   1.0,
	}
}

func clampFloat(v float32, lo float32, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp returns a copy of the Params with every value forced into its
// documented range. Values out of range do not occur through the sliders
// that normally drive Params but can arrive from anywhere.
func (p Params) Clamp() Params {
	p.WarpX = clampFloat(p.WarpX, 0.0, 0.125)
	p.WarpY = clampFloat(p.WarpY, 0.0, 0.125)
	p.HardScan = clampFloat(p.HardScan, -20.0, -1.0)
	p.HardPix = clampFloat(p.HardPix, -20.0, 0.0)
	p.HardBloomPix = clampFloat(p.HardBloomPix, -4.0, -0.5)
	p.HardBloomScan = clampFloat(p.HardBloomScan, -4.0, -1.0)
	p.BloomAmount = clampFloat(p.BloomAmount, 0.0, 1.0)
	p.Shape = clampFloat(p.Shape, 0.0, 10.0)
	p.BrightBoost = clampFloat(p.BrightBoost, 0.0, 2.0)

	if p.ShadowMask < MaskNone {
		p.ShadowMask = MaskNone
	}
	if p.ShadowMask >= numMasks {
		p.ShadowMask = numMasks - 1
	}

	return p
}
