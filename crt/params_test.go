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

package crt_test

import (
	"testing"

	"github.com/tubeglow/phosphor/crt"
	"github.com/tubeglow/phosphor/test"
)

func TestParamsDefaults(t *testing.T) {
	p := crt.NewParams()
	test.ExpectEquality(t, p.WarpX, 0.031)
	test.ExpectEquality(t, p.WarpY, 0.041)
	test.ExpectEquality(t, p.HardScan, -8.0)
	test.ExpectEquality(t, p.HardPix, -3.0)
	test.ExpectEquality(t, p.HardBloomPix, -1.5)
	test.ExpectEquality(t, p.HardBloomScan, -2.0)
	test.ExpectEquality(t, p.BloomAmount, 0.15)
	test.ExpectEquality(t, p.Shape, 2.0)
	test.ExpectEquality(t, p.ShadowMask, crt.MaskStretchedVGA)
	test.ExpectEquality(t, p.BrightBoost, 1.0)

	// defaults are already in range
	test.ExpectEquality(t, p.Clamp(), p)
}

func TestParamsClamp(t *testing.T) {
	p := crt.Params{
		WarpX:         1.0,
		WarpY:         -1.0,
		HardScan:      5.0,
		HardPix:       -100.0,
		HardBloomPix:  0.0,
		HardBloomScan: -10.0,
		BloomAmount:   2.0,
		Shape:         -3.0,
		ShadowMask:    99,
		BrightBoost:   10.0,
	}

	c := p.Clamp()
	test.ExpectEquality(t, c.WarpX, 0.125)
	test.ExpectEquality(t, c.WarpY, 0.0)
	test.ExpectEquality(t, c.HardScan, -1.0)
	test.ExpectEquality(t, c.HardPix, -20.0)
	test.ExpectEquality(t, c.HardBloomPix, -0.5)
	test.ExpectEquality(t, c.HardBloomScan, -4.0)
	test.ExpectEquality(t, c.BloomAmount, 1.0)
	test.ExpectEquality(t, c.Shape, 0.0)
	test.ExpectEquality(t, c.ShadowMask, crt.MaskVGA)
	test.ExpectEquality(t, c.BrightBoost, 2.0)

	p.ShadowMask = -1
	test.ExpectEquality(t, p.Clamp().ShadowMask, crt.MaskNone)
}
