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
	"testing"

	"github.com/tubeglow/phosphor/test"
)

func TestFitRectMatchingAspect(t *testing.T) {
	// matching aspect ratios fill the display exactly
	x, y, w, h := fitRect(1280, 720, 1920, 1080)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
	test.ExpectEquality(t, w, 1920)
	test.ExpectEquality(t, h, 1080)

	x, y, w, h = fitRect(1920, 1080, 1920, 1080)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
	test.ExpectEquality(t, w, 1920)
	test.ExpectEquality(t, h, 1080)
}

func TestFitRectLetterbox(t *testing.T) {
	// 16:9 capture on a 4:3 display. bars top and bottom
	x, y, w, h := fitRect(1920, 1080, 1600, 1200)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, w, 1600)
	test.ExpectEquality(t, h, 900)
	test.ExpectEquality(t, y, 150)
}

func TestFitRectPillarbox(t *testing.T) {
	// 4:3 capture on a 16:9 display. bars left and right
	x, y, w, h := fitRect(640, 480, 1920, 1080)
	test.ExpectEquality(t, y, 0)
	test.ExpectEquality(t, h, 1080)
	test.ExpectEquality(t, w, 1440)
	test.ExpectEquality(t, x, 240)
}

func TestFitRectDegenerate(t *testing.T) {
	x, y, w, h := fitRect(0, 0, 1920, 1080)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 0)
}
