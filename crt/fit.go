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

// fitRect returns the viewport that presents a capture of srcW x srcH
// inside a display of dstW x dstH without distorting the aspect ratio. The
// image is letterboxed when the display is taller than the capture and
// pillarboxed when it is wider. Matching aspect ratios fill the display
// exactly.
func fitRect(srcW int32, srcH int32, dstW int32, dstH int32) (x int32, y int32, w int32, h int32) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return 0, 0, 0, 0
	}

	// compare aspect ratios without dividing. srcW/srcH > dstW/dstH is the
	// pillarbox-free case
	if srcW*dstH >= dstW*srcH {
		w = dstW
		h = dstW * srcH / srcW
		y = (dstH - h) / 2
	} else {
		h = dstH
		w = dstH * srcW / srcH
		x = (dstW - w) / 2
	}

	return x, y, w, h
}
