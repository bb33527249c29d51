// seehuhn.de/go/parallax - geometry and rasterisation for parallax barriers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package parallax

import "seehuhn.de/go/geom/rect"

// Stripes returns the rectangles [z[0], z[1]] × [y0, y1],
// [z[2], z[3]] × [y0, y1], and so on.  A trailing unpaired boundary is
// ignored.
//
// For barrier zones the stripes are the opaque parts of the barrier.
// For screen zones, z[1:].Stripes gives the right-eye zones.
func (z Zones) Stripes(y0, y1 float64) []rect.Rect {
	res := make([]rect.Rect, 0, len(z)/2)
	for i := 0; i+1 < len(z); i += 2 {
		res = append(res, rect.Rect{
			LLx: z[i],
			LLy: min(y0, y1),
			URx: z[i+1],
			URy: max(y0, y1),
		})
	}
	return res
}
