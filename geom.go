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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var (
	unitX    = vec.Vec2{X: 1}
	negUnitX = vec.Vec2{X: -1}
)

// rotateDeg rotates v counter-clockwise by deg degrees.
func rotateDeg(v vec.Vec2, deg float64) vec.Vec2 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec.Vec2{
		X: c*v.X - s*v.Y,
		Y: s*v.X + c*v.Y,
	}
}

// angleDeg returns the signed angle from a to b in degrees, in the
// range [-180, 180].
func angleDeg(a, b vec.Vec2) float64 {
	cross := a.X*b.Y - a.Y*b.X
	return math.Atan2(cross, a.Dot(b)) * 180 / math.Pi
}

// aligned reports whether a and b point in the same direction, up to
// tol degrees.
func aligned(a, b vec.Vec2, tol float64) bool {
	return math.Abs(angleDeg(a, b)) < tol
}

// intersectScreen returns the x coordinate where the line through p
// with direction dir meets the screen line y = 0.  dir.Y must be
// non-zero.
func intersectScreen(p, dir vec.Vec2) float64 {
	return p.X - p.Y*dir.X/dir.Y
}
