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

package testcases

var degenerateCases = []Scenario{
	{
		Name:   "eye_on_barrier",
		Width:  1,
		Left:   eye(0.4, 1),
		Right:  eye(0.6, 2),
		Pixels: 100,
		Want:   NoGeometry,
	},
	{
		Name:   "behind_screen",
		Width:  1,
		Left:   eye(0.4, -2),
		Right:  eye(0.6, -2),
		Pixels: 100,
		Want:   NoGeometry,
	},
	{
		// the left line of sight falls into the excluded cone
		Name:   "excluded_cone",
		Width:  1,
		Left:   eye(0.6, 2),
		Right:  eye(0.5, 2.01),
		Pixels: 100,
		Want:   NoGeometry,
	},
	{
		// recurrence ratio 0.9999999, about 5000 steps needed
		Name:   "tiny_separation",
		Width:  1,
		Left:   eye(0.4999, 2),
		Right:  eye(0.5001, 1/0.50000005),
		Pixels: 100,
		Want:   NoConvergence,
	},
}
