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

var stereoCases = []Scenario{
	{
		// period 0.1, ten screen zones
		Name:   "ten_zones",
		Width:  1,
		Left:   eye(-0.05, 2),
		Right:  eye(0.05, 2),
		Pixels: 100,
	},
	{
		Name:   "centred",
		Width:  1,
		Left:   eye(0.45, 2),
		Right:  eye(0.55, 2),
		Pixels: 100,
	},
	{
		// left extent strictly inside the screen
		Name:   "interior_min",
		Width:  10,
		Left:   eye(6, 1.5),
		Right:  eye(6.1, 1.5),
		Pixels: 400,
	},
	{
		Name:   "unequal_depth",
		Width:  1,
		Left:   eye(0.45, 2),
		Right:  eye(0.55, 2.2),
		Pixels: 200,
	},
	{
		// the rotated left line of sight points away from the screen
		Name:   "sight_up",
		Width:  1,
		Left:   eye(0.4, 3),
		Right:  eye(0.6, 2),
		Pixels: 100,
	},
	{
		// default display, viewer 60 cm in front of the centre
		Name:   "full_hd",
		Width:  104,
		Left:   eye(45.5, 120),
		Right:  eye(58.5, 120),
		Pixels: 1920,
	},
	{
		Name:   "oblique",
		Width:  104,
		Left:   eye(20, 90),
		Right:  eye(33, 92),
		Pixels: 1920,
	},
}
