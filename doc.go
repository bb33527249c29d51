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

// Package parallax drives an autostereoscopic display built from a flat
// screen and a parallel occluding barrier.
//
// The geometry is solved in model space: the screen lies on the line
// y = 0, the barrier on y = 1, and both eyes must have y > 1.  The
// x axis increases towards the viewer's right and the screen covers
// [0, width].  For one pair of eye positions, [Model.Update] computes
// two alternating sequences of boundaries ([Zones]):
//
//   - the screen zones, starting with a left-eye zone and alternating
//     between left-eye and right-eye zones;
//   - the barrier zones: the barrier is transparent before the first
//     boundary, and the boundaries alternately open opaque and
//     transparent stretches.
//
// A [Rasteriser] turns these continuous boundaries into one value per
// pixel column: a [BarrierMask] for the barrier raster and a
// [ScreenMask] for the screen raster.  Screen columns which contain a
// boundary too far from either pixel edge are marked as [Guard]
// columns; their number is a measure of stereo crosstalk.
//
// [Display] combines the model and two rasterisers with the affine map
// from world coordinates into model space, and [Painter] composites the
// resulting masks into images.
package parallax
