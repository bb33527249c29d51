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
	"slices"
)

// Rasteriser converts zone boundaries into per-column masks for one
// physical raster.  A display uses two instances, one for the barrier
// and one for the screen, since the two rasters may have different
// resolutions.
//
// Masks are freshly allocated by every call and are never modified
// afterwards by the Rasteriser.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// PixelCount is the number of pixel columns.
	PixelCount int

	// PixelPitch is the number of pixel columns per model unit.
	PixelPitch float64

	// Epsilon is the tolerance, as a fraction of a pixel, within which a
	// boundary is snapped to a pixel edge.  For screen masks it must be
	// in (0, 0.5); boundaries further than Epsilon from both edges of a
	// pixel turn the pixel into a guard column.
	Epsilon float64

	guards int

	// coverage accumulation buffers
	cover []float32
	area  []float32
}

// NewBarrierRasteriser returns a Rasteriser for a barrier raster with
// the default barrier tolerance.
func NewBarrierRasteriser(pixelCount int, pixelPitch float64) *Rasteriser {
	return &Rasteriser{
		PixelCount: pixelCount,
		PixelPitch: pixelPitch,
		Epsilon:    defaultBarrierEpsilon,
	}
}

// NewScreenRasteriser returns a Rasteriser for a screen raster with the
// default screen tolerance.
func NewScreenRasteriser(pixelCount int, pixelPitch float64) *Rasteriser {
	return &Rasteriser{
		PixelCount: pixelCount,
		PixelPitch: pixelPitch,
		Epsilon:    defaultScreenEpsilon,
	}
}

// locate returns the pixel column containing the model coordinate v and
// the position of v within that column, in [0, 1).
func (r *Rasteriser) locate(v float64) (int, float64) {
	f := v * r.PixelPitch
	// Keep int conversion well-defined for boundaries far outside the
	// raster.  Clamped values land on a pixel edge.
	f = max(min(f, float64(r.PixelCount)+1), -1)
	p := math.Floor(f)
	return int(p), f - p
}

// Barrier rasterises barrier zones.  The barrier is transparent before
// the first boundary, and the boundaries alternately open opaque and
// transparent stretches.  A column containing a boundary takes the
// state of the stretch that ends there, unless the boundary lies within
// Epsilon of the column's left edge.  An empty sequence gives a fully
// transparent mask.
func (r *Rasteriser) Barrier(z Zones) BarrierMask {
	n := max(r.PixelCount, 0)
	mask := make(BarrierMask, n) // all Opaque

	start := 0
	transparent := true
	for _, v := range z {
		pixel, frac := r.locate(v)
		if transparent {
			if frac <= r.Epsilon {
				paintRange(mask, start, pixel-1, Transparent)
				start = pixel
			} else {
				paintRange(mask, start, pixel, Transparent)
				start = pixel + 1
			}
		} else {
			if frac < r.Epsilon {
				start = pixel
			} else {
				start = pixel + 1
			}
		}
		transparent = !transparent
	}
	if transparent {
		paintRange(mask, start, n-1, Transparent)
	}
	return mask
}

// Screen rasterises screen zones and returns the mask together with the
// number of guard columns.  The first boundary starts a left-eye zone
// and only positions the cursor.  Columns are LeftView unless painted:
// RightView for right-eye zones, Guard where a boundary lies further
// than Epsilon from both edges of its column.  Columns after the last
// boundary keep LeftView.
func (r *Rasteriser) Screen(z Zones) (ScreenMask, int) {
	n := max(r.PixelCount, 0)
	mask := make(ScreenMask, n) // all LeftView
	r.guards = 0

	start := 0
	for i, v := range z {
		pixel, frac := r.locate(v)
		if i == 0 {
			start = pixel
			continue
		}
		closesRight := i%2 == 0

		switch {
		case frac >= r.Epsilon && frac <= 1-r.Epsilon:
			if closesRight {
				paintRange(mask, start, pixel-1, RightView)
			}
			if pixel >= 0 && pixel < n && mask[pixel] != Guard {
				mask[pixel] = Guard
				r.guards++
			}
			start = pixel + 1
		case frac < r.Epsilon:
			if closesRight {
				paintRange(mask, start, pixel-1, RightView)
			}
			start = pixel
		default: // frac > 1-Epsilon
			if closesRight {
				paintRange(mask, start, pixel, RightView)
			}
			start = pixel + 1
		}
	}
	return mask, r.guards
}

// Guards returns the number of guard columns inserted by the most
// recent call to [Rasteriser.Screen].
func (r *Rasteriser) Guards() int {
	return r.guards
}

// Coverage returns, for every pixel column, the fraction of the column
// covered by the stretches [z[0], z[1]), [z[2], z[3]), ...  If z has odd
// length, the last stretch extends to the end of the raster.
//
// For barrier zones this is the opaque fraction of each column, and for
// screen zones z[1:] gives the right-eye fraction.
func (r *Rasteriser) Coverage(z Zones) []float32 {
	n := max(r.PixelCount, 0)
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)

	if n > 0 {
		sign := float32(1)
		for _, v := range z {
			r.accumulate(v, sign)
			sign = -sign
		}
	}

	res := make([]float32, n)
	copy(res, r.cover)
	integrateColumns(res, r.area)
	return res
}

// accumulate adds a boundary at model coordinate v to the cover and
// area buffers.  Entering a stretch uses sign +1, leaving it -1.
//
// Each boundary contributes
//
//	cover = sign                 (carried to all columns on the right)
//	area  = sign * (1 - xFrac)   (the part of its own column on the right)
//
// and integrateColumns turns this into per-column coverage.
func (r *Rasteriser) accumulate(v float64, sign float32) {
	f := v * r.PixelPitch
	if f >= float64(len(r.cover)) {
		return
	}
	if f < 0 {
		r.cover[0] += sign
		r.area[0] += sign
		return
	}
	pix := int(math.Floor(f))
	xFrac := f - float64(pix)
	r.cover[pix] += sign
	r.area[pix] += sign * float32(1-xFrac)
}

// integrateColumns converts accumulated cover/area values into coverage
// in [0, 1].  The cover slice is modified in place.
func integrateColumns(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = max(0, min(1, raw))
	}
}

// Default tolerances, as fractions of a pixel.
const (
	// defaultScreenEpsilon is the screen snapping tolerance.  Boundaries
	// in the middle 80% of a screen column produce a guard column.
	defaultScreenEpsilon = 0.10

	// defaultBarrierEpsilon is the barrier snapping tolerance.
	defaultBarrierEpsilon = 0.05
)
