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
	"errors"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrSizeMismatch is returned by [Painter] methods when image and mask
// sizes disagree.
var ErrSizeMismatch = errors.New("parallax: image size does not match mask")

// Painter composites masks into images.  Each mask entry applies to a
// whole pixel column.  Rows are split into horizontal bands which are
// painted concurrently; dst must tolerate concurrent writes to disjoint
// rectangles, as all image types from the standard library do.
type Painter struct {
	// Workers limits the number of bands painted at the same time.
	// Values less than 1 mean runtime.GOMAXPROCS(0).
	Workers int
}

// PaintScreen fills dst from the two eye views according to m.  The
// left view is copied in full, then RightView columns are copied from
// right and Guard columns are painted black.  All three images must have
// the same size, and the width must equal len(m).
func (p Painter) PaintScreen(dst draw.Image, left, right image.Image, m ScreenMask) error {
	b := dst.Bounds()
	if b.Dx() != len(m) {
		return fmt.Errorf("%w: screen image is %d pixels wide, mask has %d columns",
			ErrSizeMismatch, b.Dx(), len(m))
	}
	if left.Bounds().Size() != b.Size() || right.Bounds().Size() != b.Size() {
		return fmt.Errorf("%w: eye views %v and %v, screen %v",
			ErrSizeMismatch, left.Bounds().Size(), right.Bounds().Size(), b.Size())
	}
	lMin := left.Bounds().Min
	rMin := right.Bounds().Min

	return p.bands(b, func(band image.Rectangle) {
		draw.Draw(dst, band, left, lMin.Add(band.Min.Sub(b.Min)), draw.Src)
		spans(m, func(lo, hi int, v View) {
			r := image.Rect(b.Min.X+lo, band.Min.Y, b.Min.X+hi, band.Max.Y)
			switch v {
			case RightView:
				draw.Draw(dst, r, right, rMin.Add(r.Min.Sub(b.Min)), draw.Src)
			case Guard:
				draw.Draw(dst, r, image.Black, image.Point{}, draw.Src)
			}
		})
	})
}

// PaintBarrier fills dst according to m: black for opaque columns and
// white for transparent ones.  The width of dst must equal len(m).
func (p Painter) PaintBarrier(dst draw.Image, m BarrierMask) error {
	b := dst.Bounds()
	if b.Dx() != len(m) {
		return fmt.Errorf("%w: barrier image is %d pixels wide, mask has %d columns",
			ErrSizeMismatch, b.Dx(), len(m))
	}

	return p.bands(b, func(band image.Rectangle) {
		spans(m, func(lo, hi int, s BarrierState) {
			r := image.Rect(b.Min.X+lo, band.Min.Y, b.Min.X+hi, band.Max.Y)
			src := image.Black
			if s == Transparent {
				src = image.White
			}
			draw.Draw(dst, r, src, image.Point{}, draw.Src)
		})
	})
}

// bands splits b into horizontal bands and calls paint for each of them,
// using at most p.Workers goroutines at a time.
func (p Painter) bands(b image.Rectangle, paint func(band image.Rectangle)) error {
	workers := p.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	h := b.Dy()
	n := min(workers, h)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range n {
		y0 := b.Min.Y + h*i/n
		y1 := b.Min.Y + h*(i+1)/n
		g.Go(func() error {
			paint(image.Rect(b.Min.X, y0, b.Max.X, y1))
			return nil
		})
	}
	return g.Wait()
}
