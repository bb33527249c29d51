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

package main

import (
	"image"
	"image/color"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
)

func newDiagramCmd(opts *options) *cobra.Command {
	var (
		out       string
		width     int
		rowHeight int
	)
	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Draw the barrier and screen zones as an anti-aliased PNG",
		Long: `Diagram draws two horizontal bands: the opaque parts of the barrier
in black on top, and the screen with the right-eye zones in blue and the
left-eye zones in red below.  Zone boundaries are drawn at sub-pixel
precision, independent of the display resolution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := opts.update()
			if err != nil {
				return err
			}
			m := d.Model()
			scale := float64(width) / m.Width()
			h := float64(rowHeight)

			img := image.NewRGBA(image.Rect(0, 0, width, 2*rowHeight))
			draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

			barrier := m.BarrierZones().Stripes(0, h)
			fillStripes(img, barrier, scale, color.Black)

			screenBand := image.Rect(0, rowHeight, width, 2*rowHeight)
			draw.Draw(img, screenBand, image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
			if z := m.ScreenZones(); len(z) > 0 {
				right := z[1:].Stripes(h, 2*h)
				fillStripes(img, right, scale, color.RGBA{B: 255, A: 255})
			}

			return writePNG(out, img)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "diagram.png", "output file")
	flags.IntVar(&width, "width", 2000, "image width in pixels")
	flags.IntVar(&rowHeight, "row-height", 100, "height of each band in pixels")
	return cmd
}

// fillStripes draws the rectangles, with x coordinates in model units,
// over dst using colour c.
func fillStripes(dst draw.Image, stripes []rect.Rect, scale float64, c color.Color) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, s := range stripes {
		x0, x1 := float32(s.LLx*scale), float32(s.URx*scale)
		y0, y1 := float32(s.LLy), float32(s.URy)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
		r.ClosePath()
	}
	r.DrawOp = draw.Over
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}
