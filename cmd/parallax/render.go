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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"seehuhn.de/go/parallax"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		leftPath, rightPath string
		outDir              string
		workers             int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Composite the eye views and write screen and barrier images",
		Long: `Render composites the left and right eye views according to the
screen mask and writes screen.png and barrier.png to the output directory.
Eye views are scaled to the screen resolution.  Without input images, the
left view is drawn red and the right view blue.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, f, err := opts.update()
			if err != nil {
				return err
			}
			cfg := d.Config()
			bounds := image.Rectangle{Max: cfg.ScreenResolution}

			left, err := eyeView(leftPath, bounds, color.RGBA{R: 255, A: 255})
			if err != nil {
				return err
			}
			right, err := eyeView(rightPath, bounds, color.RGBA{B: 255, A: 255})
			if err != nil {
				return err
			}

			p := parallax.Painter{Workers: workers}
			screen := image.NewRGBA(bounds)
			if err := p.PaintScreen(screen, left, right, f.Screen); err != nil {
				return err
			}
			barrier := image.NewGray(image.Rectangle{Max: cfg.BarrierResolution})
			if err := p.PaintBarrier(barrier, f.Barrier); err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			if err := writePNG(filepath.Join(outDir, "screen.png"), screen); err != nil {
				return err
			}
			return writePNG(filepath.Join(outDir, "barrier.png"), barrier)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&leftPath, "left-image", "", "PNG image for the left eye")
	flags.StringVar(&rightPath, "right-image", "", "PNG image for the right eye")
	flags.StringVarP(&outDir, "out", "o", ".", "output directory")
	flags.IntVar(&workers, "workers", 0, "number of concurrent painters (0: one per CPU)")
	return cmd
}

// eyeView loads a PNG image and scales it to bounds.  An empty path gives
// an image filled with c.
func eyeView(path string, bounds image.Rectangle, c color.Color) (image.Image, error) {
	dst := image.NewRGBA(bounds)
	if path == "" {
		draw.Draw(dst, bounds, image.NewUniform(c), image.Point{}, draw.Src)
		return dst, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if src.Bounds().Size() == bounds.Size() {
		draw.Draw(dst, bounds, src, src.Bounds().Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, bounds, src, src.Bounds(), draw.Src, nil)
	}
	return dst, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
