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

// Command genpdf draws a top-down diagram of every scenario: the screen
// zones, the opaque parts of the barrier, both eyes, and the lines of
// sight bounding the visible range.  The diagrams are written as PDF and
// rendered to PNG using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/parallax"
	"seehuhn.de/go/parallax/testcases"
)

const outDir = "testdata/diagrams"

// page layout, in PDF points
const (
	pageWidth  = 600
	pageHeight = 400
	margin     = 40
	bandHeight = 12
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// diagram maps model space to the page.  The two axes are scaled
// independently, since eyes are usually much further from the barrier
// than the barrier is from the screen.
type diagram struct {
	sx, sy float64
}

func newDiagram(tc testcases.Scenario) diagram {
	depth := max(tc.Left.Y, tc.Right.Y, 2)
	return diagram{
		sx: (pageWidth - 2*margin) / tc.Width,
		sy: (pageHeight - 2*margin) / depth,
	}
}

func (d diagram) point(p vec.Vec2) (float64, float64) {
	return margin + d.sx*p.X, margin + d.sy*p.Y
}

func generatePDF(tc testcases.Scenario, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: pageWidth,
		URy: pageHeight,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	m := parallax.NewModel(tc.Width)
	updateErr := m.Update(tc.Left, tc.Right)
	d := newDiagram(tc)

	// screen: light for the left view, dark for the right view
	x0, y0 := d.point(vec.Vec2{})
	page.SetFillColor(color.DeviceGray(0.85))
	page.Rectangle(x0, y0-bandHeight, d.sx*tc.Width, bandHeight)
	page.Fill()
	page.SetFillColor(color.DeviceGray(0.35))
	for _, r := range m.ScreenZones()[min(1, len(m.ScreenZones())):].Stripes(y0-bandHeight, y0) {
		page.Rectangle(x0+d.sx*r.LLx, r.LLy, d.sx*(r.URx-r.LLx), r.URy-r.LLy)
	}
	page.Fill()

	// barrier: opaque stretches in black
	_, yb := d.point(vec.Vec2{Y: 1})
	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineWidth(0.5)
	page.MoveTo(x0, yb)
	page.LineTo(x0+d.sx*tc.Width, yb)
	page.Stroke()
	page.SetFillColor(color.DeviceGray(0))
	for _, r := range m.BarrierZones().Stripes(yb-2, yb+2) {
		page.Rectangle(x0+d.sx*r.LLx, r.LLy, d.sx*(r.URx-r.LLx), r.URy-r.LLy)
	}
	page.Fill()

	// lines of sight to the ends of the visible range
	if updateErr == nil {
		z := m.ScreenZones()
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.5)
		page.SetLineDash([]float64{3, 2}, 0)
		for _, eye := range []vec.Vec2{tc.Left, tc.Right} {
			for _, x := range []float64{z[0], z[len(z)-1]} {
				page.MoveTo(d.point(eye))
				page.LineTo(d.point(vec.Vec2{X: x}))
			}
		}
		page.Stroke()
		page.SetLineDash(nil, 0)
	}

	// eyes
	page.SetFillColor(color.DeviceGray(0))
	for _, eye := range []vec.Vec2{tc.Left, tc.Right} {
		x, y := d.point(eye)
		page.Rectangle(x-2, y-2, 4, 4)
	}
	page.Fill()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
