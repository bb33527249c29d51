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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/parallax/testcases"
)

// screenMask decodes a mask written as a string of 'L', 'R' and 'G'.
func screenMask(s string) ScreenMask {
	m := make(ScreenMask, len(s))
	for i, c := range s {
		switch c {
		case 'R':
			m[i] = RightView
		case 'G':
			m[i] = Guard
		}
	}
	return m
}

// barrierMask decodes a mask written as a string of 'O' and 'T'.
func barrierMask(s string) BarrierMask {
	m := make(BarrierMask, len(s))
	for i, c := range s {
		if c == 'T' {
			m[i] = Transparent
		}
	}
	return m
}

func TestBarrierPass(t *testing.T) {
	cases := []struct {
		name string
		eps  float64 // 0 means the default tolerance
		z    Zones
		want string
	}{
		{"empty", 0, nil, "TTTTTTTTTT"},
		{"mid_pixel", 0, Zones{2.5, 5.5}, "TTTOOOTTTT"},
		{"near_left_edge", 0, Zones{2.02, 5.0}, "TTOOOTTTTT"},
		{"near_right_edge", 0, Zones{2.96, 5.03}, "TTTOOTTTTT"},
		{"open_at_end", 0, Zones{4.5}, "TTTTTOOOOO"},
		{"far_outside", 0, Zones{-1e300, 1e300}, "OOOOOOOOOO"},
		// boundaries exactly at the tolerance: a transparent stretch
		// gives up the column, an opaque stretch keeps it
		{"at_tolerance", 0.25, Zones{2.25, 5.25}, "TTOOOOTTTT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewBarrierRasteriser(10, 1)
			if tc.eps > 0 {
				r.Epsilon = tc.eps
			}
			got := r.Barrier(tc.z)
			if d := cmp.Diff(barrierMask(tc.want), got); d != "" {
				t.Errorf("Barrier(%v) (-want +got):\n%s", tc.z, d)
			}
		})
	}
}

func TestScreenPass(t *testing.T) {
	cases := []struct {
		name   string
		eps    float64 // 0 means the default tolerance
		z      Zones
		want   string
		guards int
	}{
		{"empty", 0, nil, "LLLLLLLLLL", 0},
		{"guards", 0, Zones{0.5, 2.25, 4.5, 7.3}, "LLGRGLLGLL", 3},
		{"guard_then_edge", 0, Zones{1, 3.5, 6}, "LLLGRRLLLL", 1},
		{"snap_right", 0, Zones{0, 2.95, 5.97}, "LLLRRRLLLL", 0},
		{"guard_outside", 0, Zones{0, 10.5}, "LLLLLLLLLL", 0},
		{"shared_guard", 0, Zones{0, 3.3, 3.6}, "LLLGLLLLLL", 1},
		{"far_outside", 0, Zones{-1e300, 1e300}, "LLLLLLLLLL", 0},
		// boundaries exactly at the tolerance produce guard columns
		{"guard_lower_edge", 0.25, Zones{0, 3.25}, "LLLGLLLLLL", 1},
		{"guard_upper_edge", 0.25, Zones{0, 1.5, 4.75}, "LGRRGLLLLL", 2},
		{"guard_both_edges", 0.25, Zones{0, 2.25, 5.75}, "LLGRRGLLLL", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewScreenRasteriser(10, 1)
			if tc.eps > 0 {
				r.Epsilon = tc.eps
			}
			got, guards := r.Screen(tc.z)
			if d := cmp.Diff(screenMask(tc.want), got); d != "" {
				t.Errorf("Screen(%v) (-want +got):\n%s", tc.z, d)
			}
			if guards != tc.guards || r.Guards() != tc.guards {
				t.Errorf("got %d guards (Guards() = %d), want %d",
					guards, r.Guards(), tc.guards)
			}
			if n := got.Count(Guard); n != guards {
				t.Errorf("mask has %d guard columns, count is %d", n, guards)
			}
		})
	}
}

func TestRasteriseTenZones(t *testing.T) {
	m := NewModel(1)
	if err := m.Update(vec.Vec2{X: -0.05, Y: 2}, vec.Vec2{X: 0.05, Y: 2}); err != nil {
		t.Fatal(err)
	}

	screen := NewScreenRasteriser(100, 100)
	gotScreen, guards := screen.Screen(m.ScreenZones())
	var want strings.Builder
	for c := range 100 {
		if (c/10)%2 == 1 {
			want.WriteByte('R')
		} else {
			want.WriteByte('L')
		}
	}
	if d := cmp.Diff(screenMask(want.String()), gotScreen); d != "" {
		t.Errorf("screen mask (-want +got):\n%s", d)
	}
	if guards != 0 {
		t.Errorf("got %d guards, want 0", guards)
	}
	if n := transitions(gotScreen); n != 9 {
		t.Errorf("got %d view transitions, want 9", n)
	}

	barrier := NewBarrierRasteriser(100, 100)
	gotBarrier := barrier.Barrier(m.BarrierZones())
	wantBarrier := "TTTOOOOOTTTTTOOOOOTTTTTOOOOOTTTTTOOOOOTTTTTOOOOO" + strings.Repeat("T", 52)
	if d := cmp.Diff(barrierMask(wantBarrier), gotBarrier); d != "" {
		t.Errorf("barrier mask (-want +got):\n%s", d)
	}
}

func transitions[T comparable](m []T) int {
	n := 0
	for i := 1; i < len(m); i++ {
		if m[i] != m[i-1] {
			n++
		}
	}
	return n
}

func TestRasteriseScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Want != testcases.Success {
				continue
			}
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				m := NewModel(tc.Width)
				if err := m.Update(tc.Left, tc.Right); err != nil {
					t.Fatal(err)
				}

				screen := NewScreenRasteriser(tc.Pixels, tc.Pitch())
				s1, g1 := screen.Screen(m.ScreenZones())
				s2, g2 := screen.Screen(m.ScreenZones())
				if d := cmp.Diff(s1, s2); d != "" || g1 != g2 {
					t.Errorf("screen pass not repeatable (guards %d, %d):\n%s", g1, g2, d)
				}
				if len(s1) != tc.Pixels {
					t.Errorf("screen mask has %d columns, want %d", len(s1), tc.Pixels)
				}
				if n := s1.Count(Guard); n != g1 {
					t.Errorf("mask has %d guard columns, count is %d", n, g1)
				}

				barrier := NewBarrierRasteriser(tc.Pixels, tc.Pitch())
				b1 := barrier.Barrier(m.BarrierZones())
				b2 := barrier.Barrier(m.BarrierZones())
				if d := cmp.Diff(b1, b2); d != "" {
					t.Errorf("barrier pass not repeatable:\n%s", d)
				}
				if len(b1) != tc.Pixels {
					t.Errorf("barrier mask has %d columns, want %d", len(b1), tc.Pixels)
				}

				// Each opaque stretch wider than two pixels must produce
				// at least one opaque column.
				want := 0
				for _, r := range m.BarrierZones().Stripes(0, 1) {
					if (r.URx-r.LLx)*tc.Pitch() > 2 {
						want++
					}
				}
				if got := countRuns(b1, Opaque); got < want {
					t.Errorf("got %d opaque runs, want at least %d", got, want)
					_ = writeMaskImage(name, s1, b1)
				}
			})
		}
	}
}

func countRuns[T comparable](m []T, v T) int {
	n := 0
	spans(m, func(_, _ int, x T) {
		if x == v {
			n++
		}
	})
	return n
}

func TestCoverage(t *testing.T) {
	r := NewScreenRasteriser(10, 1)
	z := Zones{0.5, 2.25, 4.5, 7.3}

	got := r.Coverage(z[1:])
	want := []float32{0, 0, 0.75, 1, 0.5, 0, 0, 0.7, 1, 1}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("column %d: coverage %.4f, want %.4f", i, got[i], want[i])
		}
	}

	// Every guard column is a genuinely mixed column.
	mask, _ := r.Screen(z)
	for i, v := range mask {
		if v == Guard && !(got[i] > 0 && got[i] < 1) {
			t.Errorf("guard column %d has coverage %g", i, got[i])
		}
	}
}

func TestCoverageOutside(t *testing.T) {
	r := NewBarrierRasteriser(4, 2)
	got := r.Coverage(Zones{-3, 0.25, 1.75, 10})
	want := []float32{0.5, 0, 0, 0.5}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("column %d: coverage %.4f, want %.4f", i, got[i], want[i])
		}
	}
}

func TestRasteriserZeroWidth(t *testing.T) {
	r := NewScreenRasteriser(0, 1)
	m, g := r.Screen(Zones{0, 0.5, 1})
	if len(m) != 0 || g != 0 {
		t.Errorf("got %d columns and %d guards, want none", len(m), g)
	}
	if b := r.Barrier(Zones{0, 1}); len(b) != 0 {
		t.Errorf("got %d barrier columns, want none", len(b))
	}
	if c := r.Coverage(Zones{0, 1}); len(c) != 0 {
		t.Errorf("got %d coverage values, want none", len(c))
	}
}

// writeMaskImage writes a two-row debug image of a screen and a barrier
// mask, scaled up vertically, to the debug directory.
func writeMaskImage(name string, screen ScreenMask, barrier BarrierMask) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	const rowHeight = 16
	w := max(len(screen), len(barrier))
	img := image.NewRGBA(image.Rect(0, 0, w, 2*rowHeight))
	viewColor := map[View]color.RGBA{
		LeftView:  {R: 255, A: 255},
		RightView: {B: 255, A: 255},
		Guard:     {A: 255},
	}
	for x, v := range screen {
		for y := range rowHeight {
			img.Set(x, y, viewColor[v])
		}
	}
	for x, s := range barrier {
		c := color.RGBA{A: 255}
		if s == Transparent {
			c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		for y := rowHeight; y < 2*rowHeight; y++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(filepath.Join("debug", fmt.Sprintf("%s.png", name)))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
