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
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/parallax"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(func() { parallax.SetLogger(nil) })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("parallax %s: %v\n%s", strings.Join(args, " "), err, errOut.String())
	}
	return out.String()
}

func TestZonesCmd(t *testing.T) {
	out := run(t, "zones")
	for _, want := range []string{"screen zones (953):", "barrier zones", "error ratio"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestZonesCmdCoverage(t *testing.T) {
	out := run(t, "zones", "--coverage", "--left=-0.03,0.5", "--right=0.03,0.5")
	if n := strings.Count(out, "\n"); n < 1920 {
		t.Errorf("got %d output lines, want one per screen column", n)
	}
}

func TestZonesCmdConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.json")
	cfg := `{"screenResolution": {"X": 320, "Y": 200}, "barrierResolution": {"X": 640, "Y": 400}}`
	if err := os.WriteFile(path, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out := run(t, "zones", "--config", path)
	if !strings.Contains(out, "barrier columns:") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	var total int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "barrier columns:") {
			var opaque, transparent int
			_, err := fmt.Sscanf(line, "barrier columns: %d opaque, %d transparent", &opaque, &transparent)
			if err != nil {
				t.Fatal(err)
			}
			total = opaque + transparent
		}
	}
	if total != 640 {
		t.Errorf("barrier has %d columns, want 640", total)
	}
}

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "display.json")
	err := os.WriteFile(cfg, []byte(`{"screenResolution": {"X": 192, "Y": 108}, "barrierResolution": {"X": 96, "Y": 54}}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	run(t, "render", "--config", cfg, "-o", dir)

	for name, width := range map[string]int{"screen.png": 192, "barrier.png": 96} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if w := img.Bounds().Dx(); w != width {
			t.Errorf("%s is %d pixels wide, want %d", name, w, width)
		}
	}
}

func TestDiagramCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "d.png")
	run(t, "diagram", "-o", out, "--width", "400", "--row-height", "10")

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 20 {
		t.Errorf("diagram size %v, want 400x20", b.Size())
	}
}

func TestBadEyes(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"zones", "--left", "1,2,3"})
	if err := root.Execute(); err == nil {
		t.Error("three eye coordinates accepted")
	}
}
