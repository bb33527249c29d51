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

// Command export writes every scenario with its computed zones and masks
// to JSON, for inspection and for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"errors"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/parallax"
	"seehuhn.de/go/parallax/testcases"
)

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Scenarios = append(out.Scenarios, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name    string     `json:"name"`
	Width   float64    `json:"width"`
	Left    [2]float64 `json:"left"`
	Right   [2]float64 `json:"right"`
	Pixels  int        `json:"pixels"`
	Outcome string     `json:"outcome"`

	ScreenZones  []float64 `json:"screen_zones,omitempty"`
	BarrierZones []float64 `json:"barrier_zones,omitempty"`
	ScreenMask   string    `json:"screen_mask,omitempty"`
	BarrierMask  string    `json:"barrier_mask,omitempty"`
	Guards       int       `json:"guards"`
}

func toJSON(category string, tc testcases.Scenario) jsonScenario {
	js := jsonScenario{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Left:   [2]float64{tc.Left.X, tc.Left.Y},
		Right:  [2]float64{tc.Right.X, tc.Right.Y},
		Pixels: tc.Pixels,
	}

	m := parallax.NewModel(tc.Width)
	err := m.Update(tc.Left, tc.Right)
	switch {
	case err == nil:
		js.Outcome = testcases.Success.String()
	case errors.Is(err, parallax.ErrNoConvergence):
		js.Outcome = testcases.NoConvergence.String()
	default:
		js.Outcome = testcases.NoGeometry.String()
	}
	if err != nil {
		return js
	}

	js.ScreenZones = m.ScreenZones()
	js.BarrierZones = m.BarrierZones()

	screen := parallax.NewScreenRasteriser(tc.Pixels, tc.Pitch())
	mask, guards := screen.Screen(m.ScreenZones())
	js.ScreenMask = screenString(mask)
	js.Guards = guards

	barrier := parallax.NewBarrierRasteriser(tc.Pixels, tc.Pitch())
	js.BarrierMask = barrierString(barrier.Barrier(m.BarrierZones()))
	return js
}

// screenString encodes a screen mask as 'L', 'R' and 'G' characters.
func screenString(m parallax.ScreenMask) string {
	var b strings.Builder
	for _, v := range m {
		b.WriteByte("LRG"[v])
	}
	return b.String()
}

// barrierString encodes a barrier mask as 'O' and 'T' characters.
func barrierString(m parallax.BarrierMask) string {
	var b strings.Builder
	for _, s := range m {
		b.WriteByte("OT"[s])
	}
	return b.String()
}
