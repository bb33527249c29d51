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

// Package testcases holds eye-pair scenarios shared by the tests,
// benchmarks and tools of the parallax module.
package testcases

import "seehuhn.de/go/geom/vec"

// Scenario is a viewing situation in model space: screen on y = 0,
// barrier on y = 1, eyes beyond the barrier.
type Scenario struct {
	Name   string   // lowercase a-z, 0-9 and _ only
	Width  float64  // screen width in model units
	Left   vec.Vec2 // left eye
	Right  vec.Vec2 // right eye
	Pixels int      // columns of the screen and barrier rasters
	Want   Outcome  // expected result of the model update
}

// Pitch returns the number of pixel columns per model unit.
func (s Scenario) Pitch() float64 {
	return float64(s.Pixels) / s.Width
}

// Outcome is the expected result of a model update.
type Outcome int

const (
	Success Outcome = iota
	NoGeometry
	NoConvergence
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case NoGeometry:
		return "no_geometry"
	case NoConvergence:
		return "no_convergence"
	default:
		return "invalid"
	}
}

// eye is a helper to create an eye position.
func eye(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
