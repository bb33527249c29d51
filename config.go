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
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"seehuhn.de/go/geom/vec"
)

// DisplayConfig describes the physical layout of a barrier display and
// the numeric parameters of the model and rasterisers.
//
// World coordinates are taken in the horizontal plane through the
// viewer's eyes, in arbitrary but consistent length units, oriented so
// that x increases towards the viewer's right when facing the screen.
type DisplayConfig struct {
	// Width and Height are the physical size of the screen.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Spacing is the distance between the screen and the barrier.
	Spacing float64 `json:"spacing"`

	// Position is the centre of the screen in world coordinates.
	Position vec.Vec2 `json:"position"`

	// ViewDirection is the screen normal, pointing towards the viewer.
	// It need not be normalised.
	ViewDirection vec.Vec2 `json:"viewDirection"`

	// ScreenResolution and BarrierResolution are the pixel sizes of the
	// two rasters.
	ScreenResolution  image.Point `json:"screenResolution"`
	BarrierResolution image.Point `json:"barrierResolution"`

	// NonVisibleAngle, AngleTolerance and MaxIterations configure the
	// [Model].
	NonVisibleAngle float64 `json:"nonVisibleAngle"`
	AngleTolerance  float64 `json:"angleTolerance"`
	MaxIterations   int     `json:"maxIterations"`

	// ScreenEpsilon and BarrierEpsilon are the snapping tolerances of
	// the two rasterisers.
	ScreenEpsilon  float64 `json:"screenEpsilon"`
	BarrierEpsilon float64 `json:"barrierEpsilon"`
}

// DefaultDisplayConfig returns the configuration of a 52 cm × 32 cm
// full-HD screen with a barrier 5 mm in front of it and a barrier
// raster of the same resolution.  Lengths are in metres, and the
// viewer looks along the negative y axis at a screen centred on the
// origin.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:             0.52,
		Height:            0.32,
		Spacing:           0.005,
		ViewDirection:     vec.Vec2{X: 0, Y: 1},
		ScreenResolution:  image.Point{X: 1920, Y: 1080},
		BarrierResolution: image.Point{X: 1920, Y: 1080},
		NonVisibleAngle:   defaultNonVisibleAngle,
		AngleTolerance:    defaultAngleTolerance,
		MaxIterations:     defaultMaxIterations,
		ScreenEpsilon:     defaultScreenEpsilon,
		BarrierEpsilon:    defaultBarrierEpsilon,
	}
}

// LoadDisplayConfig reads a JSON configuration.  Fields missing from the
// input keep their default values.  Unknown fields are an error.
func LoadDisplayConfig(r io.Reader) (DisplayConfig, error) {
	cfg := DefaultDisplayConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return DisplayConfig{}, fmt.Errorf("parallax: decoding display config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DisplayConfig{}, err
	}
	return cfg, nil
}

// ModelWidth returns the screen width in model units.
func (c DisplayConfig) ModelWidth() float64 {
	return c.Width / c.Spacing
}

// Validate checks the configuration and reports all problems found.
func (c DisplayConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive and finite, got %g", name, v))
		}
	}
	positive("width", c.Width)
	positive("height", c.Height)
	positive("spacing", c.Spacing)
	if c.ViewDirection.Length() == 0 {
		errs = append(errs, errors.New("viewDirection must be non-zero"))
	}
	if c.ScreenResolution.X <= 0 || c.ScreenResolution.Y <= 0 {
		errs = append(errs, fmt.Errorf("invalid screen resolution %v", c.ScreenResolution))
	}
	if c.BarrierResolution.X <= 0 || c.BarrierResolution.Y <= 0 {
		errs = append(errs, fmt.Errorf("invalid barrier resolution %v", c.BarrierResolution))
	}
	if !(c.NonVisibleAngle >= 0 && c.NonVisibleAngle < 90) {
		errs = append(errs, fmt.Errorf("nonVisibleAngle must be in [0, 90), got %g", c.NonVisibleAngle))
	}
	if !(c.AngleTolerance > 0) {
		errs = append(errs, fmt.Errorf("angleTolerance must be positive, got %g", c.AngleTolerance))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("maxIterations must be positive, got %d", c.MaxIterations))
	}
	if !(c.ScreenEpsilon > 0 && c.ScreenEpsilon < 0.5) {
		errs = append(errs, fmt.Errorf("screenEpsilon must be in (0, 0.5), got %g", c.ScreenEpsilon))
	}
	if !(c.BarrierEpsilon >= 0 && c.BarrierEpsilon < 1) {
		errs = append(errs, fmt.Errorf("barrierEpsilon must be in [0, 1), got %g", c.BarrierEpsilon))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("parallax: invalid display config: %w", err)
	}
	return nil
}
