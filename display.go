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
	"context"
	"errors"
	"log/slog"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Frame holds the masks produced by one display update.
type Frame struct {
	Barrier BarrierMask
	Screen  ScreenMask

	// Guards is the number of guard columns in Screen.
	Guards int
}

// ErrorRatio returns the fraction of screen columns which are guard
// columns.
func (f *Frame) ErrorRatio() float64 {
	if len(f.Screen) == 0 {
		return 0
	}
	return float64(f.Guards) / float64(len(f.Screen))
}

// Display ties a [Model] to the physical layout of a barrier display:
// it maps eye positions from world coordinates into model space and
// rasterises the resulting zones for the screen and the barrier.
//
// A Display is not safe for concurrent use.
type Display struct {
	cfg       DisplayConfig
	transform matrix.Matrix

	model   *Model
	screen  *Rasteriser
	barrier *Rasteriser
}

// NewDisplay returns a Display for the given configuration.
func NewDisplay(cfg DisplayConfig) (*Display, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	modelWidth := cfg.ModelWidth()
	model := NewModel(modelWidth)
	model.NonVisibleAngle = cfg.NonVisibleAngle
	model.AngleTolerance = cfg.AngleTolerance
	model.MaxIterations = cfg.MaxIterations

	screen := NewScreenRasteriser(cfg.ScreenResolution.X,
		float64(cfg.ScreenResolution.X)/modelWidth)
	screen.Epsilon = cfg.ScreenEpsilon
	barrier := NewBarrierRasteriser(cfg.BarrierResolution.X,
		float64(cfg.BarrierResolution.X)/modelWidth)
	barrier.Epsilon = cfg.BarrierEpsilon

	return &Display{
		cfg:       cfg,
		transform: modelTransform(cfg),
		model:     model,
		screen:    screen,
		barrier:   barrier,
	}, nil
}

// modelTransform returns the affine map from world coordinates into
// model space.  The map moves the screen centre to the origin, rotates
// the view direction onto the positive y axis, scales by 1/Spacing and
// finally shifts the left edge of the screen to x = 0.
func modelTransform(cfg DisplayConfig) matrix.Matrix {
	k := 1 / cfg.Spacing
	v := cfg.ViewDirection.Mul(1 / cfg.ViewDirection.Length())

	// Rotation taking v to (0, 1): cos = v.Y, sin = v.X.
	var m matrix.Matrix
	m[0] = k * v.Y
	m[1] = k * v.X
	m[2] = -k * v.X
	m[3] = k * v.Y

	p := cfg.Position
	m[4] = -(m[0]*p.X + m[2]*p.Y) + k*cfg.Width/2
	m[5] = -(m[1]*p.X + m[3]*p.Y)
	return m
}

// Config returns the configuration of the display.
func (d *Display) Config() DisplayConfig {
	return d.cfg
}

// Model returns the underlying model.  The zone sequences it exposes
// describe the most recent update.
func (d *Display) Model() *Model {
	return d.model
}

// ModelTransform returns the map from world coordinates into model
// space.
func (d *Display) ModelTransform() matrix.Matrix {
	return d.transform
}

// ToModel maps a point from world coordinates into model space.
func (d *Display) ToModel(p vec.Vec2) vec.Vec2 {
	m := d.transform
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Update computes the masks for the given eye positions in world
// coordinates.
//
// If the model cannot be updated, the frame is computed from empty zone
// sequences, giving a fully transparent barrier and a screen showing
// only the left view, and the model error is returned alongside it.
// Callers which prefer to keep showing the previous frame can discard
// the new one in this case.
func (d *Display) Update(leftEye, rightEye vec.Vec2) (*Frame, error) {
	left := d.ToModel(leftEye)
	right := d.ToModel(rightEye)

	err := d.model.Update(left, right)
	if err != nil {
		level := slog.LevelDebug
		if errors.Is(err, ErrNoConvergence) {
			level = slog.LevelWarn
		}
		Logger().Log(context.Background(), level, "parallax display falling back to flat image",
			slog.Any("error", err),
			slog.Float64("leftX", left.X), slog.Float64("leftY", left.Y),
			slog.Float64("rightX", right.X), slog.Float64("rightY", right.Y))
	}

	f := &Frame{
		Barrier: d.barrier.Barrier(d.model.BarrierZones()),
	}
	f.Screen, f.Guards = d.screen.Screen(d.model.ScreenZones())

	if err == nil {
		Logger().Debug("parallax frame",
			slog.Int("guards", f.Guards),
			slog.Int("transparent", f.Barrier.Count(Transparent)))
	}
	return f, err
}
