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
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Errors returned by [Model.Update].  Both leave the model with empty
// zone sequences; neither is fatal.
var (
	// ErrNoGeometry indicates that the eye pair has no usable stereo
	// geometry: an eye is not behind the barrier, or a visible extent
	// is undefined because the line of sight is degenerate or falls in
	// the excluded cone.
	ErrNoGeometry = errors.New("parallax: no stereo geometry for eye pair")

	// ErrNoConvergence indicates that the boundary recurrence did not
	// reach the far end of the visible range within the iteration
	// bound.
	ErrNoConvergence = errors.New("parallax: zone recurrence did not converge")
)

// Zones is an ascending sequence of boundaries between alternating
// categories along the interval [0, width].
type Zones []float64

// Ascending reports whether the boundaries are strictly increasing.
func (z Zones) Ascending() bool {
	for i := 1; i < len(z); i++ {
		if !(z[i] > z[i-1]) {
			return false
		}
	}
	return true
}

// Within reports whether all boundaries lie in [lo, hi].
func (z Zones) Within(lo, hi float64) bool {
	for _, v := range z {
		if !(v >= lo && v <= hi) {
			return false
		}
	}
	return true
}

// Model computes the visibility zones on the screen and the opacity
// zones on the barrier for one pair of eye positions.
//
// A Model is not safe for concurrent use.  Distinct models share no
// state.
type Model struct {
	// NonVisibleAngle is the angular margin, in degrees, by which the
	// extreme lines of sight are rotated inwards.  Rays closer to
	// grazing than this are not used.
	NonVisibleAngle float64

	// AngleTolerance is the tolerance, in degrees, for deciding that a
	// line of sight is horizontal.
	AngleTolerance float64

	// MaxIterations bounds the number of steps of the boundary
	// recurrence.  Updates needing more steps fail with
	// [ErrNoConvergence].
	MaxIterations int

	width   float64
	screen  Zones
	barrier Zones

	// scratch buffers, reused across updates
	rawScreen  []float64
	rawBarrier []float64
}

// NewModel returns a Model for a screen of the given width (in model
// units) with default numeric parameters.
func NewModel(width float64) *Model {
	return &Model{
		NonVisibleAngle: defaultNonVisibleAngle,
		AngleTolerance:  defaultAngleTolerance,
		MaxIterations:   defaultMaxIterations,
		width:           width,
	}
}

// SetWidth changes the screen width.  The zone sequences are not
// recomputed until the next call to [Model.Update].
func (m *Model) SetWidth(width float64) {
	m.width = width
}

// Width returns the screen width in model units.
func (m *Model) Width() float64 {
	return m.width
}

// ScreenZones returns the screen zones computed by the last successful
// update.  The first boundary starts a left-eye zone.  The slice must
// not be modified.
func (m *Model) ScreenZones() Zones {
	return m.screen
}

// BarrierZones returns the barrier zones computed by the last
// successful update.  The barrier is transparent before the first
// boundary.  The slice must not be modified.
func (m *Model) BarrierZones() Zones {
	return m.barrier
}

// Update recomputes the zone sequences for the given eye positions in
// model space.  On failure both sequences are cleared and the returned
// error wraps [ErrNoGeometry] or [ErrNoConvergence].
func (m *Model) Update(left, right vec.Vec2) error {
	m.screen = nil
	m.barrier = nil

	if !(left.Y > 1 && right.Y > 1) {
		return fmt.Errorf("%w: eyes at depth %g and %g, need > 1",
			ErrNoGeometry, left.Y, right.Y)
	}

	minPoint, ok := m.minVisiblePoint(left, right)
	if !ok {
		return fmt.Errorf("%w: left extent undefined", ErrNoGeometry)
	}
	maxPoint, ok := m.maxVisiblePoint(left, right)
	if !ok {
		return fmt.Errorf("%w: right extent undefined", ErrNoGeometry)
	}
	if minPoint >= maxPoint {
		return fmt.Errorf("%w: empty visible range [%g, %g]",
			ErrNoGeometry, minPoint, maxPoint)
	}

	// Distance fractions from the eyes to the barrier plane.  A screen
	// point s seen by the right eye crosses the barrier at
	// rOff + s*rScale.
	rInv := 1 / right.Y
	lInv := 1 / left.Y
	a := (1 - rInv) / (1 - lInv)
	b := (right.X*rInv - left.X*lInv) / (1 - lInv)
	rOff := right.X * rInv
	rScale := 1 - rInv

	steps, err := m.iterate(minPoint, maxPoint, a, b, rOff, rScale)
	if err != nil {
		return err
	}

	m.screen = slices.Clone(Zones(m.rawScreen))
	m.barrier = clipBarrier(m.rawBarrier, m.width)

	Logger().Debug("parallax model updated",
		slog.Float64("min", minPoint),
		slog.Float64("max", maxPoint),
		slog.Int("steps", steps),
		slog.Int("screenZones", len(m.screen)),
		slog.Int("barrierZones", len(m.barrier)))
	return nil
}

// iterate runs the boundary recurrence s' = a*s + b from minPoint until
// maxPoint is reached, filling m.rawScreen and m.rawBarrier.  The final
// screen boundary is clamped to maxPoint.  Powers of
// a are carried as running products: after k steps, pa = minPoint*a^(k+1)
// and pb = 1 + a + ... + a^k.
func (m *Model) iterate(minPoint, maxPoint, a, b, rOff, rScale float64) (int, error) {
	m.rawScreen = append(m.rawScreen[:0], minPoint)
	m.rawBarrier = m.rawBarrier[:0]

	pa := minPoint * a
	pb := 1.0
	s := minPoint
	project := true
	steps := 0
	for s < maxPoint {
		if steps >= m.MaxIterations {
			return steps, fmt.Errorf("%w: %d steps reached %g of [%g, %g]",
				ErrNoConvergence, steps, s, minPoint, maxPoint)
		}

		m.rawBarrier = append(m.rawBarrier, rOff+s*rScale)

		next := pa + b*pb
		if !(next > s) {
			return steps, fmt.Errorf("%w: recurrence stalled at %g",
				ErrNoConvergence, s)
		}
		if next >= maxPoint {
			// The last opaque stretch ends at the projection of the
			// unclamped point.
			if project {
				m.rawBarrier = append(m.rawBarrier, rOff+next*rScale)
			}
			next = maxPoint
		}
		m.rawScreen = append(m.rawScreen, next)

		s = next
		pa *= a
		pb = pb*a + 1
		project = !project
		steps++
	}
	return steps, nil
}

// clipBarrier restricts the raw barrier boundaries to [0, width].  Raw
// boundary i opens an opaque stretch when i is even and a transparent
// one when i is odd.  A boundary at 0 is inserted if the barrier is
// opaque at the left edge, and a boundary at width if an opaque
// stretch is still open at the right edge, so that the result keeps the
// convention that the barrier is transparent before the first
// boundary.
func clipBarrier(raw []float64, width float64) Zones {
	before := 0
	for _, v := range raw {
		if v < 0 {
			before++
		}
	}

	res := make(Zones, 0, len(raw)+2)
	if before%2 == 1 {
		res = append(res, 0)
	}
	for _, v := range raw {
		if v < 0 || v > width {
			continue
		}
		if n := len(res); n > 0 && res[n-1] == v {
			// empty opaque stretch at the left edge
			res = res[:n-1]
			continue
		}
		res = append(res, v)
	}
	if n := len(res); n%2 == 1 {
		if res[n-1] == width {
			res = res[:n-1]
		} else {
			res = append(res, width)
		}
	}
	return res
}

// minVisiblePoint returns the left end of the visible range on the
// screen.  The second return value is false if the extent is
// undefined.
func (m *Model) minVisiblePoint(left, right vec.Vec2) (float64, bool) {
	sight := rotateDeg(left.Sub(right), m.NonVisibleAngle)

	angle := angleDeg(sight, unitX)
	if angle <= 0 && angle >= -m.NonVisibleAngle {
		return 0, false
	}
	if aligned(sight, unitX, m.AngleTolerance) {
		return 0, false
	}
	if aligned(sight, negUnitX, m.AngleTolerance) {
		return 0, true
	}
	if sight.Y >= 0 {
		return 0, true
	}

	x := intersectScreen(left, sight)
	switch {
	case x > m.width:
		return 0, false
	case x <= 0:
		return 0, true
	default:
		return x, true
	}
}

// maxVisiblePoint returns the right end of the visible range on the
// screen.  The second return value is false if the extent is
// undefined.
func (m *Model) maxVisiblePoint(left, right vec.Vec2) (float64, bool) {
	sight := rotateDeg(right.Sub(left), -m.NonVisibleAngle)

	angle := angleDeg(sight, negUnitX)
	if angle >= 0 && angle <= m.NonVisibleAngle {
		return 0, false
	}
	if aligned(sight, negUnitX, m.AngleTolerance) {
		return 0, false
	}
	if aligned(sight, unitX, m.AngleTolerance) {
		return m.width, true
	}
	if sight.Y >= 0 {
		return m.width, true
	}

	x := intersectScreen(right, sight)
	switch {
	case x <= 0:
		return 0, false
	case x > m.width:
		return m.width, true
	default:
		return x, true
	}
}

// Default values for model parameters.
const (
	// defaultNonVisibleAngle excludes lines of sight within 20 degrees
	// of grazing the barrier.
	defaultNonVisibleAngle = 20.0

	// defaultAngleTolerance is the tolerance for treating a line of
	// sight as horizontal.
	defaultAngleTolerance = 0.01

	// defaultMaxIterations bounds the boundary recurrence.  Eye
	// separations that are tiny compared to the barrier distance make
	// the recurrence ratio approach 1 and progress arbitrarily slowly.
	defaultMaxIterations = 2000
)
