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

// BarrierState is the state of one barrier pixel column.
type BarrierState uint8

// The zero value, Opaque, is the initial state of a barrier mask.
const (
	Opaque BarrierState = iota
	Transparent
)

func (s BarrierState) String() string {
	switch s {
	case Opaque:
		return "opaque"
	case Transparent:
		return "transparent"
	default:
		return "invalid"
	}
}

// View is the content shown by one screen pixel column.
type View uint8

// The zero value, LeftView, is the initial state of a screen mask.
const (
	LeftView View = iota
	RightView
	Guard
)

func (v View) String() string {
	switch v {
	case LeftView:
		return "left"
	case RightView:
		return "right"
	case Guard:
		return "guard"
	default:
		return "invalid"
	}
}

// BarrierMask holds one state per barrier pixel column.
type BarrierMask []BarrierState

// Count returns the number of columns in state s.
func (m BarrierMask) Count(s BarrierState) int {
	return count(m, s)
}

// ScreenMask holds one view per screen pixel column.
type ScreenMask []View

// Count returns the number of columns showing v.
func (m ScreenMask) Count(v View) int {
	return count(m, v)
}

func count[T comparable](m []T, v T) int {
	n := 0
	for _, x := range m {
		if x == v {
			n++
		}
	}
	return n
}

// paintRange sets columns first to last (inclusive) to v.  The range is
// clipped to the mask.
func paintRange[T any](m []T, first, last int, v T) {
	first = max(first, 0)
	last = min(last, len(m)-1)
	for i := first; i <= last; i++ {
		m[i] = v
	}
}

// spans calls yield for every maximal run of equal values in m, with
// the run covering columns [lo, hi).
func spans[T comparable](m []T, yield func(lo, hi int, v T)) {
	lo := 0
	for i := 1; i <= len(m); i++ {
		if i == len(m) || m[i] != m[lo] {
			yield(lo, i, m[lo])
			lo = i
		}
	}
}
