// Package wheel converts pointer positions on the circular dial into tick counts.
package wheel

import (
	"math"

	"github.com/meghashyamc/wheeltimer/geometry"
)

// epsilon absorbs floating point error so a point exactly on a tick boundary
// selects that tick rather than the next one.
const epsilon = 1e-9

const (
	HourTicks   = 24
	MinuteTicks = 60
	SecondTicks = 60
)

// Wheel is a dial of Ticks evenly spaced marks, numbered clockwise from the top.
type Wheel struct {
	Center geometry.Vector
	Radius float64
	Ticks  int
}

func New(center geometry.Vector, radius float64, ticks int) Wheel {
	return Wheel{Center: center, Radius: radius, Ticks: ticks}
}

func (w Wheel) step() float64 {
	return 2 * math.Pi / float64(w.Ticks)
}

// TickIndex returns how many ticks lie clockwise between the top of the wheel
// and point, counting the partially covered tick. The result is in [0, Ticks].
func (w Wheel) TickIndex(point geometry.Vector) int {
	if w.Ticks <= 0 {
		return 0
	}

	angle := geometry.RotateToTop(point.Sub(w.Center).Theta())
	index := int(math.Ceil(angle/w.step() - epsilon))

	if index < 0 {
		return 0
	}
	if index > w.Ticks {
		return w.Ticks
	}
	return index
}

// Contains reports whether point falls on the wheel.
func (w Wheel) Contains(point geometry.Vector) bool {
	return geometry.Distance(w.Center, point) <= w.Radius
}

// TickAngle is the screen angle of tick i, measured like geometry.Vector.Theta.
func (w Wheel) TickAngle(i int) float64 {
	return geometry.RotateFromTop(float64(i) * w.step())
}

// TickMark returns the end points of the mark for tick i, drawn between the
// inner and outer fractions of the radius.
func (w Wheel) TickMark(i int, inner, outer float64) (start, end geometry.Vector) {
	angle := w.TickAngle(i)
	start = w.Center.Add(geometry.FromPolar(w.Radius*inner, angle))
	end = w.Center.Add(geometry.FromPolar(w.Radius*outer, angle))
	return start, end
}
