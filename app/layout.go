package app

import (
	"github.com/meghashyamc/wheeltimer/countdown"
	"github.com/meghashyamc/wheeltimer/geometry"
)

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Contains(p geometry.Vector) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Layout holds the screen positions of everything the user can touch.
type Layout struct {
	Width, Height int
	Digits        map[countdown.Field]Rect
	WheelCenter   geometry.Vector
	WheelRadius   float64
	ResetButton   Rect
	StartButton   Rect
}

func NewLayout(width, height int, wheelRadius float64) Layout {
	w := float64(width)
	h := float64(height)
	digitWidth := w * 0.22
	gap := w * 0.05
	left := (w - 3*digitWidth - 2*gap) / 2
	buttonWidth := w * 0.25

	return Layout{
		Width:  width,
		Height: height,
		Digits: map[countdown.Field]Rect{
			countdown.Hours:   {X: left, Y: h * 0.08, Width: digitWidth, Height: h * 0.12},
			countdown.Minutes: {X: left + digitWidth + gap, Y: h * 0.08, Width: digitWidth, Height: h * 0.12},
			countdown.Seconds: {X: left + 2*(digitWidth+gap), Y: h * 0.08, Width: digitWidth, Height: h * 0.12},
		},
		WheelCenter: geometry.Vector{X: w / 2, Y: h * 0.52},
		WheelRadius: wheelRadius,
		ResetButton: Rect{X: w/2 - buttonWidth - gap/2, Y: h * 0.85, Width: buttonWidth, Height: h * 0.08},
		StartButton: Rect{X: w/2 + gap/2, Y: h * 0.85, Width: buttonWidth, Height: h * 0.08},
	}
}

// DigitAt returns the clock segment under p, if any.
func (l Layout) DigitAt(p geometry.Vector) (countdown.Field, bool) {
	for field, rect := range l.Digits {
		if rect.Contains(p) {
			return field, true
		}
	}
	return 0, false
}
