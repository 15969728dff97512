package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/wheeltimer/countdown"
	"github.com/meghashyamc/wheeltimer/geometry"
	"github.com/meghashyamc/wheeltimer/timer"
	"github.com/meghashyamc/wheeltimer/wheel"
)

// Input is one frame's worth of user input.
type Input struct {
	Toggle      bool
	Stop        bool
	NextSegment bool
	Increment   bool
	Decrement   bool

	Pressed     bool
	JustPressed bool
	Pointer     geometry.Vector
}

func readInput() Input {
	in := Input{
		Toggle:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Stop:        inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inpututil.IsKeyJustPressed(ebiten.KeyDelete),
		NextSegment: inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Increment:   inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Decrement:   inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Pressed = true
		in.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		in.Pointer = getCurrentPointerPosition()
		return in
	}

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 0 {
		return in
	}
	id := touchIDs[0]
	x, y := ebiten.TouchPosition(id)
	in.Pressed = true
	in.Pointer = geometry.Vector{X: float64(x), Y: float64(y)}
	for _, justPressed := range inpututil.AppendJustPressedTouchIDs(nil) {
		if justPressed == id {
			in.JustPressed = true
		}
	}

	return in
}

func getCurrentPointerPosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vector{X: float64(mouseX), Y: float64(mouseY)}
}

func (a *App) handleInput(in Input) {
	if in.Toggle && a.startEnabled() {
		a.toggle()
	}
	if in.Stop {
		a.stop()
	}
	if in.NextSegment {
		a.cycleSegment()
	}
	if in.Increment {
		a.nudge(1)
	}
	if in.Decrement {
		a.nudge(-1)
	}

	a.handlePointer(in)
}

func (a *App) handlePointer(in Input) {
	if !in.Pressed {
		a.dragging = false
		return
	}

	if in.JustPressed {
		switch {
		case a.layout.StartButton.Contains(in.Pointer):
			if a.startEnabled() {
				a.toggle()
			}
			return
		case a.layout.ResetButton.Contains(in.Pointer):
			if a.resetVisible() {
				a.stop()
			}
			return
		}

		if field, ok := a.layout.DigitAt(in.Pointer); ok {
			a.selectSegment(segmentFor(field))
			return
		}

		if w, _, ok := a.activeWheel(); ok && w.Contains(in.Pointer) {
			a.dragging = true
		}
	}

	if !a.dragging {
		return
	}
	if w, field, ok := a.activeWheel(); ok {
		a.edit(field, w.TickIndex(in.Pointer))
	}
}

// selectSegment shows the wheel for segment, or hides it if it is already shown.
func (a *App) selectSegment(segment Segment) {
	if !a.editable() {
		return
	}
	if a.segment == segment {
		a.segment = SegmentNone
		return
	}
	a.segment = segment
}

func (a *App) cycleSegment() {
	if !a.editable() {
		return
	}
	field, ok := a.segment.Field()
	if !ok {
		a.segment = SegmentHours
		return
	}
	a.segment = segmentFor(field.Next())
}

func (a *App) nudge(delta int) {
	field, ok := a.segment.Field()
	if !ok {
		return
	}
	a.edit(field, a.machine.Value().Get(field)+delta)
}

func (a *App) activeWheel() (wheel.Wheel, countdown.Field, bool) {
	field, ok := a.segment.Field()
	if !ok {
		return wheel.Wheel{}, 0, false
	}
	return wheel.New(a.layout.WheelCenter, a.layout.WheelRadius, wheelTicks[field]), field, true
}

// editable gates the wheels to a finished timer. A paused countdown can only be resumed or reset.
func (a *App) editable() bool {
	return a.machine.State() == timer.Finished
}

func (a *App) startEnabled() bool {
	return !a.machine.Value().IsZero()
}

func (a *App) resetVisible() bool {
	return !a.machine.Value().IsZero() || a.machine.State() != timer.Finished
}
