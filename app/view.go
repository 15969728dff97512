package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/wheeltimer/assets"
	"github.com/meghashyamc/wheeltimer/countdown"
	"github.com/meghashyamc/wheeltimer/timer"
	"github.com/meghashyamc/wheeltimer/wheel"
)

var (
	colorBackground = color.RGBA{18, 18, 18, 255}
	colorActive     = color.RGBA{187, 134, 252, 255}
	colorInactive   = color.RGBA{3, 218, 197, 255}
	colorLabel      = color.RGBA{102, 102, 102, 255}
	colorDimTick    = color.RGBA{255, 255, 255, 51}
)

var fieldLabels = map[countdown.Field]string{
	countdown.Hours:   "h",
	countdown.Minutes: "m",
	countdown.Seconds: "s",
}

// View is everything Draw needs, derived from the timer and the selected segment.
type View struct {
	Value        countdown.Value
	State        timer.State
	Segment      Segment
	StartLabel   string
	StartEnabled bool
	ShowReset    bool
	ShowWheel    bool
	Wheel        wheel.Wheel
	ActiveTicks  int
	Message      string
}

func (a *App) View() View {
	v := View{
		Value:        a.machine.Value(),
		State:        a.machine.State(),
		Segment:      a.segment,
		StartLabel:   "START",
		StartEnabled: a.startEnabled(),
		ShowReset:    a.resetVisible(),
		Message:      a.userMessage,
	}
	if v.State == timer.Running {
		v.StartLabel = "PAUSE"
	}
	if w, field, ok := a.activeWheel(); ok {
		v.ShowWheel = true
		v.Wheel = w
		v.ActiveTicks = v.Value.Get(field)
	}
	return v
}

func (a *App) Draw(screen *ebiten.Image) {
	v := a.View()
	screen.Fill(colorBackground)

	a.drawClock(screen, v)
	if v.ShowWheel {
		drawWheel(screen, v.Wheel, v.ActiveTicks)
	}
	a.drawButtons(screen, v)

	if len(v.Message) > 0 {
		drawText(screen, v.Message, assets.LabelFont, a.layout.WheelCenter.X-60, a.layout.WheelCenter.Y, colorActive)
	}
}

func (a *App) drawClock(screen *ebiten.Image, v View) {
	for field, rect := range a.layout.Digits {
		clr := colorInactive
		if segmentFor(field) == v.Segment {
			clr = colorActive
		}
		drawText(screen, fieldLabels[field], assets.LabelFont, rect.X+rect.Width-16, rect.Y-24, colorLabel)
		drawText(screen, fmt.Sprintf("%02d", v.Value.Get(field)), assets.DigitFont, rect.X, rect.Y, clr)
	}
}

func drawWheel(screen *ebiten.Image, w wheel.Wheel, activeTicks int) {
	for i := 0; i < w.Ticks; i++ {
		start, end := w.TickMark(i, 0.8, 1)
		clr := colorDimTick
		if i < activeTicks {
			clr = colorActive
		}
		vector.StrokeLine(screen, float32(start.X), float32(start.Y), float32(end.X), float32(end.Y), 3, clr, true)
	}
}

func (a *App) drawButtons(screen *ebiten.Image, v View) {
	start := a.layout.StartButton
	startColor := colorActive
	if !v.StartEnabled {
		startColor = colorLabel
	}
	vector.StrokeRect(screen, float32(start.X), float32(start.Y), float32(start.Width), float32(start.Height), 2, startColor, true)
	drawText(screen, v.StartLabel, assets.LabelFont, start.X+16, start.Y+12, startColor)

	if v.ShowReset {
		reset := a.layout.ResetButton
		drawText(screen, "RESET", assets.LabelFont, reset.X+16, reset.Y+12, colorInactive)
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
