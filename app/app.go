// Package app hosts the timer in an ebiten window. ebiten calls Update and Draw
// on a single goroutine, which is where every timer command and tick runs.
package app

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meghashyamc/wheeltimer/chime"
	"github.com/meghashyamc/wheeltimer/config"
	"github.com/meghashyamc/wheeltimer/countdown"
	"github.com/meghashyamc/wheeltimer/logger"
	"github.com/meghashyamc/wheeltimer/store"
	"github.com/meghashyamc/wheeltimer/ticker"
	"github.com/meghashyamc/wheeltimer/timer"
	"github.com/meghashyamc/wheeltimer/wheel"
)

// Segment is the clock segment whose wheel is shown, if any.
type Segment int

const (
	SegmentNone Segment = iota
	SegmentHours
	SegmentMinutes
	SegmentSeconds
)

var segmentFields = map[Segment]countdown.Field{
	SegmentHours:   countdown.Hours,
	SegmentMinutes: countdown.Minutes,
	SegmentSeconds: countdown.Seconds,
}

var wheelTicks = map[countdown.Field]int{
	countdown.Hours:   wheel.HourTicks,
	countdown.Minutes: wheel.MinuteTicks,
	countdown.Seconds: wheel.SecondTicks,
}

func segmentFor(field countdown.Field) Segment {
	for segment, f := range segmentFields {
		if f == field {
			return segment
		}
	}
	return SegmentNone
}

func (s Segment) Field() (countdown.Field, bool) {
	field, ok := segmentFields[s]
	return field, ok
}

type App struct {
	cfg     *config.Config
	machine *timer.Machine
	frame   *ticker.Frame
	store   *store.Store
	chime   chime.Player
	logger  logger.Logger
	layout  Layout
	now     func() time.Time

	segment     Segment
	dragging    bool
	userMessage string
}

type Dependencies struct {
	Clock  ticker.Clock
	Store  *store.Store
	Chime  chime.Player
	Logger logger.Logger
}

func New(cfg *config.Config, deps Dependencies) *App {
	if deps.Logger == nil {
		deps.Logger = logger.NewWithLevel(cfg.GetLogLevel())
	}
	if deps.Chime == nil {
		deps.Chime = chime.Nop{}
	}
	if deps.Clock == nil {
		deps.Clock = ticker.RealClock{}
	}

	frame := ticker.NewFrame(deps.Clock)
	machine := timer.New(frame, timer.DefaultOptions().
		WithLogger(deps.Logger).
		WithInterval(cfg.GetTickInterval()).
		WithMaxHours(cfg.GetMaxHours()).
		WithStrict(cfg.IsStrict()))

	a := &App{
		cfg:     cfg,
		machine: machine,
		frame:   frame,
		store:   deps.Store,
		chime:   deps.Chime,
		logger:  deps.Logger,
		layout:  NewLayout(cfg.GetWindowWidth(), cfg.GetWindowHeight(), cfg.GetWheelRadius()),
		now:     deps.Clock.Now,
	}

	a.restore()
	a.machine.OnState(a.onStateChange)
	a.machine.OnExpire(a.onExpire)

	a.logger.Info("timer app initialized", "interval", cfg.GetTickInterval().String(), "max_hours", cfg.GetMaxHours())
	return a
}

func (a *App) Machine() *timer.Machine {
	return a.machine
}

func (a *App) Run() error {
	a.logger.Info("starting timer app")
	a.setupWindow()

	// Running the app calls Update() on every frame
	return ebiten.RunGame(a)
}

func (a *App) setupWindow() {
	ebiten.SetWindowSize(a.cfg.GetWindowWidth(), a.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(a.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (a *App) Update() error {
	// Ticks are delivered here, on the same goroutine as user input.
	a.frame.Advance()
	a.handleInput(readInput())
	return nil
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.layout.Width, a.layout.Height
}

func (a *App) restore() {
	if a.store == nil {
		return
	}
	if err := a.store.Load(); err != nil {
		a.logger.Warn("failed to load saved countdown", "err", err.Error())
		return
	}
	last := a.store.Last()
	if last.IsZero() {
		return
	}
	if err := a.machine.Restore(last); err != nil {
		a.logger.Warn("failed to restore saved countdown", "err", err.Error())
		return
	}
	a.logger.Debug("restored saved countdown", "value", last.String(), "started_at", a.store.State().StartedAt.String())
}

func (a *App) onStateChange(state timer.State) {
	switch state {
	case timer.Running:
		a.userMessage = ""
	case timer.Finished:
		a.dragging = false
	}
}

func (a *App) onExpire() {
	a.userMessage = "TIME'S UP!"
	a.chime.Play()
}

func (a *App) toggle() {
	a.segment = SegmentNone
	a.dragging = false

	fresh := a.machine.State() == timer.Finished
	value := a.machine.Value()
	a.machine.ToggleStartPause()

	// Resuming from pause would save a partial countdown, so only fresh starts are remembered.
	if fresh && a.machine.State() == timer.Running {
		a.remember(value)
	}
}

func (a *App) remember(value countdown.Value) {
	if a.store == nil {
		return
	}
	if err := a.store.Remember(value, a.now()); err != nil {
		a.logger.Warn("failed to save countdown", "err", err.Error())
	}
}

func (a *App) stop() {
	a.userMessage = ""
	a.machine.Stop()
}

func (a *App) edit(field countdown.Field, n int) {
	err := a.machine.Set(field, n)
	if errors.Is(err, timer.ErrNotEditable) {
		a.logger.Debug("ignoring edit while running", "field", field.String())
	}
}
