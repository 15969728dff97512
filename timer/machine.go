// Package timer implements the countdown state machine behind the timer screen.
package timer

import (
	"errors"
	"fmt"
	"time"

	"github.com/meghashyamc/wheeltimer/countdown"
	"github.com/meghashyamc/wheeltimer/logger"
	"github.com/meghashyamc/wheeltimer/observable"
	"github.com/meghashyamc/wheeltimer/ticker"
)

var ErrNotEditable = errors.New("countdown is not editable while the timer is running")

// Machine owns the countdown value and run state and drives a single tick source.
//
// A Machine is not safe for concurrent use. Every command and every callback from
// the tick source must run on the same goroutine; the host loop is responsible for
// that, for example by pumping a ticker.Frame from its update loop.
type Machine struct {
	opts   Options
	logger logger.Logger
	source ticker.Source

	// generation identifies the active schedule. Callbacks from any other
	// schedule are stale.
	generation uint64

	value   *observable.Slot[countdown.Value]
	state   *observable.Slot[State]
	expired *observable.Slot[int]
}

func New(source ticker.Source, opts Options) *Machine {
	if opts.Logger == nil {
		opts.Logger = logger.New()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.MaxHours <= 0 {
		opts.MaxHours = DefaultMaxHours
	}

	return &Machine{
		opts:    opts,
		logger:  opts.Logger,
		source:  source,
		value:   observable.NewSlot(countdown.Zero()),
		state:   observable.NewSlot(Finished),
		expired: observable.NewSlot(0),
	}
}

func (m *Machine) Value() countdown.Value {
	return m.value.Get()
}

func (m *Machine) State() State {
	return m.state.Get()
}

// CanStart reports whether a start would do anything.
func (m *Machine) CanStart() bool {
	return m.State() != Running && !m.Value().IsZero()
}

func (m *Machine) OnValue(fn func(countdown.Value)) (unsubscribe func()) {
	return m.value.Subscribe(fn)
}

func (m *Machine) OnState(fn func(State)) (unsubscribe func()) {
	return m.state.Subscribe(fn)
}

// OnExpire is called each time a countdown reaches zero on its own. Stopping
// the timer does not count as expiry.
func (m *Machine) OnExpire(fn func()) (unsubscribe func()) {
	return m.expired.Subscribe(func(int) { fn() })
}

// ToggleStartPause pauses a running timer and starts it otherwise.
func (m *Machine) ToggleStartPause() {
	if m.State() == Running {
		m.Pause()
		return
	}
	m.Start()
}

// Start begins counting down from the current value. It is a no-op while
// running or when the value is zero.
func (m *Machine) Start() {
	if m.State() == Running {
		return
	}
	value := m.Value()
	if value.IsZero() {
		m.logger.Debug("ignoring start with a zero countdown")
		return
	}

	m.generation++
	generation := m.generation
	total := time.Duration(value.ToMilliseconds()) * time.Millisecond

	m.source.Schedule(total, m.opts.Interval,
		func(remaining time.Duration) { m.handleTick(generation, remaining) },
		func() { m.handleFinish(generation) },
	)
	m.logger.Info("timer started", "remaining_ms", value.ToMilliseconds(), "from", m.State().String())
	m.state.Set(Running)
}

// Pause stops the clock, keeping the last published value. It is a no-op unless running.
func (m *Machine) Pause() {
	if m.State() != Running {
		return
	}

	m.cancel()
	m.logger.Info("timer paused", "remaining", m.Value().String())
	m.state.Set(Paused)
}

// Stop cancels any running countdown and resets the value to zero. Calling it
// repeatedly is harmless.
func (m *Machine) Stop() {
	if m.State() == Running {
		m.cancel()
	}

	m.logger.Info("timer stopped", "from", m.State().String())
	m.value.Set(countdown.Zero())
	m.state.Set(Finished)
}

func (m *Machine) SetHours(n int) error {
	return m.Set(countdown.Hours, n)
}

func (m *Machine) SetMinutes(n int) error {
	return m.Set(countdown.Minutes, n)
}

func (m *Machine) SetSeconds(n int) error {
	return m.Set(countdown.Seconds, n)
}

// Set replaces one field of the countdown, clamped into range. The run state is unchanged.
func (m *Machine) Set(field countdown.Field, n int) error {
	if m.State() == Running {
		return fmt.Errorf("setting %s: %w", field, ErrNotEditable)
	}

	value := m.Value().With(field, n).Clamp(m.opts.MaxHours)
	m.logger.Debug("countdown edited", "field", field.String(), "requested", n, "value", value.String())
	m.value.Set(value)
	return nil
}

// Restore replaces the whole countdown while the timer is not running.
func (m *Machine) Restore(value countdown.Value) error {
	if m.State() == Running {
		return fmt.Errorf("restoring countdown: %w", ErrNotEditable)
	}

	m.value.Set(value.Clamp(m.opts.MaxHours))
	return nil
}

func (m *Machine) cancel() {
	m.source.Cancel()
	// Anything the source still manages to deliver is now stale.
	m.generation++
}

func (m *Machine) handleTick(generation uint64, remaining time.Duration) {
	if !m.current(generation, "tick") {
		return
	}
	if remaining < 0 {
		m.violation("negative remaining time from tick source", "remaining", remaining)
		return
	}

	m.value.Set(countdown.FromDuration(remaining))
}

func (m *Machine) handleFinish(generation uint64) {
	if !m.current(generation, "finish") {
		return
	}

	m.generation++
	if !m.Value().IsZero() {
		m.value.Set(countdown.Zero())
	}
	m.logger.Info("timer finished")
	m.state.Set(Finished)
	m.expired.Set(m.expired.Get() + 1)
}

func (m *Machine) current(generation uint64, event string) bool {
	if generation == m.generation && m.State() == Running {
		return true
	}
	m.violation("stale "+event+" delivered by tick source",
		"generation", generation,
		"current_generation", m.generation,
		"state", m.State().String(),
	)
	return false
}

func (m *Machine) violation(msg string, keyvals ...interface{}) {
	if m.opts.Strict {
		panic(fmt.Sprintf("timer: %s %v", msg, keyvals))
	}
	m.logger.Error(msg, keyvals...)
}
