package ticker

import "time"

// Manual is a deterministic Source for tests. Nothing happens until Fire is called.
type Manual struct {
	active    bool
	remaining time.Duration
	interval  time.Duration
	onTick    func(time.Duration)
	onFinish  func()

	lastTick   func(time.Duration)
	lastFinish func()

	Schedules int
	Cancels   int
	Delivered int
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(total, interval time.Duration, onTick func(time.Duration), onFinish func()) {
	m.Schedules++
	m.active = true
	m.remaining = total
	m.interval = interval
	m.onTick = onTick
	m.onFinish = onFinish
	m.lastTick = onTick
	m.lastFinish = onFinish
}

func (m *Manual) Cancel() {
	m.Cancels++
	m.active = false
	m.onTick = nil
	m.onFinish = nil
}

func (m *Manual) Active() bool {
	return m.active
}

func (m *Manual) Remaining() time.Duration {
	return m.remaining
}

// Fire advances one interval and delivers the resulting tick, plus the finish
// callback when the deadline is reached. It reports whether anything was delivered.
func (m *Manual) Fire() bool {
	if !m.active {
		return false
	}

	m.remaining -= m.interval
	if m.remaining < 0 {
		m.remaining = 0
	}

	m.Delivered++
	onTick, onFinish := m.onTick, m.onFinish
	if m.remaining > 0 {
		onTick(m.remaining)
		return true
	}

	m.active = false
	m.onTick = nil
	m.onFinish = nil
	schedules, cancels := m.Schedules, m.Cancels
	onTick(0)
	if m.Schedules == schedules && m.Cancels == cancels {
		onFinish()
	}
	return true
}

// FireAll fires until the countdown finishes or is cancelled and returns the number of ticks delivered.
func (m *Manual) FireAll() int {
	n := 0
	for m.Fire() {
		n++
	}
	return n
}

// Stale returns the callbacks handed to the most recent Schedule, even after
// Cancel, so tests can simulate a source that delivers after cancellation.
func (m *Manual) Stale() (onTick func(time.Duration), onFinish func()) {
	return m.lastTick, m.lastFinish
}
