package ticker

import (
	"fmt"
	"time"
)

// Frame is a Source pumped by a host loop. Callbacks only ever run inside Advance,
// so they run on whichever goroutine calls Advance.
//
// Boundaries are computed from the scheduling instant (start + k*interval) rather
// than by accumulating frame deltas, so a slow or jittery loop never drifts.
type Frame struct {
	clock Clock

	active     bool
	generation uint64
	start      time.Time
	total      time.Duration
	interval   time.Duration
	delivered  int
	onTick     func(time.Duration)
	onFinish   func()
}

func NewFrame(clock Clock) *Frame {
	if clock == nil {
		clock = RealClock{}
	}
	return &Frame{clock: clock}
}

func (f *Frame) Schedule(total, interval time.Duration, onTick func(time.Duration), onFinish func()) {
	if interval <= 0 {
		panic(fmt.Sprintf("ticker: non-positive interval %v", interval))
	}
	if total < 0 {
		panic(fmt.Sprintf("ticker: negative total %v", total))
	}

	f.generation++
	f.active = true
	f.start = f.clock.Now()
	f.total = total
	f.interval = interval
	f.delivered = 0
	f.onTick = onTick
	f.onFinish = onFinish
}

// Cancel also invalidates a countdown whose final tick is being delivered, so
// its onFinish is dropped when onTick(0) cancels.
func (f *Frame) Cancel() {
	f.generation++
	f.active = false
	f.onTick = nil
	f.onFinish = nil
}

func (f *Frame) Active() bool {
	return f.active
}

// Advance delivers every boundary that is due, oldest first. A callback that
// cancels or reschedules stops delivery of the remaining boundaries of the old countdown.
func (f *Frame) Advance() {
	if !f.active {
		return
	}

	elapsed := f.clock.Now().Sub(f.start)
	generation := f.generation

	for f.active && f.generation == generation {
		next := time.Duration(f.delivered+1) * f.interval

		if next >= f.total {
			if elapsed < f.total {
				return
			}
			onTick, onFinish := f.onTick, f.onFinish
			f.active = false
			f.onTick = nil
			f.onFinish = nil
			if onTick != nil {
				onTick(0)
			}
			// onTick may have rescheduled; the old countdown must not finish on top of a new one.
			if onFinish != nil && f.generation == generation {
				onFinish()
			}
			return
		}

		if elapsed < next {
			return
		}
		f.delivered++
		if f.onTick != nil {
			f.onTick(f.total - next)
		}
	}
}
