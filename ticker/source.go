// Package ticker provides the periodic tick sources that drive a running countdown.
package ticker

import "time"

// Source delivers a countdown in fixed intervals.
//
// Schedule starts a countdown of total length. onTick is called at each interval
// boundary with the time still remaining, including a final call with zero at the
// deadline, after which onFinish is called exactly once. Scheduling again replaces
// any countdown in progress. Cancel stops delivery synchronously: once it returns
// no callback from the cancelled countdown is invoked.
type Source interface {
	Schedule(total, interval time.Duration, onTick func(remaining time.Duration), onFinish func())
	Cancel()
}

// Clock abstracts the monotonic time source so sources can be driven deterministically.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
