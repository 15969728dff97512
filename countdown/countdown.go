package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute

	maxMinutes = 59
	maxSeconds = 59
)

// Value is the duration shown on the display, split into hours, minutes and seconds.
// Fields are not range checked on assignment; use Clamp to bring a value into range.
type Value struct {
	Hours   int
	Minutes int
	Seconds int
}

func Zero() Value {
	return Value{}
}

func New(hours, minutes, seconds int) Value {
	return Value{Hours: hours, Minutes: minutes, Seconds: seconds}
}

// FromMilliseconds decomposes ms into canonical hours, minutes and seconds,
// truncating any sub-second remainder. Negative input panics.
func FromMilliseconds(ms int64) Value {
	if ms < 0 {
		panic(fmt.Sprintf("countdown: negative milliseconds %d", ms))
	}

	hours := ms / msPerHour
	minutes := (ms - hours*msPerHour) / msPerMinute
	seconds := (ms - hours*msPerHour - minutes*msPerMinute) / msPerSecond

	return Value{Hours: int(hours), Minutes: int(minutes), Seconds: int(seconds)}
}

func FromDuration(d time.Duration) Value {
	return FromMilliseconds(d.Milliseconds())
}

func (v Value) ToMilliseconds() int64 {
	return int64(v.Hours)*msPerHour + int64(v.Minutes)*msPerMinute + int64(v.Seconds)*msPerSecond
}

func (v Value) Duration() time.Duration {
	return time.Duration(v.ToMilliseconds()) * time.Millisecond
}

func (v Value) IsZero() bool {
	return v.Hours == 0 && v.Minutes == 0 && v.Seconds == 0
}

// Get returns the component selected by field.
func (v Value) Get(field Field) int {
	switch field {
	case Hours:
		return v.Hours
	case Minutes:
		return v.Minutes
	case Seconds:
		return v.Seconds
	}
	return 0
}

// With returns a copy of v with only the given field replaced.
func (v Value) With(field Field, n int) Value {
	switch field {
	case Hours:
		v.Hours = n
	case Minutes:
		v.Minutes = n
	case Seconds:
		v.Seconds = n
	}
	return v
}

// Clamp limits minutes and seconds to [0,59] and hours to [0,maxHours].
func (v Value) Clamp(maxHours int) Value {
	return Value{
		Hours:   clampValue(v.Hours, 0, maxHours),
		Minutes: clampValue(v.Minutes, 0, maxMinutes),
		Seconds: clampValue(v.Seconds, 0, maxSeconds),
	}
}

// String formats the value as HH:MM:SS.
func (v Value) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", v.Hours, v.Minutes, v.Seconds)
}

func clampValue(value, min, max int) int {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
