package timer

import (
	"time"

	"github.com/meghashyamc/wheeltimer/logger"
)

const (
	// DefaultInterval is the period between published countdown values.
	DefaultInterval = time.Second

	// DefaultMaxHours matches the number of ticks on the hours wheel.
	DefaultMaxHours = 24
)

// Options configure a Machine.
type Options struct {
	Logger   logger.Logger
	Interval time.Duration
	MaxHours int
	// Strict turns invariant violations, such as a tick delivered after
	// cancellation, into panics instead of error logs.
	Strict bool
}

func DefaultOptions() Options {
	return Options{
		Logger:   logger.New(),
		Interval: DefaultInterval,
		MaxHours: DefaultMaxHours,
	}
}

func (opts Options) WithLogger(logger logger.Logger) Options {
	opts.Logger = logger
	return opts
}

func (opts Options) WithInterval(interval time.Duration) Options {
	opts.Interval = interval
	return opts
}

func (opts Options) WithMaxHours(maxHours int) Options {
	opts.MaxHours = maxHours
	return opts
}

func (opts Options) WithStrict(strict bool) Options {
	opts.Strict = strict
	return opts
}
