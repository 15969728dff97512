// Package chime plays the tone that announces a finished countdown.
package chime

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/meghashyamc/wheeltimer/logger"
)

const SampleRate = beep.SampleRate(44100)

type Player interface {
	Play()
}

type Options struct {
	Frequency int
	Duration  time.Duration
	// Volume is a base-2 exponent: -1 halves the amplitude, 0 leaves it unchanged.
	Volume float64
}

type Chime struct {
	opts   Options
	logger logger.Logger
}

// New initialises the speaker. It fails when no audio device is available, in
// which case callers should fall back to Nop.
func New(opts Options, logger logger.Logger) (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialise speaker: %w", err)
	}
	logger.Debug("speaker initialised", "sample_rate", int(SampleRate), "frequency_hz", opts.Frequency)

	return &Chime{opts: opts, logger: logger}, nil
}

// Play returns immediately; the speaker mixes the tone on its own goroutine.
func (c *Chime) Play() {
	c.logger.Debug("playing chime", "duration", c.opts.Duration.String())
	speaker.Play(Streamer(c.opts))
}

// Streamer renders the chime: a sine tone with a linear fade out, scaled by the volume.
func Streamer(opts Options) beep.Streamer {
	length := SampleRate.N(opts.Duration)
	tone := beep.Take(length, fadeOut(sine(SampleRate, opts.Frequency), length))

	return &effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   opts.Volume,
		Silent:   false,
	}
}

func sine(sr beep.SampleRate, frequency int) beep.Streamer {
	step := 2 * math.Pi * float64(frequency) / float64(sr)
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			value := math.Sin(step * float64(position))
			samples[i][0] = value
			samples[i][1] = value
			position++
		}
		return len(samples), true
	})
}

func fadeOut(s beep.Streamer, length int) beep.Streamer {
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		n, ok = s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1 - float64(position)/float64(length)
			if gain < 0 {
				gain = 0
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			position++
		}
		return n, ok
	})
}

// Nop is used when audio is disabled or unavailable.
type Nop struct{}

func (Nop) Play() {}
