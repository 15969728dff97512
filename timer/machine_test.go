package timer_test

import (
	"errors"
	"log/slog"
	"math/rand"
	"testing/quick"
	"time"

	"github.com/meghashyamc/wheeltimer/countdown"
	"github.com/meghashyamc/wheeltimer/logger"
	"github.com/meghashyamc/wheeltimer/ticker"
	"github.com/meghashyamc/wheeltimer/timer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Machine", func() {
	var (
		source  *ticker.Manual
		machine *timer.Machine
		values  []countdown.Value
		states  []timer.State
	)

	newMachine := func(strict bool) *timer.Machine {
		opts := timer.DefaultOptions().
			WithLogger(logger.NewWithOutput(GinkgoWriter, slog.LevelDebug)).
			WithStrict(strict)
		m := timer.New(source, opts)
		m.OnValue(func(v countdown.Value) { values = append(values, v) })
		m.OnState(func(s timer.State) { states = append(states, s) })
		return m
	}

	BeforeEach(func() {
		source = ticker.NewManual()
		values = nil
		states = nil
		machine = newMachine(true)
	})

	Context("when created", func() {
		It("should be finished with a zero value", func() {
			Expect(machine.State()).To(Equal(timer.Finished))
			Expect(machine.Value().IsZero()).To(BeTrue())
			Expect(machine.CanStart()).To(BeFalse())
		})
	})

	Context("when counting down to zero", func() {
		It("should publish every second and finish exactly once", func() {
			Expect(machine.SetSeconds(5)).To(Succeed())
			values = nil

			machine.ToggleStartPause()
			Expect(machine.State()).To(Equal(timer.Running))
			Expect(source.Schedules).To(Equal(1))
			Expect(source.Remaining()).To(Equal(5 * time.Second))

			for i := 0; i < 4; i++ {
				Expect(source.Fire()).To(BeTrue())
				Expect(machine.State()).To(Equal(timer.Running))
			}
			Expect(source.Fire()).To(BeTrue())

			Expect(values).To(Equal([]countdown.Value{
				countdown.New(0, 0, 4),
				countdown.New(0, 0, 3),
				countdown.New(0, 0, 2),
				countdown.New(0, 0, 1),
				countdown.New(0, 0, 0),
			}))
			Expect(states).To(Equal([]timer.State{timer.Running, timer.Finished}))
			Expect(machine.State()).To(Equal(timer.Finished))
		})

		It("should notify expiry once per natural finish", func() {
			expiries := 0
			machine.OnExpire(func() { expiries++ })
			Expect(machine.SetSeconds(2)).To(Succeed())

			machine.Start()
			source.FireAll()

			Expect(expiries).To(Equal(1))
		})

		It("should decompose ticks across hours and minutes", func() {
			Expect(machine.SetHours(1)).To(Succeed())
			values = nil

			machine.Start()
			source.Fire()

			Expect(values).To(Equal([]countdown.Value{countdown.New(0, 59, 59)}))
		})
	})

	Context("when toggling", func() {
		It("should pause a running timer and cancel its source", func() {
			Expect(machine.SetSeconds(10)).To(Succeed())

			machine.ToggleStartPause()
			source.Fire()
			source.Fire()
			machine.ToggleStartPause()

			Expect(machine.State()).To(Equal(timer.Paused))
			Expect(source.Cancels).To(Equal(1))
			delivered := source.Delivered
			Expect(source.Fire()).To(BeFalse())
			Expect(source.Delivered).To(Equal(delivered))
			Expect(machine.Value()).To(Equal(countdown.New(0, 0, 8)))
		})

		It("should resume from the paused value", func() {
			Expect(machine.SetSeconds(10)).To(Succeed())

			machine.ToggleStartPause()
			source.Fire()
			source.Fire()
			source.Fire()
			machine.ToggleStartPause()
			machine.ToggleStartPause()

			Expect(machine.State()).To(Equal(timer.Running))
			Expect(source.Schedules).To(Equal(2))
			Expect(source.Remaining()).To(Equal(7 * time.Second))
		})

		It("should not start with a zero value", func() {
			machine.ToggleStartPause()

			Expect(machine.State()).To(Equal(timer.Finished))
			Expect(source.Schedules).To(Equal(0))
			Expect(states).To(BeEmpty())
		})
	})

	Context("when stopping", func() {
		It("should cancel a running timer and reset to zero", func() {
			Expect(machine.SetMinutes(1)).To(Succeed())
			machine.Start()
			source.Fire()

			machine.Stop()

			Expect(source.Cancels).To(Equal(1))
			Expect(machine.Value()).To(Equal(countdown.Zero()))
			Expect(machine.State()).To(Equal(timer.Finished))
		})

		It("should not cancel when nothing is running", func() {
			Expect(machine.SetMinutes(1)).To(Succeed())

			machine.Stop()

			Expect(source.Cancels).To(Equal(0))
			Expect(machine.Value()).To(Equal(countdown.Zero()))
		})

		It("should be idempotent from any state", func() {
			loop := func(seconds uint8, fires uint8, pause bool) bool {
				source = ticker.NewManual()
				m := newMachine(true)
				Expect(m.SetSeconds(int(seconds % 60))).To(Succeed())
				m.Start()
				for i := 0; i < int(fires%5); i++ {
					source.Fire()
				}
				if pause {
					m.Pause()
				}

				m.Stop()
				m.Stop()

				Expect(m.Value()).To(Equal(countdown.Zero()))
				Expect(m.State()).To(Equal(timer.Finished))
				return true
			}
			Expect(quick.Check(loop, nil)).To(Succeed())
		})
	})

	Context("when editing", func() {
		It("should change only the edited field while paused", func() {
			Expect(machine.SetMinutes(2)).To(Succeed())
			Expect(machine.SetSeconds(30)).To(Succeed())
			machine.Start()
			source.Fire()
			machine.Pause()

			Expect(machine.SetHours(3)).To(Succeed())

			Expect(machine.Value()).To(Equal(countdown.New(3, 2, 29)))
			Expect(machine.State()).To(Equal(timer.Paused))
		})

		It("should reject edits while running", func() {
			Expect(machine.SetSeconds(5)).To(Succeed())
			machine.Start()

			err := machine.SetMinutes(1)

			Expect(errors.Is(err, timer.ErrNotEditable)).To(BeTrue())
			Expect(machine.Value()).To(Equal(countdown.New(0, 0, 5)))
			Expect(errors.Is(machine.Restore(countdown.New(1, 0, 0)), timer.ErrNotEditable)).To(BeTrue())
		})

		It("should clamp out of range values", func() {
			r := rand.New(rand.NewSource(time.Now().UnixNano()))
			loop := func() bool {
				n := r.Intn(200) - 50
				Expect(machine.SetMinutes(n)).To(Succeed())
				Expect(machine.SetSeconds(n)).To(Succeed())
				Expect(machine.SetHours(n)).To(Succeed())
				v := machine.Value()
				Expect(v.Minutes).To(And(BeNumerically(">=", 0), BeNumerically("<=", 59)))
				Expect(v.Seconds).To(And(BeNumerically(">=", 0), BeNumerically("<=", 59)))
				Expect(v.Hours).To(And(BeNumerically(">=", 0), BeNumerically("<=", timer.DefaultMaxHours)))
				return true
			}
			Expect(quick.Check(loop, nil)).To(Succeed())
		})

		It("should restore a whole value while finished", func() {
			Expect(machine.Restore(countdown.New(1, 2, 3))).To(Succeed())
			Expect(machine.Value()).To(Equal(countdown.New(1, 2, 3)))
			Expect(machine.CanStart()).To(BeTrue())
		})
	})

	Context("when the tick source misbehaves", func() {
		It("should panic on a tick after pause in strict mode", func() {
			Expect(machine.SetSeconds(5)).To(Succeed())
			machine.Start()
			machine.Pause()

			onTick, _ := source.Stale()
			Expect(func() { onTick(3 * time.Second) }).To(Panic())
		})

		It("should ignore a stale finish after a restart", func() {
			machine = newMachine(false)
			Expect(machine.SetSeconds(5)).To(Succeed())
			machine.Start()
			_, staleFinish := source.Stale()
			machine.Pause()
			machine.Start()

			staleFinish()

			Expect(machine.State()).To(Equal(timer.Running))
			Expect(machine.Value()).To(Equal(countdown.New(0, 0, 5)))
		})

		It("should ignore a tick after stop", func() {
			machine = newMachine(false)
			Expect(machine.SetSeconds(5)).To(Succeed())
			machine.Start()
			machine.Stop()
			values = nil

			onTick, _ := source.Stale()
			onTick(4 * time.Second)

			Expect(values).To(BeEmpty())
			Expect(machine.Value()).To(Equal(countdown.Zero()))
		})

		It("should reject negative remaining time", func() {
			Expect(machine.SetSeconds(5)).To(Succeed())
			machine.Start()

			onTick, _ := source.Stale()
			Expect(func() { onTick(-time.Second) }).To(Panic())
		})
	})

	Context("when driven by a frame source", func() {
		It("should count down against the frame clock", func() {
			clock := &stepClock{now: time.Unix(0, 0)}
			frame := ticker.NewFrame(clock)
			m := timer.New(frame, timer.DefaultOptions().WithLogger(logger.NewWithOutput(GinkgoWriter, slog.LevelDebug)).WithStrict(true))
			Expect(m.SetSeconds(3)).To(Succeed())

			m.Start()
			for i := 0; i < 4*60; i++ {
				clock.now = clock.now.Add(time.Second / 60)
				frame.Advance()
			}

			Expect(m.State()).To(Equal(timer.Finished))
			Expect(m.Value().IsZero()).To(BeTrue())
		})

		It("should not finish when a subscriber pauses on the final zero", func() {
			clock := &stepClock{now: time.Unix(0, 0)}
			frame := ticker.NewFrame(clock)
			m := timer.New(frame, timer.DefaultOptions().WithLogger(logger.NewWithOutput(GinkgoWriter, slog.LevelDebug)).WithStrict(true))
			expiries := 0
			m.OnExpire(func() { expiries++ })
			m.OnValue(func(v countdown.Value) {
				if v.IsZero() && m.State() == timer.Running {
					m.Pause()
				}
			})
			Expect(m.SetSeconds(1)).To(Succeed())

			m.Start()
			clock.now = clock.now.Add(time.Second)
			Expect(frame.Advance).ToNot(Panic())

			Expect(m.State()).To(Equal(timer.Paused))
			Expect(m.Value().IsZero()).To(BeTrue())
			Expect(expiries).To(Equal(0))

			m.Stop()
			Expect(m.State()).To(Equal(timer.Finished))
		})
	})
})

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}
