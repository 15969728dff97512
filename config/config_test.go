package config_test

import (
	"path/filepath"
	"time"

	"github.com/meghashyamc/wheeltimer/config"
	"github.com/spf13/viper"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Context("with nothing set", func() {
		cfg := config.FromViper(viper.New())

		It("should fall back to defaults", func() {
			Expect(cfg.GetWindowWidth()).To(Equal(480))
			Expect(cfg.GetWindowHeight()).To(Equal(640))
			Expect(cfg.GetWindowTitle()).To(Equal("Wheel Timer"))
			Expect(cfg.GetTickInterval()).To(Equal(time.Second))
			Expect(cfg.GetMaxHours()).To(Equal(24))
			Expect(cfg.IsStrict()).To(BeFalse())
			Expect(cfg.IsChimeEnabled()).To(BeTrue())
			Expect(cfg.GetChimeFrequency()).To(Equal(880))
			Expect(cfg.GetChimeDuration()).To(Equal(600 * time.Millisecond))
			Expect(cfg.GetStateFilename()).To(Equal("wheeltimer_state.yaml"))
		})
	})

	Context("with file keys set", func() {
		It("should read the dotted keys", func() {
			v := viper.New()
			v.Set("window.title", "Tea")
			v.Set("timer.max_hours", 12)
			v.Set("timer.strict", true)
			v.Set("data.dir", "/tmp/wheeltimer")
			v.Set("chime.enabled", false)
			v.Set("chime.volume", -2.5)
			cfg := config.FromViper(v)

			Expect(cfg.GetWindowTitle()).To(Equal("Tea"))
			Expect(cfg.GetMaxHours()).To(Equal(12))
			Expect(cfg.IsStrict()).To(BeTrue())
			Expect(cfg.GetStatePath()).To(Equal(filepath.Join("/tmp/wheeltimer", "wheeltimer_state.yaml")))
			Expect(cfg.IsChimeEnabled()).To(BeFalse())
			Expect(cfg.GetChimeVolume()).To(Equal(-2.5))
		})

		It("should prefer the upper case keys", func() {
			v := viper.New()
			v.Set("timer.interval_ms", 1000)
			v.Set("TIMER_INTERVAL_MS", 250)
			v.Set("log.level", "warn")
			cfg := config.FromViper(v)

			Expect(cfg.GetTickInterval()).To(Equal(250 * time.Millisecond))
			Expect(cfg.GetLogLevel()).To(Equal("warn"))
		})
	})
})
