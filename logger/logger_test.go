package logger_test

import (
	"bytes"
	"log/slog"

	"github.com/meghashyamc/wheeltimer/logger"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	It("should parse known levels and default to debug", func() {
		Expect(logger.ParseLevel("INFO")).To(Equal(slog.LevelInfo))
		Expect(logger.ParseLevel(" warn ")).To(Equal(slog.LevelWarn))
		Expect(logger.ParseLevel("error")).To(Equal(slog.LevelError))
		Expect(logger.ParseLevel("verbose")).To(Equal(slog.LevelDebug))
	})

	It("should write json with key value pairs", func() {
		buf := &bytes.Buffer{}
		log := logger.NewWithOutput(buf, slog.LevelInfo)

		log.Info("timer started", "remaining_ms", 5000)
		log.Debug("hidden")

		Expect(buf.String()).To(ContainSubstring(`"msg":"timer started"`))
		Expect(buf.String()).To(ContainSubstring(`"remaining_ms":5000`))
		Expect(buf.String()).ToNot(ContainSubstring("hidden"))
	})
})
