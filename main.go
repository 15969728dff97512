package main

import (
	"fmt"
	"os"

	"github.com/meghashyamc/wheeltimer/app"
	"github.com/meghashyamc/wheeltimer/chime"
	"github.com/meghashyamc/wheeltimer/config"
	"github.com/meghashyamc/wheeltimer/logger"
	"github.com/meghashyamc/wheeltimer/store"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.NewWithLevel(cfg.GetLogLevel())

	a := app.New(cfg, app.Dependencies{
		Store:  store.New(cfg.GetStatePath()),
		Chime:  newChime(cfg, log),
		Logger: log,
	})
	if err := a.Run(); err != nil {
		log.Error("error running timer", "err", err.Error())
		os.Exit(1)
	}
}

func newChime(cfg *config.Config, log logger.Logger) chime.Player {
	if !cfg.IsChimeEnabled() {
		return chime.Nop{}
	}

	c, err := chime.New(chime.Options{
		Frequency: cfg.GetChimeFrequency(),
		Duration:  cfg.GetChimeDuration(),
		Volume:    cfg.GetChimeVolume(),
	}, log)
	if err != nil {
		log.Warn("audio unavailable, finishing silently", "err", err.Error())
		return chime.Nop{}
	}
	return c
}
