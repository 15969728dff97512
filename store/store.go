// Package store remembers the last countdown the user started so it can be
// offered again on the next launch.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meghashyamc/wheeltimer/countdown"
)

type State struct {
	Hours     int       `yaml:"hours"`
	Minutes   int       `yaml:"minutes"`
	Seconds   int       `yaml:"seconds"`
	StartedAt time.Time `yaml:"started_at,omitempty"`
}

func (s State) Value() countdown.Value {
	return countdown.New(s.Hours, s.Minutes, s.Seconds)
}

type Store struct {
	filePath string
	state    State
}

func New(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Load reads the state file. A missing file is not an error and leaves the zero state.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read state file %s: %w", s.filePath, err)
	}

	var loaded State
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", s.filePath, err)
	}

	s.state = loaded
	return nil
}

func (s *Store) Save() error {
	data, err := yaml.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.filePath, err)
	}

	return nil
}

// Remember records value as the last started countdown and saves it.
func (s *Store) Remember(value countdown.Value, at time.Time) error {
	s.state = State{
		Hours:     value.Hours,
		Minutes:   value.Minutes,
		Seconds:   value.Seconds,
		StartedAt: at,
	}
	return s.Save()
}

func (s *Store) Last() countdown.Value {
	return s.state.Value()
}

func (s *Store) State() State {
	return s.state
}
