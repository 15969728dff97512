package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth   = 480
	defaultWindowHeight  = 640
	defaultWindowTitle   = "Wheel Timer"
	defaultIntervalMs    = 1000
	defaultMaxHours      = 24
	defaultWheelRadius   = 150
	defaultStateFilename = "wheeltimer_state.yaml"
	defaultChimeHz       = 880
	defaultChimeMs       = 600
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	return newConfig(viperConfig), nil
}

// FromViper wraps an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return newConfig(v)
}

func newConfig(v *viper.Viper) *Config {
	v.SetDefault("chime.enabled", true)
	return &Config{config: v}
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width", defaultWindowWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height", defaultWindowHeight)
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title", defaultWindowTitle)
}

func (c *Config) GetTickInterval() time.Duration {
	return time.Duration(c.getInt("TIMER_INTERVAL_MS", "timer.interval_ms", defaultIntervalMs)) * time.Millisecond
}

func (c *Config) GetMaxHours() int {
	return c.getInt("TIMER_MAX_HOURS", "timer.max_hours", defaultMaxHours)
}

// IsStrict reports whether invariant violations should panic.
func (c *Config) IsStrict() bool {
	if c.config.IsSet("TIMER_STRICT") {
		return c.config.GetBool("TIMER_STRICT")
	}
	return c.config.GetBool("timer.strict")
}

func (c *Config) GetWheelRadius() float64 {
	return float64(c.getInt("WHEEL_RADIUS", "wheel.radius", defaultWheelRadius))
}

func (c *Config) GetDataDir() string {
	dataDir := c.getString("DATA_DIR", "data.dir", "")
	if len(dataDir) > 0 {
		return dataDir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}

func (c *Config) GetStateFilename() string {
	return c.getString("STATE_FILENAME", "data.statefilename", defaultStateFilename)
}

func (c *Config) GetStatePath() string {
	return filepath.Join(c.GetDataDir(), c.GetStateFilename())
}

func (c *Config) IsChimeEnabled() bool {
	if c.config.IsSet("CHIME_ENABLED") {
		return c.config.GetBool("CHIME_ENABLED")
	}
	return c.config.GetBool("chime.enabled")
}

func (c *Config) GetChimeFrequency() int {
	return c.getInt("CHIME_FREQUENCY_HZ", "chime.frequency_hz", defaultChimeHz)
}

func (c *Config) GetChimeDuration() time.Duration {
	return time.Duration(c.getInt("CHIME_DURATION_MS", "chime.duration_ms", defaultChimeMs)) * time.Millisecond
}

// GetChimeVolume is a base-2 exponent, as used by beep's volume effect. 0 leaves the tone unchanged.
func (c *Config) GetChimeVolume() float64 {
	if c.config.IsSet("CHIME_VOLUME") {
		return c.config.GetFloat64("CHIME_VOLUME")
	}
	return c.config.GetFloat64("chime.volume")
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level", "debug")
}

func (c *Config) getInt(envKey, fileKey string, fallback int) int {
	value := c.config.GetInt(envKey)
	if value == 0 {
		value = c.config.GetInt(fileKey)
	}
	if value == 0 {
		value = fallback
	}

	return value
}

func (c *Config) getString(envKey, fileKey string, fallback string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}
	if len(value) == 0 {
		value = fallback
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
