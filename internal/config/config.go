package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"hero-quest/internal/gametime"
)

const (
	envStart     = "HEROQUEST_START"
	envLogLevel  = "HEROQUEST_LOG_LEVEL"
	envLogFormat = "HEROQUEST_LOG_FORMAT"

	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds runtime settings for the game clock tools.
type Config struct {
	// Start is the default clock's starting time.
	Start time.Time
	// DefaultClock is the name the default clock is tracked under.
	DefaultClock string
	// LogLevel is the minimum slog level written.
	LogLevel slog.Level
	// LogFormat is FormatText or FormatJSON.
	LogFormat string
}

type fileConfig struct {
	Start        string `yaml:"start"`
	DefaultClock string `yaml:"default_clock"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Start:        gametime.GameStart,
		DefaultClock: "world",
		LogLevel:     slog.LevelInfo,
		LogFormat:    FormatText,
	}
}

// Load reads the YAML file at path from fsys, then applies environment
// overrides. A missing file or empty path yields the defaults.
func Load(fsys afero.Fs, path string) (Config, error) {
	cfg := Default()

	var file fileConfig
	if path != "" {
		raw, err := afero.ReadFile(fsys, path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return cfg, fmt.Errorf("parse config yaml: %w", err)
			}
		}
	}

	file.Start = getEnvString(envStart, file.Start)
	file.LogLevel = getEnvString(envLogLevel, file.LogLevel)
	file.LogFormat = getEnvString(envLogFormat, file.LogFormat)

	if err := apply(&cfg, file); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func apply(cfg *Config, file fileConfig) error {
	if file.Start != "" {
		start, err := ParseTime(file.Start)
		if err != nil {
			return fmt.Errorf("%w: start: %v", ErrInvalid, err)
		}
		cfg.Start = start
	}
	if file.DefaultClock != "" {
		cfg.DefaultClock = file.DefaultClock
	}
	if file.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(file.LogLevel)); err != nil {
			return fmt.Errorf("%w: log_level %q", ErrInvalid, file.LogLevel)
		}
		cfg.LogLevel = level
	}
	if file.LogFormat != "" {
		format := strings.ToLower(file.LogFormat)
		if format != FormatText && format != FormatJSON {
			return fmt.Errorf("%w: log_format %q (expected text or json)", ErrInvalid, file.LogFormat)
		}
		cfg.LogFormat = format
	}
	return nil
}

// ParseTime accepts RFC 3339 timestamps and the shorter
// "2006-01-02 15:04" and "2006-01-02" forms, all read as UTC.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
