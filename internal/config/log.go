package config

import (
	"fmt"

	"github.com/ilygor/chessjerk/internal/errors"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string

	// Console selects human-readable output instead of JSON lines
	Console bool
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "info", Console: true}
}

// Validate checks that the log level is known.
func (l *LogConfig) Validate() error {
	for _, lvl := range logLevels {
		if l.Level == lvl {
			return nil
		}
	}
	return fmt.Errorf("unknown log level %q: %w", l.Level, errors.ErrInvalidConfig)
}

func validateSide(side string) error {
	switch side {
	case "white", "black", "none":
		return nil
	}
	return fmt.Errorf("unknown engine side %q: %w", side, errors.ErrInvalidConfig)
}
