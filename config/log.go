package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LoggingLevels lists the accepted -logging-level values.
var LoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

// LoggingLevelsString is LoggingLevels for flag help text.
var LoggingLevelsString = strings.Join(LoggingLevels, ", ")

// ValidateLoggingLevel checks if level is one of
// LoggingLevels.
func ValidateLoggingLevel(level string) bool {
	for _, l := range LoggingLevels {
		if l == level {
			return true
		}
	}
	return false
}

// NewLogger creates a text logger on stderr at the given
// level.
func NewLogger(level string) (*logrus.Logger, error) {
	level = strings.ToLower(level)
	if !ValidateLoggingLevel(level) {
		return nil, fmt.Errorf("invalid logging level %q, want one of: %s", level, LoggingLevelsString)
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &logrus.TextFormatter{
			FullTimestamp: true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: parsed,
	}, nil
}
