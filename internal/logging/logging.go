package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// EnvironmentDevelopment switches the logger to human-readable console output
const EnvironmentDevelopment = "development"

// New configures and returns a zerolog logger writing to w.
// Unknown levels fall back to info.
func New(w io.Writer, level, environment string) zerolog.Logger {
	// Parse log level
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	// Configure output format
	var logger zerolog.Logger
	if environment == EnvironmentDevelopment {
		// Pretty console output for development
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Caller().Logger()
	} else {
		// JSON output for production
		logger = zerolog.New(w).With().Timestamp().Logger()
	}

	return logger.Level(logLevel)
}
