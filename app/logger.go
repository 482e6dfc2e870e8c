package app

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates console logger, stdout is never used since it carries the stdio transport
func NewLogger(level string, out io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}).
		Level(logLevel).
		With().Timestamp().Logger()
}
