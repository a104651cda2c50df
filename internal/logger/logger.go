// Package logger builds the zerolog logger used by the CLI and the
// HTTP server.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Build returns a logger writing JSON to stdout, or human-readable
// console output if console is set.
func Build(level string, console bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	if console {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	logger := zerolog.New(out).With().Timestamp().Logger()
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logger.Level(zerolog.DebugLevel)
	case "warn":
		return logger.Level(zerolog.WarnLevel)
	case "error":
		return logger.Level(zerolog.ErrorLevel)
	default:
		return logger.Level(zerolog.InfoLevel)
	}
}
