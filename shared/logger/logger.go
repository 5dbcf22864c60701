package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a logger in the given format: "json" writes one JSON object
// per line, anything else writes human-readable console output.
func New(format string) zerolog.Logger {
	if format == "json" {
		return NewJSON(os.Stdout)
	}
	return NewConsole()
}

// NewConsole creates a console logger for interactive use.
func NewConsole() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewJSON creates a logger that writes one JSON object per line to w.
func NewJSON(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
