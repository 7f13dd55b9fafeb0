package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a leveled logger writing to w. Unknown levels fall back
// to warn. Console output is human readable, otherwise JSON lines.
func NewLogger(w io.Writer, level string, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// NewStderrLogger is NewLogger on os.Stderr
func NewStderrLogger(level string, console bool) zerolog.Logger {
	return NewLogger(os.Stderr, level, console)
}
