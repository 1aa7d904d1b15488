package main

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// newLogger writes human-readable logs to stderr so they stay out of the
// menu output on stdout.
func newLogger(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	fd := os.Stderr.Fd()
	out := zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(os.Stderr),
		NoColor:    !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("svc", "bookstore").Logger()
}
