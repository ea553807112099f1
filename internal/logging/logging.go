// Package logging builds the zerolog loggers used by the binaries.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options selects the log sink and level.
type Options struct {
	// File receives logs when set. Otherwise Out is used.
	File string
	// Out defaults to stderr.
	Out     io.Writer
	Debug   bool
	Console bool
	// Discard drops everything. Terminal front-ends use it when no file is set.
	Discard bool
}

// New returns a logger tagged with a fresh session id, and a close func for
// any file it opened.
func New(opts Options) (zerolog.Logger, func() error, error) {
	closer := func() error { return nil }
	var out io.Writer
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f.Close
	case opts.Discard:
		out = io.Discard
	case opts.Out != nil:
		out = opts.Out
	default:
		out = os.Stderr
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, NoColor: opts.File != ""}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return logger, closer, nil
}
