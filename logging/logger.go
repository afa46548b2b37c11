// Package logging builds the zerolog logger shared by the game.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Options selects the level and destination of the log.
type Options struct {
	Level string
	// File receives JSON lines when set.
	File string
	// Quiet discards output when no File is set, for backends that own
	// the terminal.
	Quiet bool
}

// New returns a logger tagged with a fresh session id and a function that
// closes the log file, if one was opened.
func New(opts Options) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrapf(err, "log level %q", opts.Level)
	}

	var w io.Writer
	closer := func() error { return nil }
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, errors.Wrap(err, "open log file")
		}
		w = f
		closer = f.Close
	case opts.Quiet:
		w = io.Discard
	default:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.New().String()).
		Logger()
	return logger, closer, nil
}
