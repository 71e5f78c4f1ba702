// Package logging builds the CLI's slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log level and destination.
type Options struct {
	Level slog.Level
	// File, when set, receives JSON records through a size-rotated writer.
	// Otherwise records go to Stderr as text.
	File   string
	Stderr io.Writer
}

// New returns a logger and a closer that releases the log file, if any.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	if opts.File == "" {
		w := opts.Stderr
		if w == nil {
			w = os.Stderr
		}

		return slog.New(slog.NewTextHandler(w, handlerOpts)), nopCloser{}, nil
	}

	if dir := filepath.Dir(opts.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}

	return slog.New(slog.NewJSONHandler(w, handlerOpts)), w, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
