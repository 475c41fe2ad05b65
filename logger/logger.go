package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the logger used when a device is not given one. It discards
// everything until Init enables it.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

type Options struct {
	Enabled bool       // If false, all logging is discarded
	Path    string     // File to append to, "-" for stderr
	Level   slog.Level // Minimum level, LevelInfo unless set
}

// Init configures L. The returned closer releases the log file and is
// never nil.
func Init(opts Options) (io.Closer, error) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nopCloser{}, nil
	}
	var w io.Writer
	var c io.Closer = nopCloser{}
	if opts.Path == "" || opts.Path == "-" {
		w = os.Stderr
	} else {
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w, c = f, f
	}
	L = New(w, opts.Level)
	return c, nil
}

// New builds a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
