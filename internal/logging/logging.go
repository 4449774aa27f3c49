// Package logging builds the runner's structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = IsTerminal

// New returns a logger writing to w at level. format is auto, text or json;
// auto picks text for terminals and JSON otherwise.
func New(w io.Writer, level, format string) (*clog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "auto", "":
		if isTerminal(w) {
			return clog.New(slog.NewTextHandler(w, opts)), nil
		}
		return clog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return clog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return clog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (expected auto|text|json)", format)
	}
}

// Discard returns a logger that drops every record.
func Discard() *clog.Logger {
	return clog.New(slog.NewTextHandler(io.Discard, nil))
}

// IsTerminal reports whether w is backed by a TTY file descriptor.
func IsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
