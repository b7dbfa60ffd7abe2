// Package logging wires the subsystem's structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Level mirrors the LOGL_* severities spec.md §7 assigns to the DPAG
// category. slog has no NOTICE level, so it collapses onto Warn, matching
// the nearest-standard-level convention used when wiring tint in cmd/root.go.
type Level int

const (
	LevelInfo Level = iota
	LevelNotice
	LevelError
)

// New builds a tint-formatted slog.Logger bound to the "DPAG" category,
// in the shape of the level-to-handler switch in cmd/root.go.
func New(w io.Writer, minLevel Level) *slog.Logger {
	var slogLevel slog.Level
	switch minLevel {
	case LevelError:
		slogLevel = slog.LevelError
	case LevelNotice:
		slogLevel = slog.LevelWarn
	default:
		slogLevel = slog.LevelInfo
	}
	if w == nil {
		w = os.Stdout
	}
	handler := tint.NewHandler(w, &tint.Options{Level: slogLevel})
	return slog.New(handler).With(slog.String("category", "DPAG"))
}
