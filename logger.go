package folderview

import (
	"log/slog"
	"sync/atomic"
)

// discard is the logger in effect until SetLogger installs another.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discard)
}

// SetLogger routes the log output of every folderview package to l.
// Pass nil to silence it again; nothing is logged by default.
//
// Debug records trace rendering ("view: render", "view: recorded").
// Warn records report drawing that went ahead despite a problem: clipping
// to a folder whose parameters fail Validate, a failed raster fill, or
// bundled fonts that could not be parsed.
//
//	folderview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger. It is safe to call from
// any goroutine.
func Logger() *slog.Logger {
	return logger.Load()
}
