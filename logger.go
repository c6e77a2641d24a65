package gpufilter

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gpufilter and its sub-packages.
// By default gpufilter produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by gpufilter:
//   - [slog.LevelDebug]: object lifecycle (textures, framebuffers, programs)
//   - [slog.LevelInfo]: driver loading in backend/desktop
//   - [slog.LevelWarn]: shader compile and link diagnostics, incomplete
//     framebuffers
//
// Example:
//
//	gpufilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (headless, shader,
// filterchain) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
