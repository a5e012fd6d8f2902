package clip

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while batches log from worker goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for clip and its sub-packages.
// By default, clip produces no log output. Pass nil to restore the
// default silent behavior. SetLogger is safe for concurrent use.
//
// The single-segment clippers never log. Log levels used elsewhere:
//   - [slog.LevelDebug]: batch runs (algorithm, sizes, visible count, timing)
//   - [slog.LevelWarn]: suspicious input that still produces a result,
//     such as a non-convex clip polygon passed to a batch
//
// Example:
//
//	clip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by clip.
// Sub-packages (lineio, render) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
