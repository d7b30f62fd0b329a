package linerenderer

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops all records. Enabled returns false so that callers skip
// formatting attributes.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discardHandler{}))
}

// SetLogger sets the logger used by the package. By default nothing is logged.
// Passing nil restores the default.
//
// Baking and restoring are logged at [slog.LevelDebug], rejected operations at
// [slog.LevelWarn].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	logger.Store(l)
}

// Logger returns the logger set with [SetLogger].
func Logger() *slog.Logger {
	return logger.Load()
}
