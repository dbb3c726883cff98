// Package logx holds the logger shared by the overlay packages.
package logx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs l for all overlay packages. By default nothing is
// logged; pass nil to go back to silence.
//
// Levels:
//   - Debug: per-event diagnostics (points appended, fragments dropped)
//   - Info: commits, erasures, tool changes
//   - Warn: recoverable problems (bad config values replaced by defaults)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// L returns the current logger.
func L() *slog.Logger {
	return loggerPtr.Load()
}
