package headless

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false, so the pixmap and
// display cache never build attributes while logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the silent default logger.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by every Framebuffer and Pixmap. A
// process may drive several framebuffers from different goroutines while
// another one swaps the logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the package's diagnostics to l. Records are silent until
// SetLogger is called; passing nil silences them again. SetLogger is safe to
// call while framebuffers are in use on other goroutines.
//
// Records emitted, all prefixed "headless:":
//   - [slog.LevelDebug] "pixmap allocated" with width, height and format;
//     "display cache resized", "texture created" and "partial upload"
//     (with the number of row runs sent) from Present
//   - [slog.LevelWarn] "allocation rejected" for a non-positive size or an
//     unknown format, "pixel data too short" from SetFromPixels, and
//     "texture upload failed" when Present cannot refresh the GPU copy
//
// Example:
//
//	headless.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger, or the silent default.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
