package wfclog

import (
	"context"
	"log/slog"
	"os"
)

// Important sits between slog's Info and Warn levels: notable enough to
// always surface (terminal solver states, artefact paths) without being a
// warning.
const Important = slog.LevelInfo + 2

// Logger wraps a *slog.Logger; WithIteration pre-binds the recurring
// "iteration" field, and other fields are passed per call.
type Logger struct {
	*slog.Logger
}

// New builds a Logger writing leveled text to standard error.
// verbose=true lowers the threshold to slog.LevelDebug; otherwise
// slog.LevelInfo.
func New(verbose bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return &Logger{Logger: slog.New(h)}
}

// WithIteration returns a Logger with an "iteration" field bound, for the
// per-Propagate progress lines Run's OnIteration hook emits.
func (l *Logger) WithIteration(iteration int) *Logger {
	return &Logger{Logger: l.Logger.With("iteration", iteration)}
}

// Important logs msg at the Important level (between Info and Warn),
// the engine's vocabulary for "solver reached a terminal status".
func (l *Logger) Important(msg string, args ...any) {
	l.Logger.Log(context.Background(), Important, msg, args...)
}
