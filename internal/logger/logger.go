// Package logger wraps log/slog with a process-wide level.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	current  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar}))
)

// Init points the logger at w. A nil writer means stderr.
func Init(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	mu.Lock()
	defer mu.Unlock()
	current = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	slog.SetDefault(current)
}

// SetLevel sets the minimum level from a name: debug, info, warn or error.
// Unknown names select info.
func SetLevel(name string) {
	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	levelVar.Set(l)
}

// SetDebug enables debug level logging.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
		return
	}
	levelVar.Set(slog.LevelInfo)
}

// L returns the shared logger.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }
