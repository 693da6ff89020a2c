// Package log is the leveled logger used throughout vxpage. Output is
// discarded until a logger is installed with SetLogger
package log

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/exp/slog"
)

const (
	LevelError = slog.LevelError
	LevelWarn  = slog.LevelWarn
	LevelInfo  = slog.LevelInfo
	LevelDebug = slog.LevelDebug
	LevelTrace = slog.LevelDebug - 4

	// Trace/Debug/... -> output -> runtime.Callers
	calldepth = 3
)

var (
	level  = new(slog.LevelVar)
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func init() {
	level.Set(LevelError)
}

// SetLevel sets the minimum level which is passed on to the logger
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level returns the current minimum level
func Level() slog.Level {
	return level.Level()
}

// SetLogger installs l as the destination of all log output
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// SetOutput is shorthand for installing a text handler writing to w
func SetOutput(w io.Writer) {
	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})))
}

// ParseLevel parses a level name. Unknown names return LevelError and false
func ParseLevel(name string) (slog.Level, bool) {
	switch name {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn":
		return LevelWarn, true
	case "", "error":
		return LevelError, true
	default:
		return LevelError, false
	}
}

func output(l slog.Level, format string, args ...any) {
	if l < level.Level() {
		return
	}
	ctx := context.Background()
	if !logger.Enabled(ctx, l) {
		return
	}
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	var pcs [1]uintptr
	runtime.Callers(calldepth, pcs[:])
	r := slog.NewRecord(time.Now(), l, message, pcs[0])
	_ = logger.Handler().Handle(ctx, r)
}

func Trace(format string, args ...any) {
	output(LevelTrace, format, args...)
}

func Debug(format string, args ...any) {
	output(LevelDebug, format, args...)
}

func Info(format string, args ...any) {
	output(LevelInfo, format, args...)
}

func Warn(format string, args ...any) {
	output(LevelWarn, format, args...)
}

func Error(format string, args ...any) {
	output(LevelError, format, args...)
}
