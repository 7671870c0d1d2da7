package logctx

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/labstack/gommon/log"

	"github.com/grasp-labs/ds-go-katana-models/middleware/requestctx"
)

var std = newBackend("katana", log.INFO, nil)

func newBackend(prefix string, level log.Lvl, out io.Writer) *log.Logger {
	l := log.New(prefix)
	l.SetHeader("${time_rfc3339} ${prefix}")
	l.SetLevel(level)
	if out != nil {
		l.SetOutput(out)
	}
	return l
}

// Logger implements interfaces.Logger. The zero value writes through the
// package default backend.
type Logger struct {
	backend *log.Logger
}

// New returns a Logger writing to out at the given gommon level.
func New(prefix string, level log.Lvl, out io.Writer) *Logger {
	return &Logger{backend: newBackend(prefix, level, out)}
}

func (l *Logger) Info(ctx context.Context, format string, args ...any) {
	write(l.get(), log.INFO, ctx, format, args...)
}

func (l *Logger) Warning(ctx context.Context, format string, args ...any) {
	write(l.get(), log.WARN, ctx, format, args...)
}

func (l *Logger) Error(ctx context.Context, format string, args ...any) {
	write(l.get(), log.ERROR, ctx, format, args...)
}

func (l *Logger) get() *log.Logger {
	if l == nil || l.backend == nil {
		return std
	}
	return l.backend
}

func write(b *log.Logger, level log.Lvl, ctx context.Context, format string, args ...any) {
	if b.Level() > level {
		return
	}
	msg := fmt.Sprintf("%s %s", buildLogPrefix(levelName(level), ctx), fmt.Sprintf(format, args...))
	switch level {
	case log.WARN:
		b.Warn(msg)
	case log.ERROR:
		b.Error(msg)
	default:
		b.Info(msg)
	}
}

func levelName(level log.Lvl) string {
	switch level {
	case log.WARN:
		return "WARN"
	case log.ERROR:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Log Prefix
//
// Every line is tagged with the request and session IDs set by
// RequestIDMiddleware so a single stocktake request can be followed
// through the logs, plus the file:line of the caller.
func buildLogPrefix(level string, ctx context.Context) string {
	requestID := requestctx.GetRequestID(ctx)
	if requestID == "" {
		requestID = "-"
	}
	sessionID := requestctx.GetSessionID(ctx)
	if sessionID == "" {
		sessionID = "-"
	}

	// buildLogPrefix <- write <- Logger method <- caller
	_, file, line, ok := runtime.Caller(3)
	caller := "unknown"
	if ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	return fmt.Sprintf("[%s][%s][%s][%s]", level, requestID, sessionID, caller)
}
