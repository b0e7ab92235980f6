package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"biblioteca-service/pkg/config"
)

type contextKey string

// RequestIDKey is the context key under which middleware stores the
// per-request identifier.
const RequestIDKey contextKey = "request_id"

// Logger wraps a logrus logger plus the optional log file it owns.
type Logger struct {
	raw  *logrus.Logger
	file *os.File
}

// NewLogger builds a logger from config. Unknown levels fall back to info;
// when file output cannot be opened we fall back to stdout instead of
// failing startup.
func NewLogger(cfg *config.Config) *Logger {
	raw := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	raw.SetLevel(level)

	if cfg.Log.Format == "json" {
		raw.SetFormatter(&logrus.JSONFormatter{})
	} else {
		raw.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l := &Logger{raw: raw}

	switch cfg.Log.Output {
	case "file":
		f, err := os.OpenFile(cfg.Log.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			raw.SetOutput(os.Stdout)
			raw.Warnf("logger: cannot open log file %s, falling back to stdout: %v", cfg.Log.Filename, err)
		} else {
			l.file = f
			raw.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	default:
		raw.SetOutput(os.Stdout)
	}

	return l
}

// Close releases the log file if one was opened.
func (l *Logger) Close() {
	if l != nil && l.file != nil {
		_ = l.file.Close()
	}
}

var (
	globalMu sync.RWMutex
	global   = &Logger{raw: logrus.StandardLogger()}
)

// SetGlobalLogger installs the process-wide logger. Called once in app.Run.
func SetGlobalLogger(l *Logger) {
	if l == nil {
		return
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	global = l
}

func raw() *logrus.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global.raw
}

func Debugf(format string, args ...interface{}) { raw().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { raw().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { raw().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { raw().Errorf(format, args...) }

// Fatal logs the message and exits.
func Fatal(msg string) { raw().Fatal(msg) }

// WithContext returns an entry carrying the request id stored in ctx,
// if any, so request-scoped logs can be correlated.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(raw())
	if ctx == nil {
		return entry
	}
	if v := ctx.Value(RequestIDKey); v != nil {
		entry = entry.WithField("request_id", fmt.Sprintf("%v", v))
	}
	return entry
}
