// Package logger configures slog for the bookstore binaries and provides the
// request-scoped logging used by the HTTP handlers.
//
// dev and test environments get human-readable colorized output (tint),
// prod gets JSON. LOG_LEVEL=none silences all output - used by the
// integration tests to keep server logs out of the test output.
package logger

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
)

// LevelNone disables logging entirely (all records fall below it)
const LevelNone = slog.Level(12)

// InitLogger creates the application logger for the given environment.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler

	switch {
	case level == LevelNone:
		handler = slog.NewTextHandler(io.Discard, nil)
	case environment == "prod" || environment == "staging":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}

// ParseLogLevel converts a LOG_LEVEL string to a slog.Level.
// Unrecognized values fall back to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none":
		return LevelNone
	default:
		return slog.LevelInfo
	}
}

type contextKey int

const (
	requestLoggerKey contextKey = iota
	logAttrsKey
)

// logAttrs collects extra attributes added by handlers/middleware during a
// request so they appear on the final request summary line.
type logAttrs struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

func (l *logAttrs) add(attrs ...slog.Attr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attrs = append(l.attrs, attrs...)
}

func (l *logAttrs) all() []slog.Attr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]slog.Attr(nil), l.attrs...)
}

// ContextRequestLogger returns the request-scoped logger, or slog.Default()
// if the request logging middleware is not installed (e.g. in unit tests).
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if reqLogger, ok := ctx.Value(requestLoggerKey).(*slog.Logger); ok {
		return reqLogger
	}
	return slog.Default()
}

// ContextWithLogAttrs adds attributes to the final request summary line.
// It is a no-op when the request logging middleware is not installed.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	if collector, ok := ctx.Value(logAttrsKey).(*logAttrs); ok {
		collector.add(attrs...)
	}
}

// RequestLogging returns a middleware that stores a request-scoped logger in
// the context (retrieve it with ContextRequestLogger) and emits one summary
// line per request with the method, path, status, size and duration.
func RequestLogging(appLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := appLogger.With(
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			collector := &logAttrs{}

			ctx := context.WithValue(r.Context(), requestLoggerKey, reqLogger)
			ctx = context.WithValue(ctx, logAttrsKey, collector)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				attrs := []slog.Attr{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
				}
				attrs = append(attrs, collector.all()...)

				reqLogger.LogAttrs(r.Context(), slog.LevelInfo, "request", attrs...)
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}
