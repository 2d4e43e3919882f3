// Package logging builds the application's slog logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// Supported LOG_FORMAT values.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatOTel = "otel"
)

// ShutdownFunc flushes and releases logging resources.
type ShutdownFunc func(ctx context.Context) error

// New creates a logger writing to w in the given format.
// The otel format routes records through the OpenTelemetry log SDK and
// exports them with the stdout exporter; the returned ShutdownFunc must be
// called to flush it. For other formats the ShutdownFunc is a no-op.
func New(w io.Writer, format, level, serviceName string) (*slog.Logger, ShutdownFunc, error) {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case FormatJSON, "":
		return slog.New(slog.NewJSONHandler(w, opts)), noopShutdown, nil
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), noopShutdown, nil
	case FormatOTel:
		exporter, err := stdoutlog.New(stdoutlog.WithWriter(w))
		if err != nil {
			return nil, nil, fmt.Errorf("create stdout log exporter: %w", err)
		}

		provider := sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)),
		)
		global.SetLoggerProvider(provider)

		handler := otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(provider))
		return slog.New(&levelFilter{Handler: handler, level: lvl}), provider.Shutdown, nil
	default:
		return nil, nil, fmt.Errorf("unsupported log format %q", format)
	}
}

// ParseLevel converts string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func noopShutdown(context.Context) error { return nil }

// levelFilter applies a minimum level to handlers that have no level option.
type levelFilter struct {
	slog.Handler
	level slog.Level
}

func (f *levelFilter) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= f.level && f.Handler.Enabled(ctx, l)
}

func (f *levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelFilter{Handler: f.Handler.WithAttrs(attrs), level: f.level}
}

func (f *levelFilter) WithGroup(name string) slog.Handler {
	return &levelFilter{Handler: f.Handler.WithGroup(name), level: f.level}
}
