package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, shutdown, err := New(&buf, FormatJSON, "info", "userecho")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer shutdown(context.Background())

	logger.Debug("hidden")
	logger.Info("server starting", "port", 3000)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %s", out)
	}
	if !strings.Contains(out, `"msg":"server starting"`) || !strings.Contains(out, `"port":3000`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
}

func TestNew_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, _, err := New(&buf, FormatText, "debug", "userecho")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("visible")

	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("unexpected text output: %s", buf.String())
	}
}

func TestNew_OTel(t *testing.T) {
	var buf bytes.Buffer
	logger, shutdown, err := New(&buf, FormatOTel, "warn", "userecho")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "kept") {
		t.Errorf("expected warn record in output: %s", out)
	}
	if strings.Contains(out, "dropped") {
		t.Errorf("info record written at warn level: %s", out)
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	if _, _, err := New(&bytes.Buffer{}, "xml", "info", "userecho"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
