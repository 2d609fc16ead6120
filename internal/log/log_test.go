package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Setenv("LIGHTCURVE_ENV", "")
	var buf bytes.Buffer
	l := New("warn", &buf)

	l.Info("quiet")
	l.Warn("loud", "face", 3)

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "face=3") {
		t.Errorf("missing warn line: %q", out)
	}
}

func TestNew_ProductionIsJSON(t *testing.T) {
	t.Setenv("LIGHTCURVE_ENV", "production")
	var buf bytes.Buffer
	New("info", &buf).Info("hello", "face", 1)

	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"face":1`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
