package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"noisy": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init("info", true, &buf)
	defer Discard()

	Debug("hidden")
	Info("round played", "outcome", "win")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %s", out)
	}
	if !strings.Contains(out, `"outcome":"win"`) {
		t.Fatalf("expected JSON attribute in output, got %s", out)
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	Init("info", false, &buf)
	defer Discard()

	With("session_id", "abc").Warn("ws write error")

	if out := buf.String(); !strings.Contains(out, "session_id=abc") {
		t.Fatalf("expected bound attribute in output, got %s", out)
	}
}
