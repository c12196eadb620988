package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewWriterJSON(t *testing.T) {
	var buf bytes.Buffer

	log := NewWriter(&buf, Config{Level: "info", Format: "json"})
	log.Info().Str("filter", "transactions").Msg("filtered entries")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"filter":"transactions"`, `"message":"filtered entries"`, `"time":`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got %q", want, out)
		}
	}
}

func TestNewWriterConsole(t *testing.T) {
	var buf bytes.Buffer

	log := NewWriter(&buf, Config{Level: "info", Format: "console"})
	log.Info().Msg("filtered entries")

	out := buf.String()
	if out == "" {
		t.Fatalf("expected console output, got empty string")
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected console formatting, got JSON: %q", out)
	}
}

func TestNewWriterLevelFilters(t *testing.T) {
	var buf bytes.Buffer

	log := NewWriter(&buf, Config{Level: "error", Format: "json"})
	log.Debug().Msg("dropped")
	log.Info().Msg("dropped too")

	if buf.Len() != 0 {
		t.Fatalf("expected no output below error level, got %q", buf.String())
	}

	log.Error().Msg("kept")

	if !strings.Contains(buf.String(), `"message":"kept"`) {
		t.Fatalf("expected error output, got %q", buf.String())
	}
}
