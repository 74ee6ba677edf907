package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cognivore/cube-with-archive/internal/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		if got := logger.ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q): want %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestNew_JSONAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "warn", false)

	log.Info().Msg("hidden")
	log.Warn().Str("cube", "rema").Msg("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info entry passed a warn logger: %q", buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one json entry, got %q: %v", buf.String(), err)
	}
	for key, want := range map[string]string{"level": "warn", "cube": "rema", "message": "shown"} {
		if got := entry[key]; got != want {
			t.Fatalf("field %s: want %q, got %v", key, want, got)
		}
	}
}
