package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/ilygor/chessjerk/internal/errors"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Debug().Msg("hidden")
	log.Info().Str("move", "e2e4").Msg("played")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["move"] != "e2e4" || entry["message"] != "played" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Debug().Int("leaves", 12).Msg("search done")

	out := buf.String()
	if !strings.Contains(out, "search done") || !strings.Contains(out, "leaves=12") {
		t.Errorf("console output = %q", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		if _, err := New(&bytes.Buffer{}, level, false); !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("New(%q) error = %v, want ErrInvalidConfig", level, err)
		}
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info().Msg("nothing")
}
