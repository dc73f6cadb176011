package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_JSON_WritesStructuredEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(&buf, "info", FormatJSON)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	log.Info().Str("url", "https://searx.example.com").Msg("SearXNG URL configured")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "SearXNG URL configured" {
		t.Errorf("unexpected message: %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("unexpected level: %v", entry["level"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(&buf, "INFO", FormatJSON)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected debug entry to be filtered, got %q", buf.String())
	}
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", log.GetLevel())
	}
}

func TestNew_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(&buf, "debug", FormatConsole)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	log.Debug().Msg("Starting SearXNG MCP Server")
	if !strings.Contains(buf.String(), "Starting SearXNG MCP Server") {
		t.Errorf("expected console output, got %q", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(&bytes.Buffer{}, "loud", FormatJSON); err == nil {
		t.Fatal("expected error for invalid level, got nil")
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	t.Parallel()

	if _, err := New(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Fatal("expected error for invalid format, got nil")
	}
}
