package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	log, closeLog, err := New(Options{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug().Msg("hidden")
	log.Info().Int("length", 3).Msg("visible")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line at info level, got %d: %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["message"] != "visible" || entry["length"] != float64(3) {
		t.Errorf("unexpected entry %v", entry)
	}
	session, _ := entry["session"].(string)
	if _, err := uuid.Parse(session); err != nil {
		t.Errorf("session %q is not a uuid: %v", session, err)
	}
}

func TestNewQuiet(t *testing.T) {
	_, closeLog, err := New(Options{Level: "debug", Quiet: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Errorf("expected an error for an unknown level")
	}
}
