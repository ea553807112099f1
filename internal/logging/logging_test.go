package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewTagsSession(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Out: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer closeFn()

	logger.Debug().Msg("hidden")
	logger.Info().Int("score", 10).Msg("halted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line at info level, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := uuid.Parse(entry["session"].(string)); err != nil {
		t.Fatalf("session is not a uuid: %v", entry["session"])
	}
	if entry["message"] != "halted" {
		t.Fatalf("message = %v", entry["message"])
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	logger, closeFn, err := New(Options{File: path, Debug: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug().Msg("rewound")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "rewound") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestNewRejectsBadPath(t *testing.T) {
	if _, _, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "x.log")}); err == nil {
		t.Fatal("expected error for an unwritable path")
	}
}
