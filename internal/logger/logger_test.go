package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries at WARN level, got %d: %q", len(lines), buf.String())
	}

	var entry Entry
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" {
		t.Errorf("expected level ERROR, got %q", entry.Level)
	}
	if entry.Error != "boom" {
		t.Errorf("expected error field 'boom', got %q", entry.Error)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("Discovered events", Fields{"source": "cncf", "count": 12})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if entry.Fields["source"] != "cncf" {
		t.Errorf("expected source field 'cncf', got %v", entry.Fields["source"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw      string
		expected Level
	}{
		{"DEBUG", LevelDebug},
		{"ERROR", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.raw); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %q, expected %q", tt.raw, got, tt.expected)
		}
	}
}
