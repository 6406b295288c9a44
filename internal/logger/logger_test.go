package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"DEBUG", DEBUG},
		{"INFO", INFO},
		{"WARN", WARN},
		{"ERROR", ERROR},
		{"garbage", INFO},
		{"", INFO},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pulse.log")
	l, err := New(path, DEBUG)
	if err != nil {
		t.Fatal(err)
	}

	l.Info("started", F("db", "/tmp/pulse.db"))
	l.Error("boom")
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "INFO: started db=/tmp/pulse.db") {
		t.Fatalf("missing info line: %q", out)
	}
	if !strings.Contains(out, "ERROR: boom") {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.log")
	l, err := New(path, WARN)
	if err != nil {
		t.Fatal(err)
	}

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("visible")
	l.Close()

	data, _ := os.ReadFile(path)
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("lines below level leaked: %q", out)
	}
	if !strings.Contains(out, "WARN: visible") {
		t.Fatalf("missing warn line: %q", out)
	}
}

func TestLoggerEmptyPathDiscards(t *testing.T) {
	l, err := New("", DEBUG)
	if err != nil {
		t.Fatal(err)
	}
	// Must not panic and must be safe to close.
	l.Info("goes nowhere")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNilLoggerSafe(t *testing.T) {
	var l *Logger
	l.Debug("no-op")
	l.Info("no-op")
	l.Warn("no-op")
	l.Error("no-op")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}
