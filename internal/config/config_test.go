package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.DisplayName != "You" {
		t.Fatalf("expected default display name 'You', got %q", c.DisplayName)
	}
	if c.LogLevel != "INFO" {
		t.Fatalf("expected default log level INFO, got %q", c.LogLevel)
	}
	if c.DBPath == "" {
		t.Fatal("expected a default db path")
	}
}

func TestDefaultEnvOverride(t *testing.T) {
	t.Setenv("PULSE_LOG_LEVEL", "DEBUG")
	t.Setenv("PULSE_LOG_FILE", "/tmp/pulse-test.log")

	c := Default()
	if c.LogLevel != "DEBUG" {
		t.Fatalf("expected DEBUG from env, got %q", c.LogLevel)
	}
	if c.LogFile != "/tmp/pulse-test.log" {
		t.Fatalf("expected log file from env, got %q", c.LogFile)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.DisplayName != "You" {
		t.Fatalf("expected defaults, got %+v", c)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("display_name: Ada\nlog_level: WARN\n"), 0o644)

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.DisplayName != "Ada" || c.LogLevel != "WARN" {
		t.Fatalf("unexpected config: %+v", c)
	}
	// Unset fields keep their defaults.
	if c.DBPath == "" {
		t.Fatal("db path should fall back to the default")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte(":\n  - not yaml ["), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	c := Default()
	c.DisplayName = "Grace"
	c.DBPath = "/data/pulse.db"
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.DisplayName != "Grace" || loaded.DBPath != "/data/pulse.db" {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
}
