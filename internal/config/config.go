package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences loaded before the UI starts.
type Config struct {
	DBPath      string `yaml:"db_path"`      // SQLite database location
	DisplayName string `yaml:"display_name"` // name stamped on tracked activities

	LogLevel string `yaml:"log_level"` // DEBUG, INFO, WARN, ERROR
	LogFile  string `yaml:"log_file"`  // path to log file, "" disables logging
}

// Default returns the built-in settings.
func Default() *Config {
	cfg, _ := os.UserConfigDir()
	dbPath := ""
	logPath := ""
	if cfg != "" {
		dbPath = filepath.Join(cfg, "pulse", "pulse.db")
		logPath = filepath.Join(cfg, "pulse", "pulse.log")
	}

	return &Config{
		DBPath:      dbPath,
		DisplayName: "You",
		LogLevel:    getEnv("PULSE_LOG_LEVEL", "INFO"),
		LogFile:     getEnv("PULSE_LOG_FILE", logPath),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads config from the given path, falling back to defaults when the
// file does not exist. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// DefaultPath returns ~/.config/pulse/config.yaml.
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "pulse", "config.yaml"), nil
}

// Save writes the config as YAML, creating the directory as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
