package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pulse/internal/clock"
	"github.com/sadopc/pulse/internal/config"
	"github.com/sadopc/pulse/internal/logger"
	"github.com/sadopc/pulse/internal/store"
	"github.com/sadopc/pulse/internal/tui"
)

func main() {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogFile, logger.ParseLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	s, err := store.New(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := s.SeedDefaultGoals(settingInt(s, "default_daily_target", 28800), settingInt(s, "default_weekly_target", 144000)); err != nil {
		logger.Warn("seed default goals", logger.F("err", err))
	}

	displayName := settingStr(s, "display_name", cfg.DisplayName)
	idleTimeout := time.Duration(settingInt(s, "idle_timeout", 300)) * time.Second

	logger.Info("starting", logger.F("db", cfg.DBPath))

	app := tui.NewApp(s, clock.System{}, displayName, idleTimeout)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func settingStr(s *store.Store, key, fallback string) string {
	v, err := s.GetSetting(key)
	if err != nil || v == "" {
		return fallback
	}
	return v
}

func settingInt(s *store.Store, key string, fallback int64) int64 {
	v, err := s.GetSetting(key)
	if err != nil {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
