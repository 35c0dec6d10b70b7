package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clive/counterdash/internal/auth"
	"github.com/clive/counterdash/internal/config"
	"github.com/clive/counterdash/internal/session"
	"github.com/clive/counterdash/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logger: the terminal belongs to the UI, so logs go to a file
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	logger.Info("starting", "login_delay", cfg.LoginDelay.String(), "debug", cfg.Debug)

	ctrl := session.NewController(logger)
	authenticator := auth.NewSimulated(cfg.LoginDelay)

	p := tea.NewProgram(
		tui.NewRootModel(cfg, ctrl, authenticator, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Info("stopped")
	return nil
}
