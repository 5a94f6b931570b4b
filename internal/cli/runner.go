package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// ErrUsage marks errors caused by bad flags or config rather than a failed run.
var ErrUsage = errors.New("usage")

// ExitCode maps an error from Run to a process exit code (0 ok, 1 error, 2 usage).
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}

// Run starts the interactive list and blocks until the user quits or ctx ends.
func Run(ctx context.Context, cfg *config.Config, opts ...tea.ProgramOption) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	mode, err := ui.ParseColorMode(cfg.Color)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	ui.SetColorMode(mode)
	ui.SetTheme(cfg.Theme)

	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var items []model.Item
	if cfg.Seed {
		items = model.Seed()
	}
	m := tui.New(tui.Options{Items: items, Logger: log})

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	popts = append(popts, opts...)

	log.Info("session started", "items", len(items), "theme", cfg.Theme)
	if _, err := tea.NewProgram(m, popts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	done, pending := m.Controller().Stats()
	log.Info("session ended", "done", done, "pending", pending)
	return nil
}

// openLogger returns a file logger when cfg.LogFile is set and a no-op
// logger otherwise. The terminal belongs to the TUI, so logs never go there.
func openLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.NewNop(), func() {}, nil
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	f, err := tea.LogToFile(cfg.LogFile, "tada")
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return logging.New(f, level), func() { _ = f.Close() }, nil
}
