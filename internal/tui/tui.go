// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui runs the alert screen as a Bubble Tea program.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/custom-alert/internal/config"
	"github.com/MKhiriev/custom-alert/internal/handler"
	"github.com/MKhiriev/custom-alert/internal/logger"
	"github.com/MKhiriev/custom-alert/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNilConfig is returned by New when no configuration is given.
var ErrNilConfig = errors.New("tui: nil config")

type TUI struct {
	cfg       *config.ClientConfig
	handler   handler.AlertHandler
	buildInfo models.BuildInfo
	logger    *logger.Logger

	// input and output replace the terminal in tests.
	input  io.Reader
	output io.Writer
}

// New prepares the terminal UI. A nil handler falls back to
// [handler.AlertLogHandler].
func New(cfg *config.ClientConfig, h handler.AlertHandler, buildInfo models.BuildInfo, log *logger.Logger) (*TUI, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if log == nil {
		log = logger.Nop()
	}
	if h == nil {
		h = handler.NewAlertLogHandler(log)
	}

	return &TUI{
		cfg:       cfg,
		handler:   h,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the screen and blocks until the user quits or ctx is done.
// Cancellation through ctx is a normal exit.
func (t *TUI) Run(ctx context.Context) error {
	screen := NewScreen(t.cfg, t.handler, t.buildInfo, t.logger)

	t.logger.Info().Msg("starting alert screen")
	_, err := tea.NewProgram(screen, t.programOptions(ctx)...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Err(ctx.Err()).Msg("alert screen cancelled")
			return nil
		}
		return fmt.Errorf("run alert screen: %w", err)
	}

	t.logger.Info().Bool("suppressed", screen.State().Suppressed()).Msg("alert screen closed")
	return nil
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if t.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}
	if t.output != nil {
		opts = append(opts, tea.WithOutput(t.output))
	}
	return opts
}
