package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/custom-alert/internal/logger"
	"github.com/MKhiriev/custom-alert/models"
)

var ErrNilUI = errors.New("client: nil ui")

type App struct {
	ui        UI
	buildInfo models.BuildInfo
	logger    *logger.Logger

	signals []os.Signal
}

func NewApp(ui UI, buildInfo models.BuildInfo, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}

	return &App{
		ui:        ui,
		buildInfo: buildInfo,
		logger:    log,
		signals:   []os.Signal{os.Interrupt, syscall.SIGTERM},
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), a.signals...)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().
		Str("version", a.buildInfo.Version()).
		Str("date", a.buildInfo.Date()).
		Str("commit", a.buildInfo.Commit()).
		Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
