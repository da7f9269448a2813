package main

import (
	"errors"
	"flag"
	"os"

	"github.com/MKhiriev/custom-alert/internal/client"
	"github.com/MKhiriev/custom-alert/internal/config"
	"github.com/MKhiriev/custom-alert/internal/handler"
	"github.com/MKhiriev/custom-alert/internal/logger"
	"github.com/MKhiriev/custom-alert/internal/tui"
	"github.com/MKhiriev/custom-alert/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bootLog := logger.NewLogger("alertdemo")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	// The terminal belongs to the UI from here on, so logs go to a file.
	log, closer, err := logger.NewClientLogger("alertdemo", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error opening log file")
	}
	defer closer.Close()

	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	ui, err := tui.New(cfg, handler.NewAlertLogHandler(log), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		closer.Close()
		os.Exit(1)
	}
}
