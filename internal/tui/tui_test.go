// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/custom-alert/internal/handler"
	"github.com/MKhiriev/custom-alert/internal/logger"
	"github.com/MKhiriev/custom-alert/internal/mock"
	"github.com/MKhiriev/custom-alert/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		ui, err := New(nil, nil, models.NewBuildInfo("", "", ""), nil)

		assert.ErrorIs(t, err, ErrNilConfig)
		assert.Nil(t, ui)
	})

	t.Run("defaults handler and logger", func(t *testing.T) {
		ui, err := New(testConfig(false), nil, models.NewBuildInfo("", "", ""), nil)

		require.NoError(t, err)
		assert.IsType(t, &handler.AlertLogHandler{}, ui.handler)
		assert.NotNil(t, ui.logger)
	})

	t.Run("keeps given handler", func(t *testing.T) {
		h := mock.NewMockAlertHandler(gomock.NewController(t))

		ui, err := New(testConfig(false), h, models.NewBuildInfo("", "", ""), logger.Nop())

		require.NoError(t, err)
		assert.Same(t, h, ui.handler)
	})
}

func TestTUI_programOptions(t *testing.T) {
	tests := []struct {
		name      string
		altScreen bool
		mouse     bool
		testIO    bool
		want      int
	}{
		{name: "bare", want: 1},
		{name: "alt screen", altScreen: true, want: 2},
		{name: "alt screen and mouse", altScreen: true, mouse: true, want: 3},
		{name: "test io", testIO: true, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(false)
			cfg.UI.AltScreen = tt.altScreen
			cfg.UI.Mouse = tt.mouse

			ui, err := New(cfg, nil, models.NewBuildInfo("", "", ""), logger.Nop())
			require.NoError(t, err)
			if tt.testIO {
				ui.input = strings.NewReader("")
				ui.output = io.Discard
			}

			assert.Len(t, ui.programOptions(context.Background()), tt.want)
		})
	}
}

func TestTUI_Run(t *testing.T) {
	t.Run("quit key", func(t *testing.T) {
		h := mock.NewMockAlertHandler(gomock.NewController(t))
		cfg := testConfig(true)
		cfg.UI.AltScreen = false
		cfg.UI.Mouse = false

		ui, err := New(cfg, h, models.NewBuildInfo("", "", ""), logger.Nop())
		require.NoError(t, err)
		ui.input = strings.NewReader("q")
		ui.output = io.Discard

		assert.NoError(t, ui.Run(context.Background()))
	})

	t.Run("cancelled context", func(t *testing.T) {
		h := mock.NewMockAlertHandler(gomock.NewController(t))
		cfg := testConfig(false)
		cfg.UI.AltScreen = false
		cfg.UI.Mouse = false

		ui, err := New(cfg, h, models.NewBuildInfo("", "", ""), logger.Nop())
		require.NoError(t, err)
		ui.input = strings.NewReader("")
		ui.output = io.Discard

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, ui.Run(ctx))
	})
}
