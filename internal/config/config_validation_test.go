// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*StructuredConfig) {},
		},
		{
			name:    "blank message",
			mutate:  func(cfg *StructuredConfig) { cfg.Alert.Message = "   " },
			wantErr: ErrInvalidAlertConfigs,
		},
		{
			name:    "blank confirm label",
			mutate:  func(cfg *StructuredConfig) { cfg.Alert.ConfirmLabel = "" },
			wantErr: ErrInvalidAlertConfigs,
		},
		{
			name:    "blank dismiss label",
			mutate:  func(cfg *StructuredConfig) { cfg.Alert.DismissLabel = "\t" },
			wantErr: ErrInvalidAlertConfigs,
		},
		{
			name:    "blank toggle label",
			mutate:  func(cfg *StructuredConfig) { cfg.Alert.ToggleLabel = "" },
			wantErr: ErrInvalidAlertConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "verbose" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:   "empty log level is zerolog's no level",
			mutate: func(cfg *StructuredConfig) { cfg.Log.Level = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.File = "/tmp/a.log"
	cfg.Alert.HideClose = true

	client := NewClientConfig(cfg)

	assert.Equal(t, "/tmp/a.log", client.Log.File)
	assert.False(t, client.Alert.ShowClose)
	assert.True(t, client.UI.AltScreen)
	assert.True(t, client.UI.Mouse)
	assert.Equal(t, DefaultToggleLabel, client.Alert.ToggleLabel)
}
