// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup: every label the
// screen draws is non-blank and the log level is known to zerolog.
func (cfg *StructuredConfig) validate() error {
	labels := map[string]string{
		"message":       cfg.Alert.Message,
		"confirm label": cfg.Alert.ConfirmLabel,
		"dismiss label": cfg.Alert.DismissLabel,
		"toggle label":  cfg.Alert.ToggleLabel,
	}
	for name, value := range labels {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is blank", ErrInvalidAlertConfigs, name)
		}
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
