// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler holds the application's reactions to alert actions.
package handler

import "github.com/MKhiriev/custom-alert/internal/logger"

// AlertLogHandler is the default [AlertHandler]: it records each action in
// the log and does nothing else.
type AlertLogHandler struct {
	logger *logger.Logger
}

// NewAlertLogHandler returns an AlertLogHandler writing to log.
func NewAlertLogHandler(log *logger.Logger) *AlertLogHandler {
	return &AlertLogHandler{logger: log.GetChildLogger()}
}

func (h *AlertLogHandler) OnConfirm() {
	h.logger.Info().Str("action", "confirm").Msg("confirmed")
}

func (h *AlertLogHandler) OnDismiss() {
	h.logger.Info().Str("action", "dismiss").Msg("dismissed")
}
