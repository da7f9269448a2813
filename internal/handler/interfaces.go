// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

//go:generate mockgen -source=interfaces.go -destination=../mock/alert_handler_mock.go -package=mock

// AlertHandler receives the alert's actions at tap time.
//
// Implementations must not fail and must return promptly: they run inside
// the UI update loop.
type AlertHandler interface {
	// OnConfirm is called once per tap on the confirm button.
	OnConfirm()
	// OnDismiss is called once per tap on the dismiss or close button.
	OnDismiss()
}
