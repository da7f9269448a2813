// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/custom-alert/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ AlertHandler = (*AlertLogHandler)(nil)

func newBufferedHandler(buf *bytes.Buffer) *AlertLogHandler {
	return NewAlertLogHandler(&logger.Logger{Logger: zerolog.New(buf)})
}

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestAlertLogHandler_OnConfirm(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	// Act
	h.OnConfirm()

	// Assert
	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "confirmed", entries[0]["message"])
	assert.Equal(t, "confirm", entries[0]["action"])
	assert.Equal(t, "info", entries[0]["level"])
}

func TestAlertLogHandler_OnDismiss(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	// Act
	h.OnDismiss()

	// Assert
	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "dismissed", entries[0]["message"])
	assert.Equal(t, "dismiss", entries[0]["action"])
}

func TestAlertLogHandler_OneEntryPerCall(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	h.OnConfirm()
	h.OnConfirm()
	h.OnDismiss()

	assert.Len(t, decodeEntries(t, &buf), 3)
}

func TestNewAlertLogHandler_NopLogger(t *testing.T) {
	h := NewAlertLogHandler(logger.Nop())

	assert.NotPanics(t, func() {
		h.OnConfirm()
		h.OnDismiss()
	})
}
