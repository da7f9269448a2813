// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// custom-alert application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds screen-level settings.
	App App `envPrefix:"APP_"`

	// Alert holds the texts and controls of the confirmation alert.
	Alert Alert `envPrefix:"ALERT_"`

	// UI holds terminal program options.
	UI UI `envPrefix:"UI_"`

	// Log holds log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings of the screen that owns the alert.
type App struct {
	// Title is the heading shown above the toggle button.
	// Env: APP_TITLE
	Title string `env:"TITLE"`

	// StartSuppressed hides the alert when the screen is mounted.
	// By default the alert is visible at start.
	// Env: APP_START_SUPPRESSED
	StartSuppressed bool `env:"START_SUPPRESSED"`
}

// Alert holds the alert's static texts.
type Alert struct {
	// Message is the question shown in the alert.
	// Env: ALERT_MESSAGE
	Message string `env:"MESSAGE"`

	// ConfirmLabel is the text of the confirm button.
	// Env: ALERT_CONFIRM_LABEL
	ConfirmLabel string `env:"CONFIRM_LABEL"`

	// DismissLabel is the text of the dismiss button.
	// Env: ALERT_DISMISS_LABEL
	DismissLabel string `env:"DISMISS_LABEL"`

	// ToggleLabel is the text of the screen button that shows and hides
	// the alert.
	// Env: ALERT_TOGGLE_LABEL
	ToggleLabel string `env:"TOGGLE_LABEL"`

	// HideClose removes the close cross from the alert's corner.
	// Env: ALERT_HIDE_CLOSE
	HideClose bool `env:"HIDE_CLOSE"`
}

// UI holds Bubble Tea program options.
type UI struct {
	// NoAltScreen renders inline instead of on the alternate screen.
	// Env: UI_NO_ALT_SCREEN
	NoAltScreen bool `env:"NO_ALT_SCREEN"`

	// NoMouse disables mouse taps.
	// Env: UI_NO_MOUSE
	NoMouse bool `env:"NO_MOUSE"`
}

// Log holds log sink settings.
type Log struct {
	// File is the log file path. Empty means a file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args (without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
