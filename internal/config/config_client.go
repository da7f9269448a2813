package config

import (
	"fmt"
)

// ClientApp holds the screen settings.
type ClientApp struct {
	// Title is the screen heading.
	Title string
	// StartSuppressed hides the alert at mount.
	StartSuppressed bool
}

// ClientAlert holds the alert texts and controls.
type ClientAlert struct {
	Message      string
	ConfirmLabel string
	DismissLabel string
	ToggleLabel  string
	// ShowClose draws the close cross.
	ShowClose bool
}

// ClientUI holds Bubble Tea program options.
type ClientUI struct {
	// AltScreen runs the program on the alternate screen.
	AltScreen bool
	// Mouse enables mouse taps.
	Mouse bool
}

// ClientLog holds log sink settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig], with every switch in positive form.
type ClientConfig struct {
	App   ClientApp
	Alert ClientAlert
	UI    ClientUI
	Log   ClientLog
}

// GetClientConfig builds a client-specific config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig] and maps only the
// fields relevant to the client runtime.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg), nil
}

// NewClientConfig maps a merged [StructuredConfig] to a [ClientConfig].
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Title:           cfg.App.Title,
			StartSuppressed: cfg.App.StartSuppressed,
		},
		Alert: ClientAlert{
			Message:      cfg.Alert.Message,
			ConfirmLabel: cfg.Alert.ConfirmLabel,
			DismissLabel: cfg.Alert.DismissLabel,
			ToggleLabel:  cfg.Alert.ToggleLabel,
			ShowClose:    !cfg.Alert.HideClose,
		},
		UI: ClientUI{
			AltScreen: !cfg.UI.NoAltScreen,
			Mouse:     !cfg.UI.NoMouse,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
