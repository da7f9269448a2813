package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Title           string `json:"title"`
		StartSuppressed bool   `json:"start_suppressed"`
	} `json:"app,omitempty"`

	Alert struct {
		Message      string `json:"message"`
		ConfirmLabel string `json:"confirm_label"`
		DismissLabel string `json:"dismiss_label"`
		ToggleLabel  string `json:"toggle_label"`
		HideClose    bool   `json:"hide_close"`
	} `json:"alert,omitempty"`

	UI struct {
		NoAltScreen bool `json:"no_alt_screen"`
		NoMouse     bool `json:"no_mouse"`
	} `json:"ui,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Title:           jsonCfg.App.Title,
			StartSuppressed: jsonCfg.App.StartSuppressed,
		},
		Alert: Alert{
			Message:      jsonCfg.Alert.Message,
			ConfirmLabel: jsonCfg.Alert.ConfirmLabel,
			DismissLabel: jsonCfg.Alert.DismissLabel,
			ToggleLabel:  jsonCfg.Alert.ToggleLabel,
			HideClose:    jsonCfg.Alert.HideClose,
		},
		UI: UI{
			NoAltScreen: jsonCfg.UI.NoAltScreen,
			NoMouse:     jsonCfg.UI.NoMouse,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
