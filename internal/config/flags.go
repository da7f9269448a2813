package config

import (
	"flag"
	"fmt"
)

// FlagSetName is the name reported in flag usage output.
const FlagSetName = "alertdemo"

// ParseFlags parses all configuration flags from args (without the program
// name). Unset flags stay at their zero values so they never override other
// sources.
//
// Flags:
//
//	-c/-config json file path with configs
//	-title screen title
//	-start-suppressed start with the alert hidden
//	-message alert message
//	-confirm-label confirm button text
//	-dismiss-label dismiss button text
//	-toggle-label toggle button text
//	-hide-close do not draw the close cross
//	-no-alt-screen render inline instead of on the alternate screen
//	-no-mouse disable mouse taps
//	-log-file log file path
//	-log-level log level (e.g., "debug", "info")
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet(FlagSetName, flag.ContinueOnError)
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Title, "title", "", "Screen title")
	fs.BoolVar(&cfg.App.StartSuppressed, "start-suppressed", false, "Start with the alert hidden")
	fs.StringVar(&cfg.Alert.Message, "message", "", "Alert message")
	fs.StringVar(&cfg.Alert.ConfirmLabel, "confirm-label", "", "Confirm button text")
	fs.StringVar(&cfg.Alert.DismissLabel, "dismiss-label", "", "Dismiss button text")
	fs.StringVar(&cfg.Alert.ToggleLabel, "toggle-label", "", "Toggle button text")
	fs.BoolVar(&cfg.Alert.HideClose, "hide-close", false, "Do not draw the close cross")
	fs.BoolVar(&cfg.UI.NoAltScreen, "no-alt-screen", false, "Render inline instead of on the alternate screen")
	fs.BoolVar(&cfg.UI.NoMouse, "no-mouse", false, "Disable mouse taps")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (e.g., debug, info)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
