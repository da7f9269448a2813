package config

// Default texts, as in the first release of the demo.
const (
	DefaultTitle        = "Пользовательское уведомление"
	DefaultMessage      = "Вы ввели очень большие показания приборов учета, все равно отправить?"
	DefaultConfirmLabel = "Отправить"
	DefaultDismissLabel = "Отменить"
	DefaultToggleLabel  = "Stow alert"
	DefaultLogLevel     = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Title: DefaultTitle,
		},
		Alert: Alert{
			Message:      DefaultMessage,
			ConfirmLabel: DefaultConfirmLabel,
			DismissLabel: DefaultDismissLabel,
			ToggleLabel:  DefaultToggleLabel,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
