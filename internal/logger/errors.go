package logger

import "errors"

var (
	// ErrInvalidLogLevel is returned for a level name zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrOpenLogFile is returned when the log file cannot be opened.
	ErrOpenLogFile = errors.New("cannot open log file")
)
