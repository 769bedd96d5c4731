package ports

import "io"

// Logger defines the interface for diagnostic logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetOutput redirects log output to w.
	SetOutput(w io.Writer)
	// SetLevel sets the minimum level by name: debug, info, warn or error.
	SetLevel(level string) error
	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
}
