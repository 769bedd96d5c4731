package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidCommand is returned when a line does not start with a known command keyword.
	ErrInvalidCommand = zerr.New("Invalid command")

	// ErrMissingAddDepartment is returned when an Add command has no department token.
	ErrMissingAddDepartment = zerr.New("Missing department name in 'Add' command")

	// ErrMissingListDepartment is returned when a List command has no department token.
	ErrMissingListDepartment = zerr.New("Missing department name in 'List' command")

	// ErrInputReadFailed is returned when the input stream fails for a reason other than end of input.
	ErrInputReadFailed = zerr.New("failed to read input")

	// ErrSeedReadFailed is returned when the seed file cannot be read.
	ErrSeedReadFailed = zerr.New("failed to read seed file")

	// ErrSeedParseFailed is returned when the seed file is not valid YAML.
	ErrSeedParseFailed = zerr.New("failed to parse seed file")

	// ErrSeedInvalid is returned when the seed file breaks the directory invariants.
	ErrSeedInvalid = zerr.New("invalid seed file")

	// ErrSettingsLoadFailed is returned when environment settings cannot be decoded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings from environment")

	// ErrInvalidLogLevel is returned when a log level name is not recognized.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")
)
