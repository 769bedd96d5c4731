package ports

import (
	"io"

	"go.trai.ch/roster/internal/core/domain"
)

// Console is the user-facing presentation of the directory session.
// Each method writes one class of message; colors are chosen by the adapter.
//
//go:generate mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	// Menu prints the static command help.
	Menu()
	// Added confirms that name was added to department.
	Added(department, name string)
	// Department prints a department header.
	Department(name string)
	// Employee prints one employee line.
	Employee(name string)
	// NotFound reports that department does not exist.
	NotFound(department string)
	// Farewell prints the quit message.
	Farewell()
	// Problem prints a recoverable error.
	Problem(err error)
	// Summary renders a table of every department.
	Summary(dir *domain.Directory) error

	// SetOutput redirects console output to w.
	SetOutput(w io.Writer)
}
