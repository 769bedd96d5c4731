// Package dispatcher executes parsed commands against a directory.
package dispatcher

import (
	"fmt"

	"go.trai.ch/roster/internal/core/domain"
	"go.trai.ch/roster/internal/core/ports"
)

// Outcome tells the session whether to keep reading input.
type Outcome int

const (
	// Continue keeps the session running.
	Continue Outcome = iota
	// Stop terminates the session.
	Stop
)

// Dispatcher applies commands to a Directory and reports through a Console.
type Dispatcher struct {
	dir     *domain.Directory
	console ports.Console
	logger  ports.Logger
}

// New creates a Dispatcher for dir.
func New(dir *domain.Directory, console ports.Console, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		dir:     dir,
		console: console,
		logger:  logger,
	}
}

// Execute runs cmd. Every command variant succeeds; only Quit stops the session.
func (d *Dispatcher) Execute(cmd domain.Command) Outcome {
	switch c := cmd.(type) {
	case domain.AddCommand:
		d.dir.Add(c.Department, c.Name)
		d.logger.Debug(fmt.Sprintf("added employee=%q department=%q", c.Name, c.Department))
		d.console.Added(c.Department, c.Name)
	case domain.ListCommand:
		d.list(c.Department)
	case domain.AllCommand:
		d.all()
	case domain.QuitCommand:
		d.console.Farewell()
		return Stop
	default:
		d.logger.Warn(fmt.Sprintf("unhandled command %T", cmd))
	}
	return Continue
}

func (d *Dispatcher) list(department string) {
	people, ok := d.dir.Employees(department)
	if !ok {
		d.logger.Debug(fmt.Sprintf("department %q not found", department))
		d.console.NotFound(department)
		return
	}
	for _, person := range people {
		d.console.Employee(person)
	}
}

func (d *Dispatcher) all() {
	for _, department := range d.dir.Departments() {
		d.console.Department(department)
		people, _ := d.dir.Employees(department)
		for _, person := range people {
			d.console.Employee(person)
		}
	}
}
