// Package session runs the interactive read-parse-execute loop.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/roster/internal/core/domain"
	"go.trai.ch/roster/internal/core/ports"
	"go.trai.ch/roster/internal/engine/dispatcher"
	"go.trai.ch/roster/internal/engine/parser"
	"go.trai.ch/zerr"
)

// Session owns one directory for the lifetime of an interactive run.
type Session struct {
	dispatcher *dispatcher.Dispatcher
	console    ports.Console
	logger     ports.Logger
}

// New creates a Session over dir.
func New(dir *domain.Directory, console ports.Console, logger ports.Logger) *Session {
	return &Session{
		dispatcher: dispatcher.New(dir, console, logger),
		console:    console,
		logger:     logger,
	}
}

// Run reads commands from in until Quit or end of input.
// End of input is handled like Quit. Parse errors are printed and the loop
// continues. Lines have no length limit; only a failing reader or a canceled
// context ends the loop with an error.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.console.Menu()

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return zerr.Wrap(err, domain.ErrInputReadFailed.Error())
		}
		// A final line without a newline is still a command.
		if err != nil && line == "" {
			s.logger.Debug("end of input")
			s.console.Farewell()
			return nil
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		cmd, err := parser.Parse(line)
		if err != nil {
			s.logger.Debug(fmt.Sprintf("rejected line %q: %v", line, err))
			s.console.Problem(err)
			continue
		}

		if s.dispatcher.Execute(cmd) == dispatcher.Stop {
			return nil
		}
	}
}
