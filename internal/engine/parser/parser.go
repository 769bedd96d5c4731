// Package parser turns input lines into directory commands.
package parser

import (
	"strings"

	"go.trai.ch/roster/internal/core/domain"
)

// Token positions for "Add <name> to <department>" and "List <department>".
// The connector at position 2 is not checked.
const (
	addNamePos       = 1
	addDepartmentPos = 3
	listDeptPos      = 1
)

// Parse converts a line into a Command.
// Tokens are separated by any run of whitespace and keywords are case-sensitive.
// A blank line is an invalid command.
func Parse(line string) (domain.Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, domain.ErrInvalidCommand
	}

	switch tokens[0] {
	case domain.KeywordAdd:
		return parseAdd(tokens)
	case domain.KeywordList:
		return parseList(tokens)
	case domain.KeywordAll:
		return domain.AllCommand{}, nil
	case domain.KeywordQuit:
		return domain.QuitCommand{}, nil
	default:
		return nil, domain.ErrInvalidCommand
	}
}

func parseAdd(tokens []string) (domain.Command, error) {
	// The department comes last, so its presence implies the name's.
	department, ok := token(tokens, addDepartmentPos)
	if !ok {
		return nil, domain.ErrMissingAddDepartment
	}
	return domain.AddCommand{Department: department, Name: tokens[addNamePos]}, nil
}

func parseList(tokens []string) (domain.Command, error) {
	department, ok := token(tokens, listDeptPos)
	if !ok {
		return nil, domain.ErrMissingListDepartment
	}
	return domain.ListCommand{Department: department}, nil
}

func token(tokens []string, pos int) (string, bool) {
	if pos >= len(tokens) {
		return "", false
	}
	return tokens[pos], true
}
