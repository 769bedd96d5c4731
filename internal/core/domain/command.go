package domain

// Command is one parsed input line. The set of variants is closed:
// AddCommand, ListCommand, AllCommand and QuitCommand.
type Command interface {
	command()
}

// AddCommand adds Name to Department.
type AddCommand struct {
	Department string
	Name       string
}

// ListCommand prints the employees of Department.
type ListCommand struct {
	Department string
}

// AllCommand prints every department with its employees.
type AllCommand struct{}

// QuitCommand ends the session.
type QuitCommand struct{}

func (AddCommand) command()  {}
func (ListCommand) command() {}
func (AllCommand) command()  {}
func (QuitCommand) command() {}

// Command keywords, matched case-sensitively.
const (
	KeywordAdd  = "Add"
	KeywordList = "List"
	KeywordAll  = "All"
	KeywordQuit = "Quit"
)
