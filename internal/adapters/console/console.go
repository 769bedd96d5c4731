// Package console renders the directory session on a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"go.trai.ch/roster/internal/core/domain"
	"go.trai.ch/roster/internal/ui/output"
	"go.trai.ch/roster/internal/ui/style"
)

// Menu lines printed before every prompt.
var menu = []string{
	"Type 'Add <name> to <department>' to add an employee",
	"Type 'List <department>' to list the employees of a department",
	"Type 'All' to list all employees by department",
	"Type 'Quit' to quit",
}

// messager is implemented by zerr errors and reports a message without its causes.
type messager interface {
	Message() string
}

// Console implements ports.Console on a termenv output.
type Console struct {
	mu  sync.Mutex
	out *termenv.Output
}

// New creates a Console writing to w. A nil writer falls back to stdout.
func New(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{out: output.New(w)}
}

// SetOutput redirects the console to w. A nil writer falls back to stdout.
func (c *Console) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = output.New(w)
}

// Menu prints the command help.
func (c *Console) Menu() {
	for _, line := range menu {
		c.println(style.Yellow, line)
	}
}

// Added confirms an Add command.
func (c *Console) Added(department, name string) {
	c.println(style.Cyan, fmt.Sprintf("Added %s to %s", name, department))
}

// Department prints a department header.
func (c *Console) Department(name string) {
	c.println(style.Iris, "Department: "+name)
}

// Employee prints one employee.
func (c *Console) Employee(name string) {
	c.println(style.Green, "Person: "+name)
}

// NotFound reports an unknown department.
func (c *Console) NotFound(_ string) {
	c.println(style.Red, "Department not found")
}

// Farewell prints the quit message.
func (c *Console) Farewell() {
	c.println(style.Yellow, "Quitting")
}

// Problem prints a recoverable error.
func (c *Console) Problem(err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if m, ok := err.(messager); ok {
		msg = m.Message()
	}
	c.println(style.Red, msg)
}

// Summary renders every department with its headcount and employees.
func (c *Console) Summary(dir *domain.Directory) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Department", "Headcount", "Employees"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, department := range dir.Departments() {
		people, _ := dir.Employees(department)
		table.Append([]string{department, strconv.Itoa(len(people)), strings.Join(people, ", ")})
	}
	table.Render()

	total := fmt.Sprintf("%d department(s), %d employee(s)", dir.Len(), dir.Headcount())
	_, err := c.out.WriteString(output.Paint(c.out, string(style.Slate), total) + "\n")
	return err
}

func (c *Console) println(color lipgloss.Color, line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = c.out.WriteString(output.Paint(c.out, string(color), line) + "\n")
}
