package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roster/internal/adapters/console"
	"go.trai.ch/roster/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestConsole creates a console writing to a buffer without colors.
func newTestConsole(t *testing.T) (*console.Console, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return console.New(buf), buf
}

func TestConsole_Golden(t *testing.T) {
	tests := []struct {
		name       string
		render     func(c *console.Console)
		goldenName string
	}{
		{
			name:       "menu",
			render:     func(c *console.Console) { c.Menu() },
			goldenName: "menu",
		},
		{
			name:       "added",
			render:     func(c *console.Console) { c.Added("Engineering", "Alice") },
			goldenName: "added",
		},
		{
			name: "all",
			render: func(c *console.Console) {
				c.Department("Engineering")
				c.Employee("Alice")
				c.Employee("Bob")
			},
			goldenName: "all",
		},
		{
			name:       "not found",
			render:     func(c *console.Console) { c.NotFound("Sales") },
			goldenName: "not_found",
		},
		{
			name:       "farewell",
			render:     func(c *console.Console) { c.Farewell() },
			goldenName: "farewell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := newTestConsole(t)
			tt.render(c)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestConsole_Problem(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "sentinel",
			err:  domain.ErrInvalidCommand,
			want: "Invalid command\n",
		},
		{
			name: "wrapped zerr prints the outer message",
			err:  zerr.Wrap(errors.New("cause"), "Missing department name in 'List' command"),
			want: "Missing department name in 'List' command\n",
		},
		{
			name: "standard error",
			err:  errors.New("plain failure"),
			want: "plain failure\n",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := newTestConsole(t)
			c.Problem(tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsole_SetOutput(t *testing.T) {
	c, first := newTestConsole(t)
	second := &bytes.Buffer{}

	c.SetOutput(second)
	c.Farewell()

	assert.Empty(t, first.String())
	assert.Equal(t, "Quitting\n", second.String())
}

func TestConsole_Summary(t *testing.T) {
	c, buf := newTestConsole(t)

	dir := domain.NewDirectory()
	dir.Add("Sales", "Carol")
	dir.Add("Engineering", "Alice")
	dir.Add("Engineering", "Bob")

	require.NoError(t, c.Summary(dir))

	out := buf.String()
	assert.Contains(t, out, "DEPARTMENT")
	assert.Contains(t, out, "HEADCOUNT")
	assert.Contains(t, out, "Alice, Bob")
	assert.Contains(t, out, "Carol")
	assert.Contains(t, out, "2 department(s), 3 employee(s)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Engineering")), bytes.Index(buf.Bytes(), []byte("Sales")))
}
