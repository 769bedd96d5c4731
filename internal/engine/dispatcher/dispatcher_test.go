package dispatcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roster/internal/core/domain"
	"go.trai.ch/roster/internal/core/ports/mocks"
	"go.trai.ch/roster/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

func newDispatcher(t *testing.T, dir *domain.Directory) (*dispatcher.Dispatcher, *mocks.MockConsole) {
	t.Helper()
	ctrl := gomock.NewController(t)

	console := mocks.NewMockConsole(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return dispatcher.New(dir, console, logger), console
}

func TestExecute_Add(t *testing.T) {
	dir := domain.NewDirectory()
	d, console := newDispatcher(t, dir)

	console.EXPECT().Added("Engineering", "Alice").Times(1)

	outcome := d.Execute(domain.AddCommand{Department: "Engineering", Name: "Alice"})
	assert.Equal(t, dispatcher.Continue, outcome)

	people, ok := dir.Employees("Engineering")
	require.True(t, ok)
	assert.Equal(t, []string{"Alice"}, people)
}

func TestExecute_List(t *testing.T) {
	dir := domain.NewDirectory()
	dir.Add("Engineering", "Alice")
	dir.Add("Engineering", "Bob")
	d, console := newDispatcher(t, dir)

	gomock.InOrder(
		console.EXPECT().Employee("Alice"),
		console.EXPECT().Employee("Bob"),
	)

	assert.Equal(t, dispatcher.Continue, d.Execute(domain.ListCommand{Department: "Engineering"}))
}

func TestExecute_List_NotFound(t *testing.T) {
	dir := domain.NewDirectory()
	d, console := newDispatcher(t, dir)

	console.EXPECT().NotFound("Sales").Times(1)

	assert.Equal(t, dispatcher.Continue, d.Execute(domain.ListCommand{Department: "Sales"}))
	assert.Zero(t, dir.Len(), "List must not create departments")
}

func TestExecute_All(t *testing.T) {
	dir := domain.NewDirectory()
	dir.Add("Sales", "Carol")
	dir.Add("Engineering", "Alice")
	dir.Add("Engineering", "Bob")
	d, console := newDispatcher(t, dir)

	gomock.InOrder(
		console.EXPECT().Department("Engineering"),
		console.EXPECT().Employee("Alice"),
		console.EXPECT().Employee("Bob"),
		console.EXPECT().Department("Sales"),
		console.EXPECT().Employee("Carol"),
	)

	assert.Equal(t, dispatcher.Continue, d.Execute(domain.AllCommand{}))
}

func TestExecute_All_Empty(t *testing.T) {
	d, _ := newDispatcher(t, domain.NewDirectory())

	// No console expectations: an empty directory prints nothing.
	assert.Equal(t, dispatcher.Continue, d.Execute(domain.AllCommand{}))
}

func TestExecute_Quit(t *testing.T) {
	dir := domain.NewDirectory()
	dir.Add("Engineering", "Alice")
	d, console := newDispatcher(t, dir)

	console.EXPECT().Farewell().Times(1)

	assert.Equal(t, dispatcher.Stop, d.Execute(domain.QuitCommand{}))
	assert.Equal(t, 1, dir.Len())
}

func TestExecute_AddThenList(t *testing.T) {
	dir := domain.NewDirectory()
	d, console := newDispatcher(t, dir)

	gomock.InOrder(
		console.EXPECT().Added("Engineering", "Alice"),
		console.EXPECT().Added("Engineering", "Bob"),
		console.EXPECT().Employee("Alice"),
		console.EXPECT().Employee("Bob"),
	)

	d.Execute(domain.AddCommand{Department: "Engineering", Name: "Alice"})
	d.Execute(domain.AddCommand{Department: "Engineering", Name: "Bob"})
	d.Execute(domain.ListCommand{Department: "Engineering"})
}
