// Package domain holds the employee directory model and its commands.
package domain

import (
	"slices"

	"github.com/samber/lo"
)

// Directory maps department names to their employees in insertion order.
// Departments are created on first Add and never removed, so every
// department holds at least one employee.
type Directory struct {
	departments map[string][]string
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{departments: make(map[string][]string)}
}

// Add appends name to department, creating the department if needed.
func (d *Directory) Add(department, name string) {
	d.departments[department] = append(d.departments[department], name)
}

// Employees returns a copy of the employees of department.
// The boolean is false when the department does not exist.
func (d *Directory) Employees(department string) ([]string, bool) {
	people, ok := d.departments[department]
	if !ok {
		return nil, false
	}
	return slices.Clone(people), true
}

// Departments returns the department names sorted alphabetically.
func (d *Directory) Departments() []string {
	names := lo.Keys(d.departments)
	slices.Sort(names)
	return names
}

// Len returns the number of departments.
func (d *Directory) Len() int {
	return len(d.departments)
}

// Headcount returns the total number of employee entries across departments.
func (d *Directory) Headcount() int {
	return lo.SumBy(lo.Values(d.departments), func(people []string) int {
		return len(people)
	})
}
