// SPDX-License-Identifier: MIT
// Package: gopatterns/composite
//
// composite.go — the Employee component, its leaves, and the Manager composite.

package composite

import (
	"fmt"
	"io"
	"os"
)

// Employee is the component capability shared by leaves and composites.
// Client code never needs to know which one it holds.
type Employee interface {
	// ShowDetails writes one descriptive line for this participant to w,
	// then (for composites) recurses into owned members in insertion order.
	// A nil w falls back to os.Stdout.
	ShowDetails(w io.Writer)
}

// Developer is a leaf participant: a single engineer with a fixed position.
type Developer struct {
	name     string
	position string
}

// NewDeveloper returns a Developer leaf with the given name and position.
func NewDeveloper(name, position string) *Developer {
	return &Developer{name: name, position: position}
}

// ShowDetails writes "Developer: <name>, Position: <position>".
func (d *Developer) ShowDetails(w io.Writer) {
	fmt.Fprintf(orStdout(w), "Developer: %s, Position: %s\n", d.name, d.position)
}

// Designer is a leaf participant: a single designer with a fixed position.
type Designer struct {
	name     string
	position string
}

// NewDesigner returns a Designer leaf with the given name and position.
func NewDesigner(name, position string) *Designer {
	return &Designer{name: name, position: position}
}

// ShowDetails writes "Designer: <name>, Position: <position>".
func (d *Designer) ShowDetails(w io.Writer) {
	fmt.Fprintf(orStdout(w), "Designer: %s, Position: %s\n", d.name, d.position)
}

// Manager is the composite participant. It owns an ordered team of Employee
// references; members may themselves be Managers, forming a tree.
type Manager struct {
	name string
	team []Employee
}

// NewManager returns a Manager with an empty team.
func NewManager(name string) *Manager {
	return &Manager{name: name}
}

// Add appends members to the team in the given order. Appending the manager
// to its own (transitive) team creates a cycle and is not guarded against.
func (m *Manager) Add(members ...Employee) {
	m.team = append(m.team, members...)
}

// Size reports the number of direct team members.
func (m *Manager) Size() int { return len(m.team) }

// ShowDetails writes "Manager: <name>" and then shows every team member,
// depth-first, pre-order, in insertion order.
func (m *Manager) ShowDetails(w io.Writer) {
	w = orStdout(w)
	fmt.Fprintf(w, "Manager: %s\n", m.name)
	for _, member := range m.team {
		member.ShowDetails(w)
	}
}

// orStdout normalizes a nil writer to os.Stdout.
func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
