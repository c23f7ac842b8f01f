// SPDX-License-Identifier: MIT
// Package: gopatterns/command
//
// command.go — the Command capability, the Light receiver, and the invoker.

package command

import (
	"fmt"
	"io"
	"os"
)

// Command is the capability every request object implements.
type Command interface {
	// Execute performs the request.
	Execute()
	// Undo performs the inverse of the request.
	Undo()
}

// Light is the receiver: the device that actually changes state.
type Light struct {
	w io.Writer
}

// NewLight returns a Light narrating to w. A nil w falls back to os.Stdout.
func NewLight(w io.Writer) *Light {
	if w == nil {
		w = os.Stdout
	}

	return &Light{w: w}
}

// TurnOn writes "Light is ON".
func (l *Light) TurnOn() { fmt.Fprintln(l.w, "Light is ON") }

// TurnOff writes "Light is OFF".
func (l *Light) TurnOff() { fmt.Fprintln(l.w, "Light is OFF") }

// LightOnCommand turns the light on; its inverse turns it off.
type LightOnCommand struct {
	light *Light
}

// NewLightOn binds a turn-on command to the given light.
func NewLightOn(light *Light) *LightOnCommand {
	return &LightOnCommand{light: light}
}

// Execute turns the light on.
func (c *LightOnCommand) Execute() { c.light.TurnOn() }

// Undo turns the light back off.
func (c *LightOnCommand) Undo() { c.light.TurnOff() }

// LightOffCommand turns the light off; its inverse turns it on.
type LightOffCommand struct {
	light *Light
}

// NewLightOff binds a turn-off command to the given light.
func NewLightOff(light *Light) *LightOffCommand {
	return &LightOffCommand{light: light}
}

// Execute turns the light off.
func (c *LightOffCommand) Execute() { c.light.TurnOff() }

// Undo turns the light back on.
func (c *LightOffCommand) Undo() { c.light.TurnOn() }

// RemoteControl is the invoker: it fires whatever command is currently set
// without knowing what the command does.
type RemoteControl struct {
	command Command
	w       io.Writer
}

// NewRemote returns a RemoteControl with no command, narrating its own
// notices to w. A nil w falls back to os.Stdout.
func NewRemote(w io.Writer) *RemoteControl {
	if w == nil {
		w = os.Stdout
	}

	return &RemoteControl{w: w}
}

// SetCommand replaces the current command. Passing nil clears it.
func (r *RemoteControl) SetCommand(c Command) {
	r.command = c
}

// PressButton executes the current command, or writes "No command set."
// when none is configured.
func (r *RemoteControl) PressButton() {
	if r.command == nil {
		fmt.Fprintln(r.w, "No command set.")

		return
	}
	r.command.Execute()
}

// PressUndo undoes the current command, or writes "No command set."
// when none is configured.
func (r *RemoteControl) PressUndo() {
	if r.command == nil {
		fmt.Fprintln(r.w, "No command set.")

		return
	}
	r.command.Undo()
}
