// Package command implements the Command behavioral pattern: requests become
// first-class objects that an invoker can trigger, queue, or undo without
// knowing who carries them out.
//
// What:
//
//   - Command: the capability — Execute plus its inverse, Undo.
//   - Light: the receiver; it knows how to actually turn on and off.
//   - LightOnCommand, LightOffCommand: concrete commands binding an action
//     and its inverse to the receiver.
//   - RemoteControl: the invoker. Holds at most one command and fires it on
//     PressButton / PressUndo.
//
// Why:
//   - Decouple the button from the device behind it
//   - Make operations undoable by pairing each with its inverse
//   - Show the graceful no-command path
//
// Contract:
//
//   - SetCommand replaces the current command; nil clears it.
//   - PressButton / PressUndo with no command set write
//     "No command set." and return. Never an error.
package command
