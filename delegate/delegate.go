// SPDX-License-Identifier: MIT
// Package: gopatterns/delegate
//
// delegate.go — the PrintStrategy delegates and the Printer delegator.

package delegate

import (
	"fmt"
	"io"
	"os"
)

// PrintStrategy is the delegate capability the printer forwards to.
type PrintStrategy interface {
	// Print renders text through this delegate's channel.
	Print(text string)
}

// ConsolePrint is a delegate that narrates console printing.
type ConsolePrint struct {
	w io.Writer
}

// NewConsolePrint returns a ConsolePrint narrating to w.
// A nil w falls back to os.Stdout.
func NewConsolePrint(w io.Writer) *ConsolePrint {
	return &ConsolePrint{w: orStdout(w)}
}

// Print writes "Printing to console: <text>".
func (p *ConsolePrint) Print(text string) {
	fmt.Fprintf(p.w, "Printing to console: %s\n", text)
}

// FilePrint is a delegate that narrates saving to a file. The demo only
// narrates; no file is written.
type FilePrint struct {
	w io.Writer
}

// NewFilePrint returns a FilePrint narrating to w.
// A nil w falls back to os.Stdout.
func NewFilePrint(w io.Writer) *FilePrint {
	return &FilePrint{w: orStdout(w)}
}

// Print writes "Saving to file: <text>".
func (p *FilePrint) Print(text string) {
	fmt.Fprintf(p.w, "Saving to file: %s\n", text)
}

// Printer is the delegator: all printing is handed to the current delegate.
type Printer struct {
	strategy PrintStrategy
	w        io.Writer
}

// NewPrinter returns a Printer with no delegate, narrating its own notices
// to w. A nil w falls back to os.Stdout.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: orStdout(w)}
}

// SetPrintStrategy replaces the current delegate. Passing nil clears it.
func (p *Printer) SetPrintStrategy(s PrintStrategy) {
	p.strategy = s
}

// Print forwards text to the current delegate, or writes
// "No print strategy set!" when none is configured.
func (p *Printer) Print(text string) {
	if p.strategy == nil {
		fmt.Fprintln(p.w, "No print strategy set!")

		return
	}
	p.strategy.Print(text)
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
