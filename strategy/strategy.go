// SPDX-License-Identifier: MIT
// Package: gopatterns/strategy
//
// strategy.go — the RouteStrategy capability, its variants, and the Navigator.

package strategy

import (
	"fmt"
	"io"
	"os"
)

// RouteStrategy is the algorithm capability the navigator delegates to.
type RouteStrategy interface {
	// CalculateRoute writes one line describing the routing decision to w.
	CalculateRoute(w io.Writer)
}

// ShortestRoute minimizes distance.
type ShortestRoute struct{}

// CalculateRoute writes "Calculating the shortest route.".
func (ShortestRoute) CalculateRoute(w io.Writer) {
	fmt.Fprintln(orStdout(w), "Calculating the shortest route.")
}

// FastestRoute minimizes travel time.
type FastestRoute struct{}

// CalculateRoute writes "Calculating the fastest route.".
func (FastestRoute) CalculateRoute(w io.Writer) {
	fmt.Fprintln(orStdout(w), "Calculating the fastest route.")
}

// ScenicRoute maximizes the view.
type ScenicRoute struct{}

// CalculateRoute writes "Calculating the scenic route.".
func (ScenicRoute) CalculateRoute(w io.Writer) {
	fmt.Fprintln(orStdout(w), "Calculating the scenic route.")
}

// Navigator is the context: it owns the narration target and delegates the
// route calculation to whichever strategy is currently set.
type Navigator struct {
	strategy RouteStrategy
	w        io.Writer
}

// NewNavigator returns a Navigator with no strategy, narrating to w.
// A nil w falls back to os.Stdout.
func NewNavigator(w io.Writer) *Navigator {
	return &Navigator{w: orStdout(w)}
}

// SetStrategy replaces the current strategy. Passing nil clears it.
func (n *Navigator) SetStrategy(s RouteStrategy) {
	n.strategy = s
}

// Navigate delegates to the current strategy, or writes "No strategy set."
// when none is configured.
func (n *Navigator) Navigate() {
	if n.strategy == nil {
		fmt.Fprintln(n.w, "No strategy set.")

		return
	}
	n.strategy.CalculateRoute(n.w)
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
