// SPDX-License-Identifier: MIT
// Package: gopatterns/visitor
//
// visitor.go — the Animal elements and the visiting operations.

package visitor

import (
	"fmt"
	"io"
	"os"
)

// AnimalVisitor is the operation capability: one method per element type.
type AnimalVisitor interface {
	VisitLion(*Lion)
	VisitPenguin(*Penguin)
	VisitElephant(*Elephant)
}

// Animal is the element capability: Accept routes the visitor to the method
// for the concrete animal (double dispatch).
type Animal interface {
	Accept(v AnimalVisitor)
}

// Lion is a concrete element.
type Lion struct{}

// Accept lets the visitor visit a Lion.
func (l *Lion) Accept(v AnimalVisitor) { v.VisitLion(l) }

// Penguin is a concrete element.
type Penguin struct{}

// Accept lets the visitor visit a Penguin.
func (p *Penguin) Accept(v AnimalVisitor) { v.VisitPenguin(p) }

// Elephant is a concrete element.
type Elephant struct{}

// Accept lets the visitor visit an Elephant.
func (e *Elephant) Accept(v AnimalVisitor) { v.VisitElephant(e) }

// FeedingVisitor narrates feeding each animal its diet.
type FeedingVisitor struct {
	w io.Writer
}

// NewFeeding returns a FeedingVisitor narrating to w.
// A nil w falls back to os.Stdout.
func NewFeeding(w io.Writer) *FeedingVisitor {
	if w == nil {
		w = os.Stdout
	}

	return &FeedingVisitor{w: w}
}

// VisitLion writes "Feeding the lion meat.".
func (v *FeedingVisitor) VisitLion(*Lion) { fmt.Fprintln(v.w, "Feeding the lion meat.") }

// VisitPenguin writes "Feeding the penguin fish.".
func (v *FeedingVisitor) VisitPenguin(*Penguin) { fmt.Fprintln(v.w, "Feeding the penguin fish.") }

// VisitElephant writes "Feeding the elephant bananas.".
func (v *FeedingVisitor) VisitElephant(*Elephant) {
	fmt.Fprintln(v.w, "Feeding the elephant bananas.")
}

// HealthCheckVisitor narrates a per-species health inspection.
type HealthCheckVisitor struct {
	w io.Writer
}

// NewHealthCheck returns a HealthCheckVisitor narrating to w.
// A nil w falls back to os.Stdout.
func NewHealthCheck(w io.Writer) *HealthCheckVisitor {
	if w == nil {
		w = os.Stdout
	}

	return &HealthCheckVisitor{w: w}
}

// VisitLion writes "Checking the lion's teeth.".
func (v *HealthCheckVisitor) VisitLion(*Lion) { fmt.Fprintln(v.w, "Checking the lion's teeth.") }

// VisitPenguin writes "Checking the penguin's feathers.".
func (v *HealthCheckVisitor) VisitPenguin(*Penguin) {
	fmt.Fprintln(v.w, "Checking the penguin's feathers.")
}

// VisitElephant writes "Checking the elephant's tusks.".
func (v *HealthCheckVisitor) VisitElephant(*Elephant) {
	fmt.Fprintln(v.w, "Checking the elephant's tusks.")
}
