// SPDX-License-Identifier: MIT
// Package: gopatterns/factory
//
// factory.go — the Car capability, its variants, and the simple factory.

package factory

import (
	"fmt"
	"io"
	"os"
)

// Car is the capability every variant implements.
type Car interface {
	// Drive writes one descriptive line to w. A nil w falls back to os.Stdout.
	Drive(w io.Writer)
}

// Sedan is a concrete Car variant.
type Sedan struct{}

// Drive writes "Driving a Sedan.".
func (Sedan) Drive(w io.Writer) { fmt.Fprintln(orStdout(w), "Driving a Sedan.") }

// SUV is a concrete Car variant.
type SUV struct{}

// Drive writes "Driving an SUV.".
func (SUV) Drive(w io.Writer) { fmt.Fprintln(orStdout(w), "Driving an SUV.") }

// SportsCar is a concrete Car variant.
type SportsCar struct{}

// Drive writes "Driving a Sports Car.".
func (SportsCar) Drive(w io.Writer) { fmt.Fprintln(orStdout(w), "Driving a Sports Car.") }

// New is the simple factory: it maps the selector to a constructed variant.
// Recognized selectors are "Sedan", "SUV" and "SportsCar"; anything else
// fails with ErrUnknownCarType wrapped with the offending selector.
func New(kind string) (Car, error) {
	switch kind {
	case "Sedan":
		return Sedan{}, nil
	case "SUV":
		return SUV{}, nil
	case "SportsCar":
		return SportsCar{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCarType, kind)
	}
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
