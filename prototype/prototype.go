// SPDX-License-Identifier: MIT
// Package: gopatterns/prototype
//
// prototype.go — the Shape capability and its cloneable variants.

package prototype

import (
	"fmt"
	"io"
	"os"
)

// Shape is the prototype capability: every variant can describe itself and
// produce an independent copy of itself.
type Shape interface {
	// Clone returns a distinct Shape with the same dimensions.
	Clone() Shape
	// Draw writes one descriptive line to w. A nil w falls back to os.Stdout.
	Draw(w io.Writer)
}

// Circle is a concrete variant with a fixed radius.
type Circle struct {
	radius int
}

// NewCircle returns a Circle prototype with the given radius.
func NewCircle(radius int) *Circle {
	return &Circle{radius: radius}
}

// Clone returns an independent copy of the circle.
func (c *Circle) Clone() Shape {
	cp := *c

	return &cp
}

// Radius reports the circle's radius.
func (c *Circle) Radius() int { return c.radius }

// Draw writes "Drawing a Circle with radius <r>".
func (c *Circle) Draw(w io.Writer) {
	fmt.Fprintf(orStdout(w), "Drawing a Circle with radius %d\n", c.radius)
}

// Rectangle is a concrete variant with fixed width and height.
type Rectangle struct {
	width  int
	height int
}

// NewRectangle returns a Rectangle prototype with the given dimensions.
func NewRectangle(width, height int) *Rectangle {
	return &Rectangle{width: width, height: height}
}

// Clone returns an independent copy of the rectangle.
func (r *Rectangle) Clone() Shape {
	cp := *r

	return &cp
}

// Width reports the rectangle's width.
func (r *Rectangle) Width() int { return r.width }

// Height reports the rectangle's height.
func (r *Rectangle) Height() int { return r.height }

// Draw writes "Drawing a Rectangle with width <w> and height <h>".
func (r *Rectangle) Draw(w io.Writer) {
	fmt.Fprintf(orStdout(w), "Drawing a Rectangle with width %d and height %d\n", r.width, r.height)
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
