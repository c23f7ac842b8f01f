// SPDX-License-Identifier: MIT
// Package: gopatterns/proxy
//
// proxy.go — the Image capability, the expensive subject, and its proxy.

package proxy

import (
	"fmt"
	"io"
	"os"
)

// Image is the capability shared by the real subject and its proxy.
type Image interface {
	// Display renders the image, narrating one line per logical step.
	Display()
}

// RealImage is the expensive subject: constructing one simulates loading the
// file from disk.
type RealImage struct {
	fileName string
	w        io.Writer
}

// NewRealImage loads the image eagerly, narrating
// "Loading image from disk: <file>" to w. A nil w falls back to os.Stdout.
func NewRealImage(fileName string, w io.Writer) *RealImage {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Loading image from disk: %s\n", fileName)

	return &RealImage{fileName: fileName, w: w}
}

// Display writes "Displaying image: <file>".
func (i *RealImage) Display() {
	fmt.Fprintf(i.w, "Displaying image: %s\n", i.fileName)
}

// ImageProxy is the virtual proxy: it remembers only the file name until the
// first Display forces construction of the RealImage, which is then cached.
type ImageProxy struct {
	fileName string
	w        io.Writer
	real     *RealImage
}

// NewImageProxy returns a proxy for fileName narrating to w. Nothing is
// loaded yet. A nil w falls back to os.Stdout.
func NewImageProxy(fileName string, w io.Writer) *ImageProxy {
	if w == nil {
		w = os.Stdout
	}

	return &ImageProxy{fileName: fileName, w: w}
}

// Loaded reports whether the real subject has been constructed.
func (p *ImageProxy) Loaded() bool { return p.real != nil }

// Display constructs the real image on first use and forwards to it.
func (p *ImageProxy) Display() {
	if p.real == nil {
		p.real = NewRealImage(p.fileName, p.w)
	}
	p.real.Display()
}
