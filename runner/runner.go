// SPDX-License-Identifier: MIT
// Package: gopatterns/runner
//
// runner.go — the Demo catalog and its access surface.

package runner

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// Category groups demos the way the original teaching set does.
type Category string

// The three pattern families.
const (
	Creational Category = "creational"
	Behavioral Category = "behavioral"
	Structural Category = "structural"
)

// Demo is one catalog entry: a named, replayable pattern demonstration.
type Demo struct {
	// Name is the catalog selector, e.g. "composite".
	Name string
	// Category is the pattern family the demo belongs to.
	Category Category
	// Summary is a one-line description for listings.
	Summary string
	// Run replays the demo's canonical driver sequence against w.
	// A nil w falls back to os.Stdout. Output is deterministic.
	Run func(w io.Writer)
}

// All returns the catalog in its fixed order (creational → behavioral →
// structural). The returned slice is a copy; mutating it cannot corrupt the
// catalog.
func All() []Demo {
	out := make([]Demo, len(catalog))
	copy(out, catalog)

	return out
}

// Lookup returns the catalog entry for name, or ErrUnknownDemo wrapped with
// the offending name.
func Lookup(name string) (Demo, error) {
	for _, d := range catalog {
		if d.Name == name {
			return d, nil
		}
	}

	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// Run replays the named demo against w. A nil w falls back to os.Stdout.
func Run(name string, w io.Writer) error {
	d, err := Lookup(name)
	if err != nil {
		return err
	}
	d.Run(orStdout(w))

	return nil
}

// Option configures RunAll.
type Option func(*options)

type options struct {
	parallel bool
	headers  bool
}

func defaultOptions() options {
	return options{parallel: false, headers: true}
}

// WithParallel renders each demo into its own buffer concurrently and then
// flushes the buffers in catalog order, so the observable output is
// identical to a sequential run.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

// WithoutHeaders suppresses the "=== name ===" separator line between demos.
func WithoutHeaders() Option {
	return func(o *options) { o.headers = false }
}

// RunAll replays every catalog entry against w, in catalog order.
// A nil w falls back to os.Stdout.
func RunAll(w io.Writer, opts ...Option) error {
	w = orStdout(w)

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.parallel {
		for _, d := range catalog {
			if o.headers {
				fmt.Fprintf(w, "=== %s ===\n", d.Name)
			}
			d.Run(w)
		}

		return nil
	}

	// Parallel mode: render demo i into rendered[i], flush in catalog order.
	rendered := make([]bytes.Buffer, len(catalog))

	var g errgroup.Group
	for i, d := range catalog {
		g.Go(func() error {
			d.Run(&rendered[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, d := range catalog {
		if o.headers {
			fmt.Fprintf(w, "=== %s ===\n", d.Name)
		}
		if _, err := w.Write(rendered[i].Bytes()); err != nil {
			return err
		}
	}

	return nil
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
