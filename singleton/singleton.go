// SPDX-License-Identifier: MIT
// Package: gopatterns/singleton
//
// singleton.go — the Instance payload and its two lazily-initialized slots.

package singleton

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Instance is the singleton payload. It holds nothing but its narration
// target and self-description; the pattern is about the slot, not the value.
type Instance struct {
	w       io.Writer
	message string
}

// DisplayMessage writes the instance's self-description line.
func (i *Instance) DisplayMessage() {
	fmt.Fprintln(i.w, i.message)
}

// Lazy is a once-guarded instance slot. The zero value is NOT usable; build
// slots with NewLazy. First access constructs the instance (narrating
// "Singleton instance created."); every later access returns the same
// reference. Safe for concurrent use.
type Lazy struct {
	w    io.Writer
	once sync.Once
	inst *Instance
}

// NewLazy returns an empty once-guarded slot narrating to w.
// A nil w falls back to os.Stdout.
func NewLazy(w io.Writer) *Lazy {
	return &Lazy{w: orStdout(w)}
}

// Instance returns the slot's singleton, constructing it on first access.
func (l *Lazy) Instance() *Instance {
	l.once.Do(func() {
		fmt.Fprintln(l.w, "Singleton instance created.")
		l.inst = &Instance{w: l.w, message: "This is the Singleton instance."}
	})

	return l.inst
}

// MutexLazy is the classic hand-rolled thread-safe slot: the check and the
// construct step run under a mutex, so concurrent first access constructs
// exactly once. Prefer Lazy; this variant exists to demonstrate the lock.
type MutexLazy struct {
	w    io.Writer
	mu   sync.Mutex
	inst *Instance
}

// NewMutexLazy returns an empty mutex-guarded slot narrating to w.
// A nil w falls back to os.Stdout.
func NewMutexLazy(w io.Writer) *MutexLazy {
	return &MutexLazy{w: orStdout(w)}
}

// Instance returns the slot's singleton, constructing it on first access.
func (l *MutexLazy) Instance() *Instance {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inst == nil {
		fmt.Fprintln(l.w, "Thread-safe Singleton instance created.")
		l.inst = &Instance{w: l.w, message: "This is the thread-safe Singleton instance."}
	}

	return l.inst
}

// defaultSlot is the process-wide registry slot, reachable only through
// Default.
var defaultSlot = NewLazy(nil)

// Default returns the process-wide singleton, constructing it on first
// access. Its narration goes to os.Stdout.
func Default() *Instance {
	return defaultSlot.Instance()
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
