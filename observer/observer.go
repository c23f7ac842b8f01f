// SPDX-License-Identifier: MIT
// Package: gopatterns/observer
//
// observer.go — the generic Subject registry and the Observer capability.

package observer

import "slices"

// Observer is the capability every subscriber implements.
// Implementations must have a comparable dynamic type (pointers qualify);
// Detach matches by identity.
type Observer[T any] interface {
	// Update is called once per SetState pass with the new state.
	Update(state T)
}

// Subject is the observer registry: a piece of mutable state plus the
// ordered list of observers to notify when it changes.
type Subject[T any] struct {
	observers []Observer[T]
	state     T
}

// NewSubject returns an empty Subject with the zero state of T.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Attach appends o to the delivery list. Duplicates are allowed: an observer
// attached twice receives each state change twice.
func (s *Subject[T]) Attach(o Observer[T]) {
	s.observers = append(s.observers, o)
}

// Detach removes the first reference equal to o, preserving the order of the
// rest. Detaching an observer that is not attached is a no-op.
func (s *Subject[T]) Detach(o Observer[T]) {
	for i, attached := range s.observers {
		if attached == o {
			s.observers = slices.Delete(s.observers, i, i+1)

			return
		}
	}
}

// SetState stores v and delivers it to every observer attached at the moment
// of the call, in attachment order. Delivery runs over a snapshot: observers
// attached or detached from inside an Update callback only affect the next
// SetState pass.
func (s *Subject[T]) SetState(v T) {
	s.state = v

	snapshot := slices.Clone(s.observers)
	for _, o := range snapshot {
		o.Update(v)
	}
}

// State returns the most recently set state.
func (s *Subject[T]) State() T { return s.state }

// Len reports the number of currently attached observers, counting
// duplicates.
func (s *Subject[T]) Len() int { return len(s.observers) }
