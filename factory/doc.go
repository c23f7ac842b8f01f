// Package factory implements the Factory creational pattern in its two
// classic forms: a simple factory routine and the factory-method variant.
//
// What:
//
//   - Car: the capability abstraction, with a single Drive operation.
//   - Sedan, SUV, SportsCar: concrete variants.
//   - New(kind): the simple factory — maps a selector string to a
//     constructed variant, failing with ErrUnknownCarType for anything else.
//   - CarFactory / SedanFactory / SUVFactory: the factory-method variant —
//     each concrete factory knows how to build exactly one kind of Car.
//
// Why:
//   - Centralize the choose-a-concrete-type decision in one routine
//   - Let callers program against the Car capability only
//   - Contrast selector-driven dispatch with per-type factories
//
// Errors:
//
//   - ErrUnknownCarType — the selector has no mapped variant. This is the
//     collection's one hard failure: it propagates, it is never printed and
//     swallowed. Branch with errors.Is.
package factory
