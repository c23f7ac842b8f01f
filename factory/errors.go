// SPDX-License-Identifier: MIT
// Package: gopatterns/factory
//
// errors.go — sentinel errors for the factory package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • New wraps the sentinel with the offending selector via %w.

package factory

import "errors"

// ErrUnknownCarType indicates that New was asked for a selector with no
// mapped concrete variant. The returned error wraps this sentinel together
// with the requested selector.
// Usage: if errors.Is(err, ErrUnknownCarType) { /* reject the selector */ }.
var ErrUnknownCarType = errors.New("factory: unknown car type")
