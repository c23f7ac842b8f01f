// SPDX-License-Identifier: MIT
// Package: gopatterns/runner
//
// errors.go — sentinel errors for the runner package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Lookup and Run wrap the sentinel with the offending name via %w.

package runner

import "errors"

// ErrUnknownDemo indicates that a requested demo name has no catalog entry.
// The returned error wraps this sentinel together with the requested name.
// Usage: if errors.Is(err, ErrUnknownDemo) { /* list valid names */ }.
var ErrUnknownDemo = errors.New("runner: unknown demo")
