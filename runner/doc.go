// Package runner indexes every pattern demonstration in this module as a
// named, runnable demo.
//
// What:
//
//   - Demo: a catalog entry — name, category, one-line summary, and a Run
//     function that replays the pattern's canonical driver sequence against
//     a writer of your choice.
//   - All, Lookup, Run: read-only access to the catalog.
//   - RunAll: replays every demo in catalog order, optionally rendering the
//     demos concurrently while still emitting output in catalog order.
//
// Why:
//   - One place to discover and replay the whole collection
//   - The surface cmd/patterns is built on
//
// The catalog is fixed at compile time and ordered creational → behavioral →
// structural, matching the original teaching sequence. Every Run writes a
// deterministic line sequence: running the same demo twice produces
// identical output.
//
// Errors:
//
//   - ErrUnknownDemo — the requested name is not in the catalog. Branch with
//     errors.Is.
package runner
