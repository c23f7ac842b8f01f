// Package singleton implements the Singleton creational pattern: exactly one
// instance per slot, constructed lazily on first access.
//
// What:
//
//   - Instance: the singleton payload; it narrates its construction once and
//     can describe itself on demand.
//   - Lazy: a once-guarded slot (sync.Once) — the idiomatic Go rendition.
//   - MutexLazy: a check-and-construct slot serialized by a sync.Mutex,
//     mirroring the classic hand-rolled thread-safe variant.
//   - Default / Instance(): the process-wide slot, exposed only through an
//     accessor so no ambient mutable global leaks out.
//
// Why:
//   - One well-known access point to a shared resource
//   - Defer an expensive construction until it is actually needed
//   - Show the contract concurrent first access must honor
//
// Concurrency contract:
//
//   - Concurrent callers contending for first access are serialized so that
//     exactly one construction ever occurs; every caller observes the same
//     reference. No ordering guarantee exists among the callers themselves.
//   - The slot is written at most once and read thereafter without further
//     synchronization.
//
// Both variants print their "instance created." line exactly once per slot,
// regardless of how many times the accessor runs.
package singleton
