// Package visitor implements the Visitor behavioral pattern: new operations
// over a fixed set of element types, added without touching those types.
//
// What:
//
//   - Animal: the element capability — Accept(visitor) double-dispatches to
//     the visitor method for the concrete animal.
//   - Lion, Penguin, Elephant: the fixed element set.
//   - AnimalVisitor: the operation capability, one Visit method per element
//     type.
//   - FeedingVisitor, HealthCheckVisitor: two concrete operations.
//
// Why:
//   - Keep per-type behavior for a whole operation in one place
//   - Add operations (feeding, health checks, ...) without editing the
//     animals
//   - Demonstrate double dispatch in a language without method overloading
//
// Adding a new Animal means extending AnimalVisitor, which deliberately
// breaks every existing visitor until it handles the new type — the classic
// visitor trade-off.
package visitor
