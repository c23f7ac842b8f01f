// Package prototype implements the Prototype creational pattern: new objects
// are produced by cloning configured exemplars instead of calling
// constructors.
//
// What:
//
//   - Shape: the capability abstraction, with Clone and Draw.
//   - Circle, Rectangle: concrete variants carrying their own dimensions,
//     each able to produce an independent deep copy of itself.
//
// Why:
//   - Stamp out many objects from one tuned exemplar
//   - Hide the concrete type of the thing being copied from client code
//   - Keep copy logic next to the data it copies
//
// Contract:
//
//   - Clone returns a distinct value carrying the same dimensions as its
//     source; the clone and the prototype draw identical lines but share no
//     state.
//   - Draw writes a single descriptive line to the given writer.
package prototype
