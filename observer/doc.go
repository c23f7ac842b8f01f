// Package observer implements the Observer behavioral pattern: a one-to-many
// dependency where state changes on a subject fan out to every subscriber.
//
// What:
//
//   - Observer[T]: the capability every subscriber implements — a single
//     Update(state) callback.
//   - Subject[T]: the registry. Holds the current state plus an ordered,
//     duplicate-tolerant list of subscribers; Attach, Detach and SetState
//     are its three operations.
//   - NewsAgency / Subscriber: the concrete demo participants — an agency
//     broadcasting headlines to named subscribers.
//
// Why:
//   - Publish/subscribe, event listeners, data binding
//   - Decouple the producer of a change from its consumers
//   - Demonstrate ordered, synchronous fan-out delivery
//
// Delivery contract:
//
//   - Attach appends; attaching the same observer twice is allowed and the
//     observer is delivered to twice per pass.
//   - Detach removes the first matching reference (identity comparison) and
//     is a no-op when the observer is absent.
//   - SetState stores the new state, then delivers it synchronously and
//     sequentially, in attachment order, to a snapshot of the registry taken
//     at call time. An Attach or Detach performed from inside an Update
//     callback therefore takes effect on the NEXT SetState, never on the
//     in-flight pass.
//
// Subject is not safe for concurrent use; the demos are single-threaded.
//
// Complexity:
//
//   - Attach: O(1) amortized. Detach: O(k). SetState: O(k) deliveries plus
//     an O(k) snapshot copy, for k attached observers.
package observer
