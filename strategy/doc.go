// Package strategy implements the Strategy behavioral pattern: a context
// delegates one step of its work to an interchangeable, swappable algorithm.
//
// What:
//
//   - RouteStrategy: the algorithm capability — CalculateRoute.
//   - ShortestRoute, FastestRoute, ScenicRoute: concrete, stateless
//     strategies, freely shared between navigators.
//   - Navigator: the context. Holds at most one strategy and delegates
//     Navigate to it.
//
// Why:
//   - Swap an algorithm at runtime without touching the context
//   - Share read-only strategies across many contexts
//   - Show the graceful no-strategy path
//
// Contract:
//
//   - SetStrategy replaces the current strategy; nil clears it.
//   - Navigate with no strategy set degrades gracefully: it writes
//     "No strategy set." and returns. Never an error.
package strategy
