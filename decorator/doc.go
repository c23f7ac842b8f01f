// Package decorator implements the Decorator structural pattern: behavior is
// layered onto an object by wrapping it, keeping the wrapped and unwrapped
// forms interchangeable.
//
// What:
//
//   - Coffee: the capability — Description and Cost.
//   - PlainCoffee: the base component, $2.00.
//   - WithMilk (+$0.50), WithSugar (+$0.20), WithCaramel (+$0.70):
//     decorators. Each wraps any Coffee and adds its own contribution to
//     both operations.
//
// Why:
//   - Compose add-ons at runtime instead of minting a subclass per combo
//   - Stack the same add-on twice if the customer insists
//   - Keep every layer substitutable for the bare component
//
// Wrapping order is significant for the description and irrelevant for the
// cost: descriptions append in wrap order; costs merely sum.
package decorator
