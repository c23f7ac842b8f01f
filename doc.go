// Package gopatterns is your in-memory playground for learning the classic
// object-oriented design patterns — creational, behavioral and structural —
// as small, self-contained, runnable Go packages.
//
// 🚀 What is gopatterns?
//
//	A teaching collection that brings together fifteen pattern demonstrations:
//		• Creational: Prototype, Factory, Singleton, Builder
//		• Behavioral: Strategy, Command, Observer, Visitor
//		• Structural: Composite, Bridge, Adapter, Delegate, Proxy, Facade, Decorator
//
// ✨ Why choose gopatterns?
//
//   - Beginner-friendly – minimal API per pattern, clear, intuitive naming
//   - Deterministic – every demo narrates a fixed, reproducible line sequence
//   - Self-contained – no pattern package imports another pattern package
//   - Testable – every participant writes to an io.Writer you control
//
// Each pattern lives in its own package with its own doc.go, examples and
// tests. The runner package indexes the demos by name, and cmd/patterns is a
// small CLI front end over that catalog:
//
//	patterns list
//	patterns run composite observer
//	patterns run --all
//
// Quick taste (Decorator):
//
//	c := decorator.Coffee(decorator.NewPlainCoffee())
//	c = decorator.WithMilk(c)
//	c = decorator.WithSugar(c)
//	fmt.Printf("%s costs $%.2f\n", c.Description(), c.Cost())
//	// Plain Coffee, Milk, Sugar costs $2.70
//
// Dive into each package's doc.go for the pattern's intent, participants,
// and contract.
package gopatterns
