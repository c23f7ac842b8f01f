package observer_test

import (
	"os"

	"github.com/katalvlaran/gopatterns/observer"
)

// ExampleNewsAgency walks the classic news-agency scenario: two subscribers
// receive the first headline, one unsubscribes, and only the remaining
// subscriber receives the second.
func ExampleNewsAgency() {
	agency := observer.NewAgency()

	alice := observer.NewSubscriber("Alice", os.Stdout)
	bob := observer.NewSubscriber("Bob", os.Stdout)

	agency.Attach(alice)
	agency.Attach(bob)

	agency.SetNews("Breaking News: Observer Pattern Implemented!")

	agency.Detach(bob)

	agency.SetNews("Update: Observer Pattern is Awesome!")

	// Output:
	// Alice received update: Breaking News: Observer Pattern Implemented!
	// Bob received update: Breaking News: Observer Pattern Implemented!
	// Alice received update: Update: Observer Pattern is Awesome!
}
