package observer_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/gopatterns/observer"
)

// TestSetState_FanOutProperty checks, over random registry sizes and message
// sequences, that every attached observer receives every message exactly
// once, in publication order.
func TestSetState_FanOutProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("each of k observers sees each message once, in order", prop.ForAll(
		func(k int, messages []int) bool {
			s := observer.NewSubject[int]()
			observers := make([]*recording, k)
			for i := range observers {
				observers[i] = &recording{}
				s.Attach(observers[i])
			}

			for _, m := range messages {
				s.SetState(m)
			}

			for _, o := range observers {
				if len(o.got) != len(messages) {
					return false
				}
				for i := range messages {
					if o.got[i] != messages[i] {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(0, 16).WithLabel("observers"),
		gen.SliceOf(gen.IntRange(-1000, 1000)).WithLabel("messages"),
	))

	properties.TestingRun(t)
}
