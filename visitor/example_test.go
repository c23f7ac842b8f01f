package visitor_test

import (
	"os"

	"github.com/katalvlaran/gopatterns/visitor"
)

// ExampleAnimalVisitor applies two operations to the same fixed zoo without
// the animals knowing either operation exists.
func ExampleAnimalVisitor() {
	zoo := []visitor.Animal{
		&visitor.Lion{},
		&visitor.Penguin{},
		&visitor.Elephant{},
	}

	feeding := visitor.NewFeeding(os.Stdout)
	healthCheck := visitor.NewHealthCheck(os.Stdout)

	for _, animal := range zoo {
		animal.Accept(feeding)
	}
	for _, animal := range zoo {
		animal.Accept(healthCheck)
	}

	// Output:
	// Feeding the lion meat.
	// Feeding the penguin fish.
	// Feeding the elephant bananas.
	// Checking the lion's teeth.
	// Checking the penguin's feathers.
	// Checking the elephant's tusks.
}
