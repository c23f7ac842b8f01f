package prototype_test

import (
	"os"

	"github.com/katalvlaran/gopatterns/prototype"
)

// ExampleShape clones two configured prototypes and draws the copies.
func ExampleShape() {
	circlePrototype := prototype.NewCircle(10)
	rectanglePrototype := prototype.NewRectangle(5, 8)

	clonedCircle := circlePrototype.Clone()
	clonedCircle.Draw(os.Stdout)

	clonedRectangle := rectanglePrototype.Clone()
	clonedRectangle.Draw(os.Stdout)

	// Output:
	// Drawing a Circle with radius 10
	// Drawing a Rectangle with width 5 and height 8
}
