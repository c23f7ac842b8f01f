package decorator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gopatterns/decorator"
)

const costTolerance = 1e-9

func TestPlainCoffee(t *testing.T) {
	c := decorator.NewPlainCoffee()
	assert.Equal(t, "Plain Coffee", c.Description())
	assert.InDelta(t, 2.0, c.Cost(), costTolerance)
}

func TestFullStack_MilkSugarCaramel(t *testing.T) {
	c := decorator.Coffee(decorator.NewPlainCoffee())
	c = decorator.WithMilk(c)
	c = decorator.WithSugar(c)
	c = decorator.WithCaramel(c)

	assert.Equal(t, "Plain Coffee, Milk, Sugar, Caramel", c.Description())
	assert.InDelta(t, 3.4, c.Cost(), costTolerance)
}

func TestEachLayer_AddsItsOwnContribution(t *testing.T) {
	tests := []struct {
		name string
		wrap func(decorator.Coffee) decorator.Coffee
		want float64
		desc string
	}{
		{"milk", decorator.WithMilk, 2.5, "Plain Coffee, Milk"},
		{"sugar", decorator.WithSugar, 2.2, "Plain Coffee, Sugar"},
		{"caramel", decorator.WithCaramel, 2.7, "Plain Coffee, Caramel"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.wrap(decorator.NewPlainCoffee())
			assert.Equal(t, tc.desc, c.Description())
			assert.InDelta(t, tc.want, c.Cost(), costTolerance)
		})
	}
}

func TestDescription_FollowsWrapOrder(t *testing.T) {
	a := decorator.WithSugar(decorator.WithMilk(decorator.NewPlainCoffee()))
	b := decorator.WithMilk(decorator.WithSugar(decorator.NewPlainCoffee()))

	assert.Equal(t, "Plain Coffee, Milk, Sugar", a.Description())
	assert.Equal(t, "Plain Coffee, Sugar, Milk", b.Description())
	assert.InDelta(t, a.Cost(), b.Cost(), costTolerance, "cost is order-independent")
}

func TestSameAddOn_StacksTwice(t *testing.T) {
	c := decorator.WithMilk(decorator.WithMilk(decorator.NewPlainCoffee()))
	assert.Equal(t, "Plain Coffee, Milk, Milk", c.Description())
	assert.InDelta(t, 3.0, c.Cost(), costTolerance)
}
