// SPDX-License-Identifier: MIT
// Package: gopatterns/decorator
//
// decorator.go — the Coffee component and its add-on wrappers.

package decorator

// Coffee is the component capability: every layer, wrapped or bare,
// describes itself and prices itself.
type Coffee interface {
	// Description returns the accumulated, comma-separated description.
	Description() string
	// Cost returns the accumulated price in dollars.
	Cost() float64
}

// Base prices and add-on surcharges, in dollars.
const (
	plainCost   = 2.0
	milkCost    = 0.5
	sugarCost   = 0.2
	caramelCost = 0.7
)

// PlainCoffee is the undecorated base component.
type PlainCoffee struct{}

// NewPlainCoffee returns the base component.
func NewPlainCoffee() *PlainCoffee { return &PlainCoffee{} }

// Description returns "Plain Coffee".
func (PlainCoffee) Description() string { return "Plain Coffee" }

// Cost returns the base price.
func (PlainCoffee) Cost() float64 { return plainCost }

// addOn is the shared decorator shape: a wrapped component plus this
// layer's label and surcharge.
type addOn struct {
	inner     Coffee
	label     string
	surcharge float64
}

// Description appends this layer's label to the wrapped description.
func (a addOn) Description() string { return a.inner.Description() + ", " + a.label }

// Cost adds this layer's surcharge to the wrapped cost.
func (a addOn) Cost() float64 { return a.inner.Cost() + a.surcharge }

// WithMilk wraps c with a milk add-on (+$0.50).
func WithMilk(c Coffee) Coffee {
	return addOn{inner: c, label: "Milk", surcharge: milkCost}
}

// WithSugar wraps c with a sugar add-on (+$0.20).
func WithSugar(c Coffee) Coffee {
	return addOn{inner: c, label: "Sugar", surcharge: sugarCost}
}

// WithCaramel wraps c with a caramel add-on (+$0.70).
func WithCaramel(c Coffee) Coffee {
	return addOn{inner: c, label: "Caramel", surcharge: caramelCost}
}
