// SPDX-License-Identifier: MIT
// Package: gopatterns/builder
//
// builder.go — the Pizza product, the builder capability, and its variants.

package builder

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Pizza is the assembled product.
type Pizza struct {
	Crust    string
	Sauce    string
	Toppings []string
}

// Show writes the product's one-line description to w.
// A nil w falls back to os.Stdout.
func (p *Pizza) Show(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Pizza with %s crust, %s sauce, and toppings: %s\n",
		p.Crust, p.Sauce, strings.Join(p.Toppings, " "))
}

// PizzaBuilder is the builder capability: one method per construction step.
// The Director decides when each step runs; the builder decides what it
// contributes.
type PizzaBuilder interface {
	// Reset starts a fresh product, discarding any partial one.
	Reset()
	// SetCrust chooses the crust.
	SetCrust()
	// SetSauce chooses the sauce.
	SetSauce()
	// AddToppings lays on this builder's topping set.
	AddToppings()
	// Pizza returns the assembled product.
	Pizza() *Pizza
}

// VeggieBuilder assembles a thin-crust vegetarian pizza.
type VeggieBuilder struct {
	pizza *Pizza
}

// NewVeggieBuilder returns a VeggieBuilder with a fresh product.
func NewVeggieBuilder() *VeggieBuilder {
	return &VeggieBuilder{pizza: &Pizza{}}
}

// Reset discards the current product.
func (b *VeggieBuilder) Reset() { b.pizza = &Pizza{} }

// SetCrust picks a thin crust.
func (b *VeggieBuilder) SetCrust() { b.pizza.Crust = "Thin" }

// SetSauce picks a tomato sauce.
func (b *VeggieBuilder) SetSauce() { b.pizza.Sauce = "Tomato" }

// AddToppings lays on the vegetarian set.
func (b *VeggieBuilder) AddToppings() {
	b.pizza.Toppings = []string{"Bell Peppers", "Mushrooms", "Olives"}
}

// Pizza returns the assembled product.
func (b *VeggieBuilder) Pizza() *Pizza { return b.pizza }

// MeatLoversBuilder assembles a thick-crust meat pizza.
type MeatLoversBuilder struct {
	pizza *Pizza
}

// NewMeatLoversBuilder returns a MeatLoversBuilder with a fresh product.
func NewMeatLoversBuilder() *MeatLoversBuilder {
	return &MeatLoversBuilder{pizza: &Pizza{}}
}

// Reset discards the current product.
func (b *MeatLoversBuilder) Reset() { b.pizza = &Pizza{} }

// SetCrust picks a thick crust.
func (b *MeatLoversBuilder) SetCrust() { b.pizza.Crust = "Thick" }

// SetSauce picks a barbecue sauce.
func (b *MeatLoversBuilder) SetSauce() { b.pizza.Sauce = "Barbecue" }

// AddToppings lays on the meat set.
func (b *MeatLoversBuilder) AddToppings() {
	b.pizza.Toppings = []string{"Pepperoni", "Sausage", "Bacon"}
}

// Pizza returns the assembled product.
func (b *MeatLoversBuilder) Pizza() *Pizza { return b.pizza }

// Director drives any PizzaBuilder through the fixed construction sequence.
type Director struct{}

// Construct issues Reset, SetCrust, SetSauce, AddToppings in that fixed
// order and returns the assembled product.
func (Director) Construct(b PizzaBuilder) *Pizza {
	b.Reset()
	b.SetCrust()
	b.SetSauce()
	b.AddToppings()

	return b.Pizza()
}
