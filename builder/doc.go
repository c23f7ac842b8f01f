// Package builder implements the Builder creational pattern: a director
// drives a fixed construction sequence against interchangeable builders,
// each assembling its own product.
//
// What:
//
//   - Pizza: the product — crust, sauce, and an ordered topping list.
//   - PizzaBuilder: the builder capability with one method per construction
//     step (Reset, SetCrust, SetSauce, AddToppings) plus Pizza() to collect
//     the result.
//   - VeggieBuilder, MeatLoversBuilder: concrete builders; each decides what
//     every step contributes to its own product.
//   - Director: issues the construction steps in a fixed order. No step is
//     ever skipped or reordered.
//
// Why:
//   - Separate a construction recipe from the parts each variant supplies
//   - Reuse one recipe across many product flavors
//   - Keep partially-built products out of client hands
//
// Contract:
//
//   - Director.Construct always issues Reset, SetCrust, SetSauce,
//     AddToppings, in that order, then returns the builder's product.
//   - Reset gives every builder a fresh product, so one builder can be run
//     through the director any number of times.
package builder
