// Package gopatterns is a small collection of runnable design-pattern demos in Go.
//
// Each demo builds a tiny type hierarchy around one classic pattern:
//
//   - abstractfactory: car families (Ford, Audi) that produce a car and a matching engine
//   - factorymethod: transport companies that decide which transport service to create
//   - adapter: a coin adapted to a dice game, and a Fahrenheit sensor adapted to Celsius
//
// Clients in every demo depend on interfaces only. Concrete variants are picked by
// factories or looked up by name in a registry, and randomness is always injected
// through rng.Source so tests stay deterministic.
//
// Package gopatterns See subpackages:
//   - abstractfactory, factorymethod, adapter: the pattern packages
//   - registry, rng, errs: small shared building blocks
//   - cmd/gopatterns: a CLI that runs every demo
//   - examples/*: one runnable program per pattern
package gopatterns
