// Package adapter demonstrates the Adapter pattern twice.
//
// The structural adapter lets a Gamer who only knows how to Roll a Game play with a
// Coin, whose legacy API is Flip. CoinAdapter renames the call and changes nothing else.
//
// The semantic adapter lets a ClimateControl that expects Celsius readings use a
// FahrenheitSensor. SensorAdapter converts every reading with
//
//	celsius = round2((fahrenheit - 32) / 1.8)
//
// Both adapters hold a single reference to the wrapped value and keep no derived state.
// All randomness comes from an injected rng.Source.
package adapter
