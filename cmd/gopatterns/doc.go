// Command gopatterns runs the design-pattern demos.
//
// Usage
//
//	gopatterns                      # run every demo
//	gopatterns abstract-factory     # car families
//	gopatterns factory-method       # transport pricing
//	gopatterns adapter              # dice/coin and Fahrenheit sensor
//
// Flags
//
//	--config <file.yaml>   scenario overrides (see internal/config)
//	--seed <n>             seed for dice, coin and sensor; 0 seeds from the clock
//	--debug                structured debug logs on stderr
//	--metrics              print the products-created counters after the run
//
// Environment
//
//	GOPATTERNS_SEED, GOPATTERNS_PLAYER, GOPATTERNS_THRESHOLD_C override the file.
//
// Exit status is 0 on success and 1 when a demo rejects its input.
package main
