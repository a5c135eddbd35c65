// Package rng provides the injected source of randomness used by the demos.
//
// Randomness is the only non-deterministic element in this repository. Every type
// that needs it takes a Source, so production code uses a seeded PCG generator
// and tests use a Sequence with fixed values.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source draws integers uniformly from the inclusive range [min, max].
//
// Implementations never fail. If max < min the bounds are swapped.
type Source interface {
	UniformInt(min, max int) int
}

// Rand is a Source backed by a PCG generator.
type Rand struct {
	r    *rand.Rand
	seed uint64
}

// New returns a Rand seeded with seed. A zero seed is replaced with the clock.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed: seed}
}

// Seed returns the effective seed, useful to replay a run.
func (r *Rand) Seed() uint64 { return r.seed }

// UniformInt implements Source.
func (r *Rand) UniformInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.r.IntN(max-min+1)
}

// Func adapts a plain function to Source.
type Func func(min, max int) int

// UniformInt implements Source.
func (f Func) UniformInt(min, max int) int { return f(min, max) }

// Sequence replays fixed values in order and wraps around at the end.
// Values are clamped to the requested range so a Sequence never breaks
// the [min, max] contract.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence over values. An empty Sequence always yields min.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// UniformInt implements Source.
func (s *Sequence) UniformInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	switch {
	case v < min:
		return min
	case v > max:
		return max
	default:
		return v
	}
}
