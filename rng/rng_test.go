package rng_test

import (
	"testing"

	"github.com/sghaida/gopatterns/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRand_StaysInRange(t *testing.T) {
	t.Parallel()

	r := rng.New(42)
	for i := 0; i < 10_000; i++ {
		v := r.UniformInt(1, 6)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
	}
}

func TestRand_SwappedBounds(t *testing.T) {
	t.Parallel()

	r := rng.New(7)
	for i := 0; i < 1_000; i++ {
		v := r.UniformInt(10, 5)
		require.GreaterOrEqual(t, v, 5)
		require.LessOrEqual(t, v, 10)
	}
}

func TestRand_SameSeedSameStream(t *testing.T) {
	t.Parallel()

	a, b := rng.New(99), rng.New(99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.UniformInt(1, 100), b.UniformInt(1, 100))
	}
	assert.Equal(t, uint64(99), a.Seed())
}

func TestRand_ZeroSeedUsesClock(t *testing.T) {
	t.Parallel()

	assert.NotZero(t, rng.New(0).Seed())
}

func TestSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []int
		min, max int
		want     []int
	}{
		{name: "replays and wraps", values: []int{1, 2, 3}, min: 1, max: 6, want: []int{1, 2, 3, 1}},
		{name: "clamps to range", values: []int{0, 9}, min: 1, max: 6, want: []int{1, 6}},
		{name: "empty yields min", values: nil, min: 3, max: 6, want: []int{3, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := rng.NewSequence(tc.values...)
			got := make([]int, 0, len(tc.want))
			for range tc.want {
				got = append(got, s.UniformInt(tc.min, tc.max))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var src rng.Source = rng.Func(func(min, max int) int { return max })
	assert.Equal(t, 6, src.UniformInt(1, 6))
}
