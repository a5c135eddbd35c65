package adapter_test

import (
	"testing"

	"github.com/sghaida/gopatterns/adapter"
	"github.com/sghaida/gopatterns/errs"
	"github.com/sghaida/gopatterns/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertUniform draws n values from game and checks every face in [1, sides]
// shows up within 10% of its expected share.
func assertUniform(t *testing.T, game adapter.Game, sides, n int) {
	t.Helper()

	counts := make(map[int]int, sides)
	for i := 0; i < n; i++ {
		v := game.Roll()
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, sides)
		counts[v]++
	}

	require.Len(t, counts, sides)
	expected := float64(n) / float64(sides)
	for face, c := range counts {
		assert.InEpsilon(t, expected, float64(c), 0.1, "face %d", face)
	}
}

func TestDie_Uniform(t *testing.T) {
	t.Parallel()

	die, err := adapter.NewDie(6, rng.New(2024))
	require.NoError(t, err)
	assert.Equal(t, 6, die.Edges())

	assertUniform(t, die, 6, 60_000)
}

func TestCoinAdapter_Uniform(t *testing.T) {
	t.Parallel()

	game := adapter.NewCoinAdapter(adapter.NewCoin(rng.New(2025)))
	assertUniform(t, game, 2, 20_000)
}

func TestCoinAdapter_PureDelegation(t *testing.T) {
	t.Parallel()

	seq := []int{2, 1, 1, 2, 2}
	coin := adapter.NewCoin(rng.NewSequence(seq...))
	game := adapter.NewCoinAdapter(adapter.NewCoin(rng.NewSequence(seq...)))

	for range seq {
		assert.Equal(t, coin.Flip(), game.Roll())
	}
}

func TestNewDie_InvalidEdges(t *testing.T) {
	t.Parallel()

	for _, edges := range []int{0, -1, -6} {
		die, err := adapter.NewDie(edges, rng.New(1))
		assert.Nil(t, die)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument, "edges %d", edges)
	}
}

func TestGamer_PlaysAnyGame(t *testing.T) {
	t.Parallel()

	gamer := adapter.NewGamer("Steve")
	assert.Equal(t, "Steve", gamer.Name())

	die, err := adapter.NewDie(6, rng.NewSequence(4))
	require.NoError(t, err)

	games := []struct {
		name string
		game adapter.Game
		want int
	}{
		{name: "die", game: die, want: 4},
		{name: "coin via adapter", game: adapter.NewCoinAdapter(adapter.NewCoin(rng.NewSequence(2))), want: 2},
	}

	for _, g := range games {
		assert.Equal(t, g.want, gamer.Play(g.game), g.name)
	}
}
