package adapter

import (
	"github.com/sghaida/gopatterns/errs"
	"github.com/sghaida/gopatterns/rng"
)

// Game is what a Gamer knows how to play.
type Game interface {
	Roll() int
}

// Die is a fair die with a fixed number of edges. It implements Game directly.
type Die struct {
	edges int
	src   rng.Source
}

// NewDie returns a die with edges faces numbered 1..edges.
func NewDie(edges int, src rng.Source) (*Die, error) {
	if edges <= 0 {
		return nil, errs.Invalid("die.new", "edges", float64(edges), "must be > 0")
	}
	return &Die{edges: edges, src: src}, nil
}

// Edges returns the number of faces.
func (d *Die) Edges() int { return d.edges }

// Roll implements Game.
func (d *Die) Roll() int { return d.src.UniformInt(1, d.edges) }

// Coin is a legacy two-sided coin. It does not implement Game.
type Coin struct {
	src rng.Source
}

// NewCoin returns a coin whose sides are numbered 1 and 2.
func NewCoin(src rng.Source) *Coin { return &Coin{src: src} }

// Flip returns 1 or 2.
func (c *Coin) Flip() int { return c.src.UniformInt(1, 2) }

// CoinAdapter makes a Coin playable as a Game.
type CoinAdapter struct {
	coin *Coin
}

// NewCoinAdapter wraps coin.
func NewCoinAdapter(coin *Coin) *CoinAdapter { return &CoinAdapter{coin: coin} }

// Roll implements Game by flipping the wrapped coin.
func (a *CoinAdapter) Roll() int { return a.coin.Flip() }

// Gamer plays any Game.
type Gamer struct {
	name string
}

// NewGamer returns a player called name.
func NewGamer(name string) *Gamer { return &Gamer{name: name} }

func (g *Gamer) Name() string { return g.name }

// Play takes one turn of game and returns the outcome.
func (g *Gamer) Play(game Game) int { return game.Roll() }
