// Package bot plays legal moves chosen at random. It has no evaluation of
// positions; it exists to drive self-play and soak the engine.
package bot

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/anicolao/quortextt/internal/game"
)

var (
	ErrNoTileInHand = errors.New("current player holds no tile")
	ErrNoLegalMove  = errors.New("no legal placement for the tile in hand")
)

// Random picks uniformly among the legal placements of the tile in hand.
type Random struct {
	rng     *rand.Rand
	workers int
}

func NewRandom(rng *rand.Rand, workers int) *Random {
	return &Random{rng: rng, workers: workers}
}

// ChooseMove returns a PlaceTile action for the current player of g.
func (b *Random) ChooseMove(ctx context.Context, g *game.Game) (game.Action, error) {
	p := g.CurrentPlayer()
	tile, held := g.TileInHand(p)
	if !held {
		return game.Action{}, fmt.Errorf("bot: player %d: %w", p, ErrNoTileInHand)
	}

	moves, err := g.LegalPlacements(ctx, tile, b.workers)
	if err != nil {
		return game.Action{}, fmt.Errorf("bot: %w", err)
	}
	if len(moves) == 0 {
		return game.Action{}, fmt.Errorf("bot: player %d with %s: %w", p, tile, ErrNoLegalMove)
	}
	m := moves[b.rng.IntN(len(moves))]
	return game.PlaceTile(p, tile, m.Pos, m.Rotation), nil
}
