package game

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/anicolao/quortextt/internal/hex"
	"github.com/anicolao/quortextt/internal/legality"
)

// Placement is a cell and an orientation for the tile in hand.
type Placement struct {
	Pos      hex.Pos
	Rotation hex.Rotation
}

// LegalPlacements returns every placement of t the legality check accepts
// on the current board, ordered by row, column and rotation. Each candidate
// is checked on its own board copy, up to workers at a time; workers <= 0
// means one per CPU.
func (g *Game) LegalPlacements(ctx context.Context, t hex.TileType, workers int) ([]Placement, error) {
	if err := checkTile(t); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var candidates []Placement
	for _, pos := range g.board.EmptyPositions() {
		for r := 0; r < hex.NumDirections; r++ {
			candidates = append(candidates, Placement{Pos: pos, Rotation: hex.Rotation(r)})
		}
	}

	legal := make([]bool, len(candidates))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range candidates {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b := g.board.Clone()
			if err := b.Place(c.Pos, hex.NewPlacedTile(t, c.Rotation)); err != nil {
				return err
			}
			b.RecomputeFlows()
			legal[i] = legality.IsMoveLegal(b)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]Placement, 0, len(candidates))
	for i, ok := range legal {
		if ok {
			out = append(out, candidates[i])
		}
	}
	return out, nil
}
