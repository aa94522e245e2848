package board

import (
	"sort"

	"github.com/anicolao/quortextt/internal/hex"
)

// RecomputeFlows rebuilds every flow cache from scratch and then records a
// victory if one now exists. It must run after every mutation and before
// any outcome or legality check. Calling it twice is a no-op the second time.
func (b *Board) RecomputeFlows() {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col].Kind == Placed {
				b.cells[row][col].Placed.ClearFlows()
			}
		}
	}

	for side := 0; side < hex.NumDirections; side++ {
		player := b.sides[side]
		if player == NoPlayer {
			continue
		}
		for _, slot := range b.EdgesOnBoardEdge(hex.Rotation(side)) {
			b.floodfill(player, slot.Pos, slot.Dir)
		}
	}

	b.updateOutcome()
}

// floodfill marks player's flow entering pos through edge dir and follows it
// across placed tiles until it reaches an empty cell or the board edge.
func (b *Board) floodfill(player int, pos hex.Pos, dir hex.Direction) {
	for {
		cell := b.tileMut(pos)
		if cell == nil || cell.Kind != Placed {
			return
		}
		exit := cell.Placed.ExitFromEntrance(dir)
		cell.Placed.SetFlow(dir, player)
		cell.Placed.SetFlow(exit, player)

		next, ok := b.Neighbor(pos, exit)
		if !ok {
			return
		}
		pos, dir = next, exit.Reversed()
	}
}

// updateOutcome records every player whose flow reaches a slot of their goal
// side. A recorded outcome is never changed.
func (b *Board) updateOutcome() {
	if b.outcome != nil {
		return
	}

	seen := make(map[int]bool)
	for side := 0; side < hex.NumDirections; side++ {
		player := b.sides[side]
		if player == NoPlayer {
			continue
		}
		goal := hex.Rotation(side).Add(3)
		if !b.flowReaches(player, goal) {
			continue
		}
		seen[player] = true
		if teammate := b.sides[goal]; teammate != NoPlayer {
			seen[teammate] = true
		}
	}

	if len(seen) == 0 {
		return
	}
	winners := make([]int, 0, len(seen))
	for p := range seen {
		winners = append(winners, p)
	}
	sort.Ints(winners)
	b.outcome = &Outcome{Winners: winners}
}

// flowReaches reports whether player's flow leaves the board through a slot of side.
func (b *Board) flowReaches(player int, side hex.Rotation) bool {
	for _, slot := range b.EdgesOnBoardEdge(side) {
		t := b.Tile(slot.Pos)
		if t.Kind != Placed {
			continue
		}
		if owner, ok := t.Placed.Flow(slot.Dir); ok && owner == player {
			return true
		}
	}
	return false
}

// FlowAt returns the player whose flow crosses edge d of the tile at p.
func (b *Board) FlowAt(p hex.Pos, d hex.Direction) (int, bool) {
	t := b.Tile(p)
	if t.Kind != Placed {
		return 0, false
	}
	return t.Placed.Flow(d)
}
