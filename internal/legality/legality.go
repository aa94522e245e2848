// Package legality decides whether a candidate board still lets every player
// eventually connect their start side to their goal side.
//
// Each player needs one potential path: a walk from a start slot to a goal
// slot that follows placed tiles exactly and passes through empty cells along
// any connection a future tile could provide. Paths of different players may
// not share an inter-hex edge, and the connections they demand from one empty
// cell must all fit on a single tile. Players are searched greedily in one
// order and, if that fails, once more with the failing player first.
package legality

import (
	"fmt"

	"github.com/anicolao/quortextt/internal/board"
)

// BlocksPlayerError rejects a placement that leaves Player without any
// potential path.
type BlocksPlayerError struct {
	Player int
}

func (e *BlocksPlayerError) Error() string {
	return fmt.Sprintf("illegal move: blocks player %d", e.Player)
}

// Check validates a candidate board whose flows are already recomputed.
// It returns nil for a legal board and a *BlocksPlayerError otherwise.
// A board that records a victory is always legal.
func Check(b *board.Board) error {
	if _, won := b.Outcome(); won {
		return nil
	}
	if player, blocked := BlockedPlayer(b); blocked {
		return &BlocksPlayerError{Player: player}
	}
	return nil
}

// IsMoveLegal reports whether Check accepts the board.
func IsMoveLegal(b *board.Board) bool {
	return Check(b) == nil
}

// BlockedPlayer runs the two-ordering search, ignoring any recorded outcome.
// It returns the player left without a path when both orderings fail.
func BlockedPlayer(b *board.Board) (int, bool) {
	players := b.Players()

	failing, failed := checkPathsForOrdering(b, players)
	if !failed {
		return 0, false
	}

	reordered := make([]int, 0, len(players))
	reordered = append(reordered, failing)
	for _, p := range players {
		if p != failing {
			reordered = append(reordered, p)
		}
	}
	return checkPathsForOrdering(b, reordered)
}

// checkPathsForOrdering finds a path for each player in turn, each one
// reserving its resources before the next search. It returns the first
// player for whom no path exists.
func checkPathsForOrdering(b *board.Board, order []int) (int, bool) {
	c := newClaims()
	for _, player := range order {
		path, ok := findPotentialPath(b, player, c)
		if !ok {
			return player, true
		}
		c.claimPath(b, path)
	}
	return 0, false
}
