package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/anicolao/quortextt/internal/game"
	"github.com/anicolao/quortextt/internal/session"
)

// StopReason says why a self-play game ended.
type StopReason uint8

const (
	StopWon StopReason = iota
	StopTurnLimit
	StopBagEmpty
	StopNoLegalMove
)

func (r StopReason) String() string {
	switch r {
	case StopWon:
		return "won"
	case StopTurnLimit:
		return "turn limit"
	case StopBagEmpty:
		return "bag empty"
	case StopNoLegalMove:
		return "no legal move"
	}
	return fmt.Sprintf("StopReason(%d)", uint8(r))
}

// Summary describes one finished self-play game.
type Summary struct {
	Game    *game.Game
	Turns   int
	Winners []int
	Reason  StopReason
}

// SelfPlay lets b play every seat of s, submitting each move through the
// moving player's handle, until the game ends or maxTurns moves have been
// made (0 = no limit).
func SelfPlay(ctx context.Context, s *session.Session, b *Random, maxTurns int) (Summary, error) {
	var sum Summary
	for {
		g := s.Snapshot()
		sum.Game = g
		if outcome, over := g.Outcome(); over {
			sum.Winners = outcome.Winners
			sum.Reason = StopWon
			return sum, nil
		}
		if maxTurns > 0 && sum.Turns >= maxTurns {
			sum.Reason = StopTurnLimit
			return sum, nil
		}

		move, err := b.ChooseMove(ctx, g)
		switch {
		case errors.Is(err, ErrNoTileInHand):
			sum.Reason = StopBagEmpty
			return sum, nil
		case errors.Is(err, ErrNoLegalMove):
			sum.Reason = StopNoLegalMove
			return sum, nil
		case err != nil:
			return sum, err
		}
		if err := s.Handle(game.AsPlayer(move.Player)).Submit(move); err != nil {
			return sum, fmt.Errorf("bot: chosen move rejected: %w", err)
		}
		sum.Turns++
	}
}
