package game

import (
	"errors"

	"github.com/anicolao/quortextt/internal/board"
)

// Structural errors returned by ApplyAction. Placements that would strand a
// player fail with a wrapped *legality.BlocksPlayerError instead.
var (
	ErrGameOver           = errors.New("game is already over")
	ErrCellNotEmpty       = errors.New("can only place a tile on an empty space")
	ErrWrongTurn          = errors.New("wrong player's turn")
	ErrTileNotInHand      = errors.New("player must play the tile from their hand")
	ErrAlreadyHolding     = errors.New("player already has a tile in hand")
	ErrNoTilesRemaining   = errors.New("no tiles remaining of drawn type")
	ErrMustRevealHeldTile = errors.New("must reveal the tile the player holds")
	ErrInitializedTwice   = errors.New("game initialized twice")
	ErrOrderRandomized    = errors.New("player order already randomized")
	ErrBadOrder           = errors.New("player order must list each player exactly once")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrUnknownTile        = errors.New("unknown tile type")
	ErrNotPerformable     = errors.New("viewer may not perform this action")
	ErrEmptyHistory       = errors.New("history must start with initialize")
	ErrNotOnBoard         = board.ErrNotOnBoard
)
