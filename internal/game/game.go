// Package game is the aggregate that owns a board together with the tile
// bag, the players' hands, the turn order and the action history.
//
// The history is the source of truth: every state change happens through
// ApplyAction, and FromActions rebuilds an identical game from a history.
package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/anicolao/quortextt/internal/board"
	"github.com/anicolao/quortextt/internal/hex"
	"github.com/anicolao/quortextt/internal/legality"
)

type hand struct {
	tile hex.TileType
	held bool
}

// Game is not safe for concurrent mutation; see the session package for a
// shared owner.
type Game struct {
	settings   Settings
	board      *board.Board
	remaining  [hex.NumTileTypes]int
	hands      []hand
	order      []int
	randomized bool
	current    int
	history    []Action
}

// New starts a game whose history holds only the initialize action.
func New(s Settings) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	b, err := board.New(s.Players)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		settings: s,
		board:    b,
		hands:    make([]hand, s.Players),
		order:    make([]int, s.Players),
		history:  []Action{InitializeGame(s)},
	}
	for i := range g.remaining {
		g.remaining[i] = s.tilesPerType()
	}
	for i := range g.order {
		g.order[i] = i
	}
	return g, nil
}

// FromActions replays a history. The first action must initialize the game.
func FromActions(history []Action) (*Game, error) {
	if len(history) == 0 || history[0].Kind != KindInitializeGame {
		return nil, ErrEmptyHistory
	}
	g, err := New(history[0].Settings)
	if err != nil {
		return nil, err
	}
	for i, a := range history[1:] {
		if err := g.ApplyAction(a); err != nil {
			return nil, fmt.Errorf("game: replay action %d (%s): %w", i+1, a, err)
		}
	}
	return g, nil
}

// Clone returns an independent deep copy.
func (g *Game) Clone() *Game {
	c := *g
	c.board = g.board.Clone()
	c.hands = slices.Clone(g.hands)
	c.order = slices.Clone(g.order)
	c.history = make([]Action, len(g.history))
	for i, a := range g.history {
		a.Order = slices.Clone(a.Order)
		c.history[i] = a
	}
	return &c
}

// ApplyAction validates a and, if it is allowed, records it. A rejected
// action leaves the game untouched.
func (g *Game) ApplyAction(a Action) error {
	var err error
	switch a.Kind {
	case KindInitializeGame:
		err = ErrInitializedTwice
	case KindRandomizePlayerOrder:
		err = g.randomizeOrder(a.Order)
	case KindDrawTile:
		err = g.drawTile(a.Player, a.Tile)
	case KindRevealTile:
		err = g.revealTile(a.Player, a.Tile)
	case KindPlaceTile:
		err = g.placeTile(a.Player, a.Tile, a.Pos, a.Rotation)
	default:
		err = fmt.Errorf("game: unknown action kind %d", a.Kind)
	}
	if err != nil {
		return err
	}
	if a.Order != nil {
		a.Order = slices.Clone(a.Order)
	}
	g.history = append(g.history, a)
	return nil
}

func (g *Game) checkPlayer(p int) error {
	if p < 0 || p >= g.settings.Players {
		return fmt.Errorf("game: player %d: %w", p, ErrUnknownPlayer)
	}
	return nil
}

func (g *Game) randomizeOrder(order []int) error {
	if g.randomized {
		return ErrOrderRandomized
	}
	if len(order) != g.settings.Players {
		return fmt.Errorf("game: order length %d doesn't match %d players: %w", len(order), g.settings.Players, ErrBadOrder)
	}
	seen := make([]bool, g.settings.Players)
	for _, p := range order {
		if p < 0 || p >= len(seen) || seen[p] {
			return fmt.Errorf("game: order %v: %w", order, ErrBadOrder)
		}
		seen[p] = true
	}
	g.order = slices.Clone(order)
	g.current = order[0]
	g.randomized = true
	return nil
}

func (g *Game) drawTile(p int, t hex.TileType) error {
	if err := g.checkPlayer(p); err != nil {
		return err
	}
	if g.hands[p].held {
		return fmt.Errorf("game: player %d draw: %w", p, ErrAlreadyHolding)
	}
	if err := checkTile(t); err != nil {
		return err
	}
	if g.remaining[t] == 0 {
		return fmt.Errorf("game: draw %s: %w", t, ErrNoTilesRemaining)
	}
	g.hands[p] = hand{tile: t, held: true}
	g.remaining[t]--
	return nil
}

func checkTile(t hex.TileType) error {
	if int(t) >= hex.NumTileTypes {
		return fmt.Errorf("game: tile type %d: %w", t, ErrUnknownTile)
	}
	return nil
}

func (g *Game) revealTile(p int, t hex.TileType) error {
	if err := g.checkPlayer(p); err != nil {
		return err
	}
	if err := checkTile(t); err != nil {
		return err
	}
	if h := g.hands[p]; h.held && h.tile != t {
		return fmt.Errorf("game: player %d reveal %s: %w", p, t, ErrMustRevealHeldTile)
	}
	g.hands[p] = hand{tile: t, held: true}
	return nil
}

func (g *Game) placeTile(p int, t hex.TileType, pos hex.Pos, r hex.Rotation) error {
	if err := g.checkPlayer(p); err != nil {
		return err
	}
	if err := checkTile(t); err != nil {
		return err
	}
	if _, over := g.board.Outcome(); over {
		return ErrGameOver
	}
	// An empty hand accepts any tile; a held tile must be the one played.
	if h := g.hands[p]; h.held && h.tile != t {
		return fmt.Errorf("game: player %d place %s: %w", p, t, ErrTileNotInHand)
	}
	switch cell := g.board.Tile(pos); cell.Kind {
	case board.NotOnBoard:
		return fmt.Errorf("game: place at %s: %w", pos, ErrNotOnBoard)
	case board.Placed:
		return fmt.Errorf("game: place at %s: %w", pos, ErrCellNotEmpty)
	}
	if g.current != p {
		return fmt.Errorf("game: player %d on player %d's turn: %w", p, g.current, ErrWrongTurn)
	}

	candidate := g.board.Clone()
	if err := candidate.Place(pos, hex.NewPlacedTile(t, r)); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	candidate.RecomputeFlows()
	if err := legality.Check(candidate); err != nil {
		return fmt.Errorf("game: place %s at %s rotation %d: %w", t, pos, r, err)
	}

	g.board = candidate
	g.hands[p] = hand{}
	if _, over := g.board.Outcome(); !over {
		g.current = g.nextPlayer()
	}
	return nil
}

func (g *Game) nextPlayer() int {
	i := slices.Index(g.order, g.current)
	return g.order[(i+1)%len(g.order)]
}

// DrawRandomTile picks a tile type with odds proportional to the copies left
// in the bag. It does not change the game; apply a DrawTile action for that.
func (g *Game) DrawRandomTile(rng *rand.Rand) (hex.TileType, error) {
	total := 0
	for _, n := range g.remaining {
		total += n
	}
	if total == 0 {
		return 0, ErrNoTilesRemaining
	}
	pick := rng.IntN(total)
	for i, n := range g.remaining {
		if pick < n {
			return hex.TileType(i), nil
		}
		pick -= n
	}
	return 0, ErrNoTilesRemaining
}

// DoAutomaticActions draws for every empty hand, starting from the current
// player and following the turn order, then reveals the current player's
// tile if it has not been revealed since it was drawn.
func (g *Game) DoAutomaticActions(rng *rand.Rand) error {
	start := slices.Index(g.order, g.current)
	for i := range g.order {
		p := g.order[(start+i)%len(g.order)]
		if g.hands[p].held || g.TilesRemaining() == 0 {
			continue
		}
		t, err := g.DrawRandomTile(rng)
		if err != nil {
			return err
		}
		if err := g.ApplyAction(DrawTile(p, t)); err != nil {
			return err
		}
	}

	if g.revealedSinceDraw(g.current) {
		return nil
	}
	if h := g.hands[g.current]; h.held {
		return g.ApplyAction(RevealTile(g.current, h.tile))
	}
	return nil
}

func (g *Game) revealedSinceDraw(p int) bool {
	for i := len(g.history) - 1; i >= 0; i-- {
		a := g.history[i]
		if a.Player != p {
			continue
		}
		switch a.Kind {
		case KindDrawTile:
			return false
		case KindRevealTile:
			return true
		}
	}
	return false
}

// WithTilePlaced returns a copy of the game with a tile placed and flows
// recomputed. It skips every rule check and does not touch the history.
func (g *Game) WithTilePlaced(t hex.TileType, pos hex.Pos, r hex.Rotation) (*Game, error) {
	c := g.Clone()
	if err := c.board.Place(pos, hex.NewPlacedTile(t, r)); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	c.board.RecomputeFlows()
	return c, nil
}

// SetCurrentPlayerForTesting forces whose turn it is.
func (g *Game) SetCurrentPlayerForTesting(p int) {
	g.current = p
}

// Settings returns the settings the game was initialized with.
func (g *Game) Settings() Settings { return g.settings }

// NumPlayers returns the number of seated players.
func (g *Game) NumPlayers() int { return g.settings.Players }

// CurrentPlayer returns whose turn it is.
func (g *Game) CurrentPlayer() int { return g.current }

// PlayerOrder returns the turn order.
func (g *Game) PlayerOrder() []int { return slices.Clone(g.order) }

// Board returns a copy of the board.
func (g *Game) Board() *board.Board { return g.board.Clone() }

// Tile returns the contents of a cell.
func (g *Game) Tile(pos hex.Pos) board.Tile { return g.board.Tile(pos) }

// Outcome returns the winners once the game is decided.
func (g *Game) Outcome() (board.Outcome, bool) { return g.board.Outcome() }

// PlayerOnSide returns the owner of a board side, if any.
func (g *Game) PlayerOnSide(side hex.Rotation) (int, bool) { return g.board.PlayerOnSide(side) }

// TileInHand returns the tile p holds, if any.
func (g *Game) TileInHand(p int) (hex.TileType, bool) {
	if p < 0 || p >= len(g.hands) {
		return 0, false
	}
	h := g.hands[p]
	return h.tile, h.held
}

// Remaining returns the copies of each tile type left in the bag.
func (g *Game) Remaining() [hex.NumTileTypes]int { return g.remaining }

// TilesRemaining returns the size of the bag.
func (g *Game) TilesRemaining() int {
	total := 0
	for _, n := range g.remaining {
		total += n
	}
	return total
}

// History returns a copy of every applied action.
func (g *Game) History() []Action {
	return g.Clone().history
}

// HistoryLen returns the number of applied actions without copying them.
func (g *Game) HistoryLen() int { return len(g.history) }

// ActionsForViewer returns the history entries v may see, in order.
func (g *Game) ActionsForViewer(v Viewer) []Action {
	var out []Action
	for _, a := range g.History() {
		if a.Visible(v) {
			out = append(out, a)
		}
	}
	return out
}
