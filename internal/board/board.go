// Package board holds the clipped hexagonal board, the side ownership and
// the derived per-edge flow state used to detect victory.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anicolao/quortextt/internal/hex"
)

// Size is the width and height of the square array the board lives in.
const Size = 7

// NoPlayer marks an unowned side.
const NoPlayer = -1

// ErrNotOnBoard is returned when a position lies outside the playable hexagon.
var ErrNotOnBoard = errors.New("position is not on the board")

// Kind tags the contents of a cell.
type Kind uint8

const (
	NotOnBoard Kind = iota
	Empty
	Placed
)

// Tile is the contents of one cell. Placed is meaningful only when
// Kind == Placed.
type Tile struct {
	Kind   Kind
	Placed hex.PlacedTile
}

// IsEmpty reports whether the cell can still receive a tile.
func (t Tile) IsEmpty() bool {
	return t.Kind == Empty
}

// Slot is one boundary edge of the board: a hex and the outward direction
// that leaves the board.
type Slot struct {
	Pos hex.Pos
	Dir hex.Direction
}

// Outcome is a finished game. Winners is sorted and free of duplicates.
type Outcome struct {
	Winners []int
}

// Board is the 7x7 array clipped to a hexagon of 37 playable cells.
// Side 0 is the south edge; sides are numbered clockwise.
type Board struct {
	cells   [Size][Size]Tile
	sides   [hex.NumDirections]int
	outcome *Outcome
}

// New returns an empty board for 2 or 3 players. Player 0 owns side 0,
// player 1 side 2 and player 2 side 4.
func New(players int) (*Board, error) {
	if players < 2 || players > 3 {
		return nil, fmt.Errorf("board: invalid number of players %d", players)
	}
	sides := [hex.NumDirections]int{NoPlayer, NoPlayer, NoPlayer, NoPlayer, NoPlayer, NoPlayer}
	for p := 0; p < players; p++ {
		sides[2*p] = p
	}
	return NewWithSides(sides), nil
}

// NewWithSides returns an empty board with an explicit side assignment.
// Use NoPlayer for unowned sides.
func NewWithSides(sides [hex.NumDirections]int) *Board {
	b := &Board{sides: sides}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.cells[row][col] = Tile{Kind: Empty}
		}
	}
	// Clip the north-west and south-east corners of the square.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3-i; j++ {
			b.cells[Size-1-i][j] = Tile{Kind: NotOnBoard}
			b.cells[i][Size-1-j] = Tile{Kind: NotOnBoard}
		}
	}
	return b
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	if b.outcome != nil {
		winners := make([]int, len(b.outcome.Winners))
		copy(winners, b.outcome.Winners)
		c.outcome = &Outcome{Winners: winners}
	}
	return &c
}

// Center returns the middle cell.
func (b *Board) Center() hex.Pos {
	return hex.P(3, 3)
}

func inArray(p hex.Pos) bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Tile returns the contents of p; anything outside the hexagon is NotOnBoard.
func (b *Board) Tile(p hex.Pos) Tile {
	if !inArray(p) {
		return Tile{Kind: NotOnBoard}
	}
	return b.cells[p.Row][p.Col]
}

// tileMut returns the cell at p for in-place updates, or nil outside the array.
func (b *Board) tileMut(p hex.Pos) *Tile {
	if !inArray(p) {
		return nil
	}
	return &b.cells[p.Row][p.Col]
}

// OnBoard reports whether p is a playable cell.
func (b *Board) OnBoard(p hex.Pos) bool {
	return b.Tile(p).Kind != NotOnBoard
}

// Place puts a tile at p, replacing whatever playable contents were there.
// It does not recompute flows; call RecomputeFlows afterwards.
func (b *Board) Place(p hex.Pos, t hex.PlacedTile) error {
	cell := b.tileMut(p)
	if cell == nil || cell.Kind == NotOnBoard {
		return fmt.Errorf("board: place at %v: %w", p, ErrNotOnBoard)
	}
	t.ClearFlows()
	*cell = Tile{Kind: Placed, Placed: t}
	return nil
}

// Neighbor returns the cell across edge d of p, or false at the board edge.
func (b *Board) Neighbor(p hex.Pos, d hex.Direction) (hex.Pos, bool) {
	n := p.Step(d)
	if !b.OnBoard(n) {
		return hex.Pos{}, false
	}
	return n, true
}

// IsBorderEdge reports whether edge d of p faces outside the board.
func (b *Board) IsBorderEdge(p hex.Pos, d hex.Direction) bool {
	return !b.OnBoard(p.Step(d))
}

// southEdge is side 0; every other side is this template turned around the center.
var southEdge = [7]Slot{
	{hex.P(0, 0), hex.SouthEast},
	{hex.P(0, 1), hex.SouthWest},
	{hex.P(0, 1), hex.SouthEast},
	{hex.P(0, 2), hex.SouthWest},
	{hex.P(0, 2), hex.SouthEast},
	{hex.P(0, 3), hex.SouthWest},
	{hex.P(0, 3), hex.SouthEast},
}

// EdgesOnBoardEdge returns the seven boundary slots of a side in order.
func (b *Board) EdgesOnBoardEdge(side hex.Rotation) [7]Slot {
	center := b.Center()
	var out [7]Slot
	for i, s := range southEdge {
		out[i] = Slot{
			Pos: center.Add(s.Pos.Sub(center).Rotate(side)),
			Dir: s.Dir.Rotate(side),
		}
	}
	return out
}

// PlayerOnSide returns the owner of a side, if any.
func (b *Board) PlayerOnSide(side hex.Rotation) (int, bool) {
	p := b.sides[side%6]
	return p, p != NoPlayer
}

// StartSide returns the side owned by player.
func (b *Board) StartSide(player int) (hex.Rotation, bool) {
	for side, p := range b.sides {
		if p == player && p != NoPlayer {
			return hex.Rotation(side), true
		}
	}
	return 0, false
}

// GoalSide returns the side opposite player's start.
func (b *Board) GoalSide(player int) (hex.Rotation, bool) {
	start, ok := b.StartSide(player)
	if !ok {
		return 0, false
	}
	return start.Add(3), true
}

// NumPlayers returns the number of players owning a side.
func (b *Board) NumPlayers() int {
	n := 0
	for _, p := range b.sides {
		if p != NoPlayer {
			n++
		}
	}
	return n
}

// Players returns the owning players in index order.
func (b *Board) Players() []int {
	var players []int
	for p := 0; p < hex.NumDirections; p++ {
		if _, ok := b.StartSide(p); ok {
			players = append(players, p)
		}
	}
	return players
}

// Positions returns every playable cell in row-major order.
func (b *Board) Positions() []hex.Pos {
	out := make([]hex.Pos, 0, 37)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col].Kind != NotOnBoard {
				out = append(out, hex.P(row, col))
			}
		}
	}
	return out
}

// EmptyPositions returns every cell still open for play in row-major order.
func (b *Board) EmptyPositions() []hex.Pos {
	var out []hex.Pos
	for _, p := range b.Positions() {
		if b.Tile(p).IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

// Outcome returns the recorded result, if the game is decided.
func (b *Board) Outcome() (Outcome, bool) {
	if b.outcome == nil {
		return Outcome{}, false
	}
	winners := make([]int, len(b.outcome.Winners))
	copy(winners, b.outcome.Winners)
	return Outcome{Winners: winners}, true
}

// String draws the board north row first, shifted so rows line up as hexes.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		sb.WriteString(strings.Repeat(" ", Size-row))
		for col := 0; col < Size; col++ {
			t := b.cells[row][col]
			switch t.Kind {
			case NotOnBoard:
				sb.WriteString("  ")
			case Empty:
				sb.WriteString(". ")
			case Placed:
				fmt.Fprintf(&sb, "%d ", t.Placed.Type.Sharps())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
