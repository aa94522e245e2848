package game

import (
	"fmt"

	"github.com/anicolao/quortextt/internal/hex"
)

// ActionKind tags the variant held by an Action.
type ActionKind uint8

const (
	KindInitializeGame ActionKind = iota
	KindRandomizePlayerOrder
	KindDrawTile
	KindRevealTile
	KindPlaceTile
)

var actionKindNames = [...]string{
	KindInitializeGame:       "initialize",
	KindRandomizePlayerOrder: "randomize_order",
	KindDrawTile:             "draw",
	KindRevealTile:           "reveal",
	KindPlaceTile:            "place",
}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// ParseActionKind is the inverse of ActionKind.String.
func ParseActionKind(s string) (ActionKind, error) {
	for k, name := range actionKindNames {
		if name == s {
			return ActionKind(k), nil
		}
	}
	return 0, fmt.Errorf("game: unknown action kind %q", s)
}

// Action is one entry of a game history. Which fields are set depends on Kind:
//
//	KindInitializeGame        Settings
//	KindRandomizePlayerOrder  Order
//	KindDrawTile              Player, Tile
//	KindRevealTile            Player, Tile
//	KindPlaceTile             Player, Tile, Pos, Rotation
type Action struct {
	Kind     ActionKind
	Settings Settings
	Order    []int
	Player   int
	Tile     hex.TileType
	Pos      hex.Pos
	Rotation hex.Rotation
}

func InitializeGame(s Settings) Action {
	return Action{Kind: KindInitializeGame, Settings: s}
}

func RandomizePlayerOrder(order []int) Action {
	return Action{Kind: KindRandomizePlayerOrder, Order: append([]int(nil), order...)}
}

func DrawTile(player int, tile hex.TileType) Action {
	return Action{Kind: KindDrawTile, Player: player, Tile: tile}
}

func RevealTile(player int, tile hex.TileType) Action {
	return Action{Kind: KindRevealTile, Player: player, Tile: tile}
}

func PlaceTile(player int, tile hex.TileType, pos hex.Pos, rotation hex.Rotation) Action {
	return Action{Kind: KindPlaceTile, Player: player, Tile: tile, Pos: pos, Rotation: rotation}
}

func (a Action) String() string {
	switch a.Kind {
	case KindInitializeGame:
		return fmt.Sprintf("initialize players=%d version=%d", a.Settings.Players, a.Settings.Version)
	case KindRandomizePlayerOrder:
		return fmt.Sprintf("randomize_order %v", a.Order)
	case KindDrawTile, KindRevealTile:
		return fmt.Sprintf("%s player=%d tile=%s", a.Kind, a.Player, a.Tile)
	case KindPlaceTile:
		return fmt.Sprintf("place player=%d tile=%s pos=%s rotation=%d", a.Player, a.Tile, a.Pos, a.Rotation)
	}
	return a.Kind.String()
}

// Visible reports whether v may see this action in the history. Draws are
// private to the drawing player.
func (a Action) Visible(v Viewer) bool {
	if a.Kind != KindDrawTile {
		return true
	}
	switch v.Kind {
	case PlayerViewer:
		return v.Player == a.Player
	case AdminViewer:
		return true
	}
	return false
}

// Performable reports whether v may submit this action at all. Whether it
// is legal in the current position is up to Game.ApplyAction.
func (a Action) Performable(v Viewer) bool {
	switch v.Kind {
	case SpectatorViewer:
		return false
	case AdminViewer:
		return true
	}
	switch a.Kind {
	case KindPlaceTile, KindRevealTile:
		return a.Player == v.Player
	}
	return false
}
