package game

import "fmt"

// DefaultTilesPerType is the number of copies of each tile type in a fresh bag.
const DefaultTilesPerType = 10

// Settings fixes the shape of a game. They are recorded as the first action
// of every history.
type Settings struct {
	Players      int `yaml:"players"`
	Version      int `yaml:"version"`
	TilesPerType int `yaml:"tiles_per_type,omitempty"`
}

// DefaultSettings returns a two-player game with a full bag.
func DefaultSettings() Settings {
	return Settings{Players: 2, TilesPerType: DefaultTilesPerType}
}

// Validate rejects settings the engine cannot play.
func (s Settings) Validate() error {
	if s.Version != 0 {
		return fmt.Errorf("game: invalid version %d", s.Version)
	}
	if s.Players < 2 || s.Players > 3 {
		return fmt.Errorf("game: invalid number of players %d (must be 2 or 3)", s.Players)
	}
	if s.TilesPerType < 0 {
		return fmt.Errorf("game: invalid tiles per type %d", s.TilesPerType)
	}
	return nil
}

func (s Settings) tilesPerType() int {
	if s.TilesPerType == 0 {
		return DefaultTilesPerType
	}
	return s.TilesPerType
}
