package legality

import "github.com/anicolao/quortextt/internal/hex"

// configurations holds the connection sets of all 24 (shape, rotation) pairs.
var configurations = func() [hex.NumTileTypes * 6][3]hex.Connection {
	var out [hex.NumTileTypes * 6][3]hex.Connection
	for i, tt := range hex.TileTypes {
		for r := 0; r < 6; r++ {
			out[i*6+r] = hex.NewPlacedTile(tt, hex.Rotation(r)).Connections()
		}
	}
	return out
}()

// Satisfiable reports whether a single tile in some rotation provides every
// demanded connection. Demands must be normalized (see hex.Connect); an
// empty demand set is always satisfiable.
func Satisfiable(demands ...hex.Connection) bool {
	if len(demands) == 0 {
		return true
	}
	for _, cfg := range configurations {
		if provides(cfg, demands) {
			return true
		}
	}
	return false
}

func provides(cfg [3]hex.Connection, demands []hex.Connection) bool {
	for _, d := range demands {
		if cfg[0] != d && cfg[1] != d && cfg[2] != d {
			return false
		}
	}
	return true
}
