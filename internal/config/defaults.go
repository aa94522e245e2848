package config

import (
	_ "embed"

	"github.com/anicolao/quortextt/internal/game"
)

//go:embed defaults/quortextt.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Players:      2,
			TilesPerType: game.DefaultTilesPerType,
			Version:      0,
		},
		Engine: EngineConfig{
			Workers: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Prefix: "quortextt",
		},
		SelfPlay: SelfPlayConfig{
			Games:    1,
			MaxTurns: 40,
		},
	}
}
