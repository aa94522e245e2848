// Package config provides YAML-based configuration loading for the engine
// and its command-line tools.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/anicolao/quortextt/internal/game"
)

// Config is the full configuration file.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Engine   EngineConfig   `yaml:"engine"`
	Log      LogConfig      `yaml:"log"`
	SelfPlay SelfPlayConfig `yaml:"selfplay"`
}

// GameConfig holds the settings new games are created with.
type GameConfig struct {
	Players      int `yaml:"players"`
	TilesPerType int `yaml:"tiles_per_type"`
	Version      int `yaml:"version"`
}

// EngineConfig tunes move generation.
type EngineConfig struct {
	Workers int `yaml:"workers"` // parallel legality checks; 0 = one per CPU
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level"` // debug, info, warn, error
	Prefix string `yaml:"prefix"`
}

// SelfPlayConfig drives the selfplay command.
type SelfPlayConfig struct {
	Games    int    `yaml:"games"`
	MaxTurns int    `yaml:"max_turns"` // 0 = until the game ends
	Seed     uint64 `yaml:"seed"`      // 0 = time based
}

// InvalidConfig reports a configuration value the engine cannot use.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Settings converts the game section into game settings.
func (c Config) Settings() game.Settings {
	return game.Settings{
		Players:      c.Game.Players,
		Version:      c.Game.Version,
		TilesPerType: c.Game.TilesPerType,
	}
}

// LogLevel parses the configured level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(strings.ToLower(c.Log.Level))
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	if c.Game.Players < 2 || c.Game.Players > 3 {
		return &InvalidConfig{"game.players", fmt.Sprintf("%d is not 2 or 3", c.Game.Players)}
	}
	if c.Game.TilesPerType <= 0 {
		return &InvalidConfig{"game.tiles_per_type", "must be positive"}
	}
	if c.Game.Version != 0 {
		return &InvalidConfig{"game.version", fmt.Sprintf("unsupported version %d", c.Game.Version)}
	}
	if c.Engine.Workers < 0 {
		return &InvalidConfig{"engine.workers", "must not be negative"}
	}
	if _, err := c.LogLevel(); err != nil {
		return &InvalidConfig{"log.level", err.Error()}
	}
	if c.SelfPlay.Games < 0 || c.SelfPlay.MaxTurns < 0 {
		return &InvalidConfig{"selfplay", "counts must not be negative"}
	}
	return nil
}
