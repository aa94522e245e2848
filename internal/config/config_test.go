package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults %+v differ from Default() %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("game:\n  players: 3\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Players != 3 {
		t.Errorf("expected 3 players, got %d", cfg.Game.Players)
	}
	if cfg.Game.TilesPerType != 10 {
		t.Errorf("unset keys should keep defaults, got tiles_per_type %d", cfg.Game.TilesPerType)
	}
	level, err := cfg.LogLevel()
	if err != nil || level != log.DebugLevel {
		t.Errorf("expected debug level, got %v (%v)", level, err)
	}
	if got := cfg.Settings(); got.Players != 3 || got.TilesPerType != 10 {
		t.Errorf("unexpected settings %+v", got)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("game: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed file")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("game:\n  players: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	var ic *InvalidConfig
	if !errors.As(err, &ic) {
		t.Fatalf("expected InvalidConfig, got %v", err)
	}
	if ic.Field != "game.players" {
		t.Errorf("expected game.players, got %s", ic.Field)
	}
}

// useConfigHome points the XDG config home at dir for the rest of the test.
func useConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	useConfigHome(t, home)

	path := filepath.Join(home, userConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("game:\n  players: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Players != 3 {
		t.Errorf("expected user config with 3 players, got %d", cfg.Game.Players)
	}

	if err := os.WriteFile(path, []byte("game: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil {
		t.Error("expected error for malformed user config, got fallback")
	}

	if err := os.WriteFile(path, []byte("game:\n  players: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var ic *InvalidConfig
	if _, err := Load(""); !errors.As(err, &ic) {
		t.Errorf("expected InvalidConfig for user config, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"defaults", func(*Config) {}, ""},
		{"one player", func(c *Config) { c.Game.Players = 1 }, "game.players"},
		{"empty bag", func(c *Config) { c.Game.TilesPerType = 0 }, "game.tiles_per_type"},
		{"version", func(c *Config) { c.Game.Version = 2 }, "game.version"},
		{"workers", func(c *Config) { c.Engine.Workers = -1 }, "engine.workers"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"selfplay", func(c *Config) { c.SelfPlay.MaxTurns = -3 }, "selfplay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var ic *InvalidConfig
			if !errors.As(err, &ic) || ic.Field != tt.field {
				t.Errorf("Validate() = %v, want InvalidConfig for %s", err, tt.field)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	got, err := WriteDefault(path)
	if err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written defaults failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("written defaults load as %+v", cfg)
	}

	if _, err := WriteDefault(path); err == nil {
		t.Error("expected error when file exists")
	}
}
