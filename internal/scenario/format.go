package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/anicolao/quortextt/internal/hex"
)

// yamlScenario is the on-disk layout of a scenario file.
type yamlScenario struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Players     int             `yaml:"players"`
	Fill        *yamlFill       `yaml:"fill,omitempty"`
	Setup       []yamlPlacement `yaml:"setup,omitempty"`
	Moves       []yamlPlacement `yaml:"moves,omitempty"`
	Current     *int            `yaml:"current,omitempty"`
	Probe       yamlPlacement   `yaml:"probe"`
	Expect      string          `yaml:"expect"`
	Blocked     *int            `yaml:"blocked,omitempty"`
	Winners     []int           `yaml:"winners,omitempty"`
}

type yamlFill struct {
	Tile     int      `yaml:"tile"`
	Rotation int      `yaml:"rotation"`
	Except   [][2]int `yaml:"except,omitempty"`
}

// yamlPlacement names a tile by its number of sharp turns.
type yamlPlacement struct {
	Player   int `yaml:"player,omitempty"`
	Tile     int `yaml:"tile"`
	Row      int `yaml:"row"`
	Col      int `yaml:"col"`
	Rotation int `yaml:"rotation"`
}

func (p yamlPlacement) toPlacement() (Placement, error) {
	tt, err := hex.TileTypeFromSharps(p.Tile)
	if err != nil {
		return Placement{}, err
	}
	return Placement{
		Player:   p.Player,
		Tile:     tt,
		Pos:      hex.P(p.Row, p.Col),
		Rotation: hex.NewRotation(p.Rotation),
	}, nil
}

// Parse decodes a scenario from YAML.
func Parse(data []byte) (Scenario, error) {
	var ys yamlScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ys.ID == "" {
		return Scenario{}, fmt.Errorf("scenario has no id")
	}

	players := ys.Players
	if players == 0 {
		players = 2
	}
	s := Scenario{
		ID:          ys.ID,
		Name:        ys.Name,
		Description: ys.Description,
		Players:     players,
		Current:     -1,
		Blocked:     -1,
		Winners:     ys.Winners,
	}
	if ys.Current != nil {
		s.Current = *ys.Current
	}
	if ys.Blocked != nil {
		s.Blocked = *ys.Blocked
	}

	var err error
	if s.Expect, err = ParseVerdict(ys.Expect); err != nil {
		return Scenario{}, err
	}

	if ys.Fill != nil {
		tt, err := hex.TileTypeFromSharps(ys.Fill.Tile)
		if err != nil {
			return Scenario{}, fmt.Errorf("fill: %w", err)
		}
		f := &Fill{Tile: tt, Rotation: hex.NewRotation(ys.Fill.Rotation)}
		for _, e := range ys.Fill.Except {
			f.Except = append(f.Except, hex.P(e[0], e[1]))
		}
		s.Fill = f
	}

	for i, yp := range ys.Setup {
		p, err := yp.toPlacement()
		if err != nil {
			return Scenario{}, fmt.Errorf("setup %d: %w", i, err)
		}
		s.Setup = append(s.Setup, p)
	}
	for i, yp := range ys.Moves {
		p, err := yp.toPlacement()
		if err != nil {
			return Scenario{}, fmt.Errorf("move %d: %w", i, err)
		}
		s.Moves = append(s.Moves, p)
	}
	if s.Probe, err = ys.Probe.toPlacement(); err != nil {
		return Scenario{}, fmt.Errorf("probe: %w", err)
	}
	return s, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
