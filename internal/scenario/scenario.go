// Package scenario describes board positions and a single probe placement
// together with the verdict the engine is expected to reach. Scenarios are
// stored as YAML and double as regression fixtures.
package scenario

import (
	"errors"
	"fmt"
	"slices"

	"github.com/anicolao/quortextt/internal/game"
	"github.com/anicolao/quortextt/internal/hex"
	"github.com/anicolao/quortextt/internal/legality"
)

// Verdict is the expected result of the probe.
type Verdict uint8

const (
	Legal Verdict = iota
	Illegal
	Win
)

var verdictNames = [...]string{Legal: "legal", Illegal: "illegal", Win: "win"}

func (v Verdict) String() string {
	if int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return fmt.Sprintf("Verdict(%d)", uint8(v))
}

// ParseVerdict accepts the names produced by Verdict.String.
func ParseVerdict(s string) (Verdict, error) {
	for v, name := range verdictNames {
		if name == s {
			return Verdict(v), nil
		}
	}
	return 0, fmt.Errorf("unknown verdict %q", s)
}

// Placement is one tile put on the board by Player.
type Placement struct {
	Player   int
	Tile     hex.TileType
	Pos      hex.Pos
	Rotation hex.Rotation
}

// Fill covers every empty cell not listed in Except with the same tile.
type Fill struct {
	Tile     hex.TileType
	Rotation hex.Rotation
	Except   []hex.Pos
}

// Scenario is a position and the probe placement tested against it.
//
// Fill and Setup are placed without any rule checks. Moves are played as
// ordinary turns and must each be accepted. Current, when not -1, forces
// whose turn it is before the probe; otherwise the probe's player moves.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Players     int
	Fill        *Fill
	Setup       []Placement
	Moves       []Placement
	Current     int
	Probe       Placement
	Expect      Verdict
	Blocked     int
	Winners     []int
	FilePath    string
}

// Result is what happened to the probe.
type Result struct {
	Game    *game.Game
	Err     error
	Blocked int
	Winners []int
}

// Verdict classifies the result.
func (r Result) Verdict() Verdict {
	switch {
	case r.Err != nil:
		return Illegal
	case len(r.Winners) > 0:
		return Win
	}
	return Legal
}

// Build returns the position before the probe.
func (s *Scenario) Build() (*game.Game, error) {
	g, err := game.New(game.Settings{Players: s.Players})
	if err != nil {
		return nil, err
	}

	if s.Fill != nil {
		for _, pos := range g.Board().EmptyPositions() {
			if slices.Contains(s.Fill.Except, pos) {
				continue
			}
			if g, err = g.WithTilePlaced(s.Fill.Tile, pos, s.Fill.Rotation); err != nil {
				return nil, fmt.Errorf("fill: %w", err)
			}
		}
	}
	for i, p := range s.Setup {
		if g, err = g.WithTilePlaced(p.Tile, p.Pos, p.Rotation); err != nil {
			return nil, fmt.Errorf("setup %d: %w", i, err)
		}
	}
	for i, p := range s.Moves {
		if err := g.ApplyAction(game.PlaceTile(p.Player, p.Tile, p.Pos, p.Rotation)); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return g, nil
}

// Run builds the position and applies the probe. A rejected probe is
// reported in Result.Err, not as an error.
func (s *Scenario) Run() (Result, error) {
	g, err := s.Build()
	if err != nil {
		return Result{}, err
	}
	if s.Current >= 0 {
		g.SetCurrentPlayerForTesting(s.Current)
	} else {
		g.SetCurrentPlayerForTesting(s.Probe.Player)
	}

	res := Result{Game: g, Blocked: -1}
	res.Err = g.ApplyAction(game.PlaceTile(s.Probe.Player, s.Probe.Tile, s.Probe.Pos, s.Probe.Rotation))

	var blocks *legality.BlocksPlayerError
	if errors.As(res.Err, &blocks) {
		res.Blocked = blocks.Player
	}
	if outcome, over := g.Outcome(); over {
		res.Winners = outcome.Winners
	}
	return res, nil
}

// Verify runs the scenario and reports any difference from its expectations.
func (s *Scenario) Verify() error {
	res, err := s.Run()
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	return s.Compare(res)
}

// Compare reports any difference between res and the scenario's expectations.
func (s *Scenario) Compare(res Result) error {
	if got := res.Verdict(); got != s.Expect {
		return fmt.Errorf("scenario %s: expected %s, got %s (err: %v)", s.ID, s.Expect, got, res.Err)
	}
	if s.Expect == Illegal && s.Blocked >= 0 && res.Blocked != s.Blocked {
		return fmt.Errorf("scenario %s: expected player %d blocked, got %d", s.ID, s.Blocked, res.Blocked)
	}
	if s.Expect == Win && len(s.Winners) > 0 && !slices.Equal(s.Winners, res.Winners) {
		return fmt.Errorf("scenario %s: expected winners %v, got %v", s.ID, s.Winners, res.Winners)
	}
	return nil
}
