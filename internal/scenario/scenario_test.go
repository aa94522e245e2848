package scenario

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anicolao/quortextt/internal/board"
	"github.com/anicolao/quortextt/internal/hex"
)

// getTestdataPath returns path to testdata/scenarios.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "scenarios")
}

func loadAll(t *testing.T) []Scenario {
	t.Helper()
	all, err := NewLoader(getTestdataPath()).LoadAll()
	require.NoError(t, err)
	return all
}

func TestLoadAllSorted(t *testing.T) {
	all := loadAll(t)
	require.Len(t, all, 7)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
	for _, s := range all {
		assert.NotEmpty(t, s.FilePath)
		assert.NotEmpty(t, s.Name)
	}
}

func TestFixtures(t *testing.T) {
	for _, s := range loadAll(t) {
		t.Run(s.ID, func(t *testing.T) {
			assert.NoError(t, s.Verify())
		})
	}
}

func TestWallScenarioDetails(t *testing.T) {
	s, err := NewLoader(getTestdataPath()).LoadByID("a_wall")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Players)
	assert.Len(t, s.Setup, 6)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, Placement{Player: 1, Tile: hex.OneSharp, Pos: hex.P(3, 3)}, s.Probe)

	res, err := s.Run()
	require.NoError(t, err)
	assert.Error(t, res.Err)
	assert.Equal(t, 0, res.Blocked)
	assert.Equal(t, Illegal, res.Verdict())
	assert.True(t, res.Game.Tile(hex.P(3, 3)).IsEmpty())
}

func TestFillLeavesExceptions(t *testing.T) {
	s, err := NewLoader(getTestdataPath()).LoadByID("c_boxed_center")
	require.NoError(t, err)
	require.NotNil(t, s.Fill)
	assert.Len(t, s.Fill.Except, 9)

	g, err := s.Build()
	require.NoError(t, err)
	empty := g.Board().EmptyPositions()
	assert.ElementsMatch(t, []hex.Pos{
		hex.P(2, 2), hex.P(2, 4), hex.P(3, 3), hex.P(3, 4), hex.P(4, 2), hex.P(4, 4),
	}, empty)
	assert.Equal(t, board.Placed, g.Tile(hex.P(0, 0)).Kind)
}

func TestOpeningMovesAreTurns(t *testing.T) {
	s, err := NewLoader(getTestdataPath()).LoadByID("b_opening")
	require.NoError(t, err)
	g, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, g.CurrentPlayer())
	assert.Len(t, g.History(), 9)
}

func TestLoadByIDMissing(t *testing.T) {
	_, err := NewLoader(getTestdataPath()).LoadByID("nope")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no id", "expect: legal\nprobe: {tile: 0, row: 3, col: 3}\n"},
		{"bad verdict", "id: x\nexpect: maybe\nprobe: {tile: 0, row: 3, col: 3}\n"},
		{"bad probe tile", "id: x\nexpect: legal\nprobe: {tile: 4, row: 3, col: 3}\n"},
		{"bad setup tile", "id: x\nexpect: legal\nsetup:\n  - {tile: -1, row: 0, col: 0}\nprobe: {tile: 0, row: 3, col: 3}\n"},
		{"bad fill tile", "id: x\nexpect: legal\nfill: {tile: 7}\nprobe: {tile: 0, row: 3, col: 3}\n"},
		{"not yaml", "id: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("id: x\nexpect: win\nprobe: {player: 1, tile: 2, row: 3, col: 3, rotation: 8}\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Players)
	assert.Equal(t, -1, s.Current)
	assert.Equal(t, -1, s.Blocked)
	assert.Equal(t, Win, s.Expect)
	assert.Equal(t, hex.Rotation(2), s.Probe.Rotation)
	assert.Equal(t, hex.TwoSharps, s.Probe.Tile)
}

func TestVerifyReportsMismatch(t *testing.T) {
	s, err := NewLoader(getTestdataPath()).LoadByID("a_wall")
	require.NoError(t, err)
	s.Expect = Legal
	assert.Error(t, s.Verify())

	s.Expect = Illegal
	s.Blocked = 1
	assert.Error(t, s.Verify())
}
