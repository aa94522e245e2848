package board

import (
	"reflect"
	"strings"
	"testing"

	"github.com/anicolao/quortextt/internal/hex"
)

func newTwoPlayer(t *testing.T) *Board {
	t.Helper()
	b, err := New(2)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return b
}

// placeColumn fills column 3 with straight tiles running south to north,
// skipping the listed rows.
func placeColumn(t *testing.T, b *Board, skip ...int) {
	t.Helper()
	straight := hex.NewPlacedTile(hex.NoSharps, 1)
	for row := 0; row < Size; row++ {
		skipped := false
		for _, s := range skip {
			if s == row {
				skipped = true
			}
		}
		if skipped {
			continue
		}
		if err := b.Place(hex.P(row, 3), straight); err != nil {
			t.Fatalf("Place() failed: %v", err)
		}
	}
}

func TestNewRejectsPlayerCounts(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		if _, err := New(n); err == nil {
			t.Errorf("New(%d) should fail", n)
		}
	}
}

func TestBoardShape(t *testing.T) {
	b := newTwoPlayer(t)

	if got := len(b.Positions()); got != 37 {
		t.Fatalf("expected 37 playable cells, got %d", got)
	}

	testCases := []struct {
		pos  hex.Pos
		kind Kind
	}{
		{hex.P(3, 3), Empty},
		{hex.P(0, 0), Empty},
		{hex.P(6, 6), Empty},
		{hex.P(0, 6), NotOnBoard},
		{hex.P(6, 0), NotOnBoard},
		{hex.P(2, 6), NotOnBoard},
		{hex.P(4, 0), NotOnBoard},
		{hex.P(-1, 3), NotOnBoard},
		{hex.P(3, 7), NotOnBoard},
	}
	for _, tc := range testCases {
		if got := b.Tile(tc.pos).Kind; got != tc.kind {
			t.Errorf("Tile(%v).Kind = %d, expected %d", tc.pos, got, tc.kind)
		}
	}
}

func TestNeighbor(t *testing.T) {
	b := newTwoPlayer(t)

	if n, ok := b.Neighbor(hex.P(3, 3), hex.NorthEast); !ok || n != hex.P(4, 4) {
		t.Errorf("Neighbor((3,3), NE) = %v, %v", n, ok)
	}
	if _, ok := b.Neighbor(hex.P(0, 0), hex.SouthWest); ok {
		t.Error("expected no neighbor beyond the south edge")
	}
	if _, ok := b.Neighbor(hex.P(3, 0), hex.NorthWest); ok {
		t.Error("expected no neighbor in a clipped corner")
	}
}

func TestEdgesCoverEveryBorderEdgeOnce(t *testing.T) {
	b := newTwoPlayer(t)

	seen := make(map[Slot]int)
	for side := hex.Rotation(0); side < 6; side++ {
		for _, slot := range b.EdgesOnBoardEdge(side) {
			if !b.OnBoard(slot.Pos) {
				t.Errorf("side %d: slot %v is not on the board", side, slot)
			}
			if !b.IsBorderEdge(slot.Pos, slot.Dir) {
				t.Errorf("side %d: slot %v does not face outside", side, slot)
			}
			seen[slot]++
		}
	}

	if len(seen) != 42 {
		t.Errorf("expected 42 distinct border slots, got %d", len(seen))
	}
	for slot, n := range seen {
		if n != 1 {
			t.Errorf("slot %v listed %d times", slot, n)
		}
	}
}

func TestEdgesOnOppositeSides(t *testing.T) {
	b := newTwoPlayer(t)

	south := b.EdgesOnBoardEdge(0)
	north := b.EdgesOnBoardEdge(3)
	for i := range south {
		want := Slot{
			Pos: hex.P(Size-1-south[i].Pos.Row, Size-1-south[i].Pos.Col),
			Dir: south[i].Dir.Reversed(),
		}
		if north[i] != want {
			t.Errorf("slot %d: got %v, expected %v", i, north[i], want)
		}
	}
}

func TestSides(t *testing.T) {
	b, err := New(3)
	if err != nil {
		t.Fatalf("New(3) failed: %v", err)
	}

	for player, side := range []hex.Rotation{0, 2, 4} {
		got, ok := b.StartSide(player)
		if !ok || got != side {
			t.Errorf("StartSide(%d) = %d, %v; expected %d", player, got, ok, side)
		}
		goal, _ := b.GoalSide(player)
		if goal != side.Add(3) {
			t.Errorf("GoalSide(%d) = %d", player, goal)
		}
	}
	if _, ok := b.PlayerOnSide(1); ok {
		t.Error("side 1 should be unowned")
	}
	if !reflect.DeepEqual(b.Players(), []int{0, 1, 2}) {
		t.Errorf("Players() = %v", b.Players())
	}
}

func TestPlaceOffBoard(t *testing.T) {
	b := newTwoPlayer(t)
	if err := b.Place(hex.P(0, 6), hex.NewPlacedTile(hex.OneSharp, 0)); err == nil {
		t.Error("expected an error placing in a clipped corner")
	}
	if err := b.Place(hex.P(9, 9), hex.NewPlacedTile(hex.OneSharp, 0)); err == nil {
		t.Error("expected an error placing outside the array")
	}
}

func TestFloodfillFollowsTiles(t *testing.T) {
	b := newTwoPlayer(t)
	placeColumn(t, b, 2, 3, 4, 5, 6)
	b.RecomputeFlows()

	for _, pos := range []hex.Pos{hex.P(0, 3), hex.P(1, 3)} {
		for _, d := range []hex.Direction{hex.SouthEast, hex.NorthWest} {
			if p, ok := b.FlowAt(pos, d); !ok || p != 0 {
				t.Errorf("FlowAt(%v, %v) = %d, %v; expected player 0", pos, d, p, ok)
			}
		}
	}
	// The flow stops at the empty cell above.
	if _, ok := b.Outcome(); ok {
		t.Error("no one should have won yet")
	}
}

func TestVictoryAcrossBoard(t *testing.T) {
	b := newTwoPlayer(t)
	placeColumn(t, b)
	b.RecomputeFlows()

	out, ok := b.Outcome()
	if !ok {
		t.Fatalf("expected a victory\n%s", b)
	}
	if !reflect.DeepEqual(out.Winners, []int{0}) {
		t.Errorf("Winners = %v, expected [0]", out.Winners)
	}
}

func TestVictoryIncludesTeammateOnGoalSide(t *testing.T) {
	b := NewWithSides([6]int{0, NoPlayer, NoPlayer, 1, NoPlayer, NoPlayer})
	placeColumn(t, b)
	b.RecomputeFlows()

	out, ok := b.Outcome()
	if !ok || !reflect.DeepEqual(out.Winners, []int{0, 1}) {
		t.Errorf("Outcome() = %v, %v; expected [0 1]", out, ok)
	}
}

func TestOutcomeIsSticky(t *testing.T) {
	b := newTwoPlayer(t)
	placeColumn(t, b)
	b.RecomputeFlows()

	// Breaking the column does not undo the recorded victory.
	if err := b.Place(hex.P(3, 3), hex.NewPlacedTile(hex.ThreeSharps, 0)); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	b.RecomputeFlows()
	if _, ok := b.Outcome(); !ok {
		t.Error("outcome was cleared")
	}
}

func TestRecomputeFlowsIsIdempotent(t *testing.T) {
	b := newTwoPlayer(t)
	placeColumn(t, b, 4)
	if err := b.Place(hex.P(2, 1), hex.NewPlacedTile(hex.TwoSharps, 4)); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	b.RecomputeFlows()
	first := b.Clone()
	b.RecomputeFlows()

	if !reflect.DeepEqual(first, b) {
		t.Error("second RecomputeFlows changed the board")
	}
}

func TestRecomputeFlowsClearsStaleFlows(t *testing.T) {
	b := newTwoPlayer(t)
	tile := hex.NewPlacedTile(hex.NoSharps, 1)
	tile.SetFlow(hex.East, 1)
	if err := b.Place(hex.P(3, 3), tile); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	b.RecomputeFlows()

	if _, ok := b.FlowAt(hex.P(3, 3), hex.East); ok {
		t.Error("a tile not connected to any side should carry no flow")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := newTwoPlayer(t)
	c := b.Clone()
	if err := c.Place(hex.P(3, 3), hex.NewPlacedTile(hex.OneSharp, 0)); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if !b.Tile(hex.P(3, 3)).IsEmpty() {
		t.Error("placing on a clone changed the original")
	}
}

func TestString(t *testing.T) {
	b := newTwoPlayer(t)
	if err := b.Place(hex.P(3, 3), hex.NewPlacedTile(hex.TwoSharps, 0)); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	s := b.String()

	if lines := strings.Count(s, "\n"); lines != Size {
		t.Errorf("expected %d lines, got %d", Size, lines)
	}
	if dots := strings.Count(s, "."); dots != 36 {
		t.Errorf("expected 36 empty cells, got %d", dots)
	}
	if !strings.Contains(s, "2") {
		t.Errorf("placed tile missing from dump:\n%s", s)
	}
}
