package hex

import "fmt"

// TileType is one of the four tile shapes, named by how many sharp
// (adjacent-edge) connections it has.
type TileType uint8

const (
	NoSharps TileType = iota
	OneSharp
	TwoSharps
	ThreeSharps
)

// NumTileTypes is the number of tile shapes.
const NumTileTypes = 4

// TileTypes lists all shapes in sharps order.
var TileTypes = [NumTileTypes]TileType{NoSharps, OneSharp, TwoSharps, ThreeSharps}

// exitTables is the unrotated entrance -> exit permutation of each shape.
// Every table is an involution without fixed points.
var exitTables = [NumTileTypes][NumDirections]Direction{
	NoSharps:    {NorthWest, East, SouthWest, SouthEast, West, NorthEast},
	OneSharp:    {SouthEast, NorthEast, East, West, NorthWest, SouthWest},
	TwoSharps:   {SouthEast, East, NorthEast, NorthWest, West, SouthWest},
	ThreeSharps: {SouthEast, NorthWest, West, East, NorthEast, SouthWest},
}

// TileTypeFromSharps returns the shape with n sharps.
func TileTypeFromSharps(n int) (TileType, error) {
	if n < 0 || n >= NumTileTypes {
		return 0, fmt.Errorf("hex: invalid number of sharps %d", n)
	}
	return TileType(n), nil
}

// Sharps returns the number of sharp connections on the shape.
func (t TileType) Sharps() int {
	return int(t)
}

// String returns the short name used in logs and dumps.
func (t TileType) String() string {
	return fmt.Sprintf("T%d", uint8(t))
}

// ExitFromEntrance follows the unrotated shape from entrance to exit.
func (t TileType) ExitFromEntrance(entrance Direction) Direction {
	return exitTables[t%NumTileTypes][entrance%NumDirections]
}

// flowOrder lists entrances so that a straight connection, which always
// runs West-East on an unrotated tile, is reported last.
var flowOrder = [NumDirections]Direction{SouthWest, NorthWest, NorthEast, SouthEast, West, East}

// Connections returns the three unordered connections of the unrotated shape.
func (t TileType) Connections() [3]Connection {
	var out [3]Connection
	i := 0
	for _, entrance := range flowOrder {
		exit := t.ExitFromEntrance(entrance)
		if entrance < exit {
			out[i] = Connection{A: entrance, B: exit}
			i++
		}
	}
	return out
}

// Connection is an unordered pair of directions joined inside one hex.
// A is always the smaller direction.
type Connection struct {
	A Direction
	B Direction
}

// Connect returns the normalized connection between a and b.
func Connect(a, b Direction) Connection {
	if b < a {
		a, b = b, a
	}
	return Connection{A: a, B: b}
}

// Rotate turns both ends of the connection and renormalizes.
func (c Connection) Rotate(r Rotation) Connection {
	return Connect(c.A.Rotate(r), c.B.Rotate(r))
}

// String returns the connection as "A-B".
func (c Connection) String() string {
	return c.A.String() + "-" + c.B.String()
}

// PlacedTile is a shape on the board with its orientation and the cached
// owner of the flow crossing each of its edges.
type PlacedTile struct {
	Type     TileType
	Rotation Rotation

	// flow holds player+1 per edge, 0 meaning no flow. It is derived state
	// rebuilt by the board after each change.
	flow [NumDirections]uint8
}

// NewPlacedTile returns a tile with an empty flow cache.
func NewPlacedTile(t TileType, r Rotation) PlacedTile {
	return PlacedTile{Type: t, Rotation: r % 6}
}

// ExitFromEntrance follows the rotated tile from entrance to exit.
func (p PlacedTile) ExitFromEntrance(entrance Direction) Direction {
	return p.Type.ExitFromEntrance(entrance.Rotate(p.Rotation.Reversed())).Rotate(p.Rotation)
}

// Connections returns the three rotated connections of the tile.
func (p PlacedTile) Connections() [3]Connection {
	base := p.Type.Connections()
	var out [3]Connection
	for i, c := range base {
		out[i] = c.Rotate(p.Rotation)
	}
	return out
}

// Flow returns the player whose flow crosses edge d, if any.
func (p PlacedTile) Flow(d Direction) (player int, ok bool) {
	v := p.flow[d%NumDirections]
	if v == 0 {
		return 0, false
	}
	return int(v) - 1, true
}

// SetFlow records player as the owner of the flow crossing edge d.
func (p *PlacedTile) SetFlow(d Direction, player int) {
	p.flow[d%NumDirections] = uint8(player + 1)
}

// ClearFlows forgets every cached flow.
func (p *PlacedTile) ClearFlows() {
	p.flow = [NumDirections]uint8{}
}

// SameConfiguration reports whether two tiles have equal shape and rotation,
// ignoring cached flows.
func (p PlacedTile) SameConfiguration(other PlacedTile) bool {
	return p.Type == other.Type && p.Rotation == other.Rotation
}
