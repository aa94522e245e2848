// Package hex provides the hexagonal geometry and tile algebra of the board.
// Everything here is pure and total: no function returns an error or panics
// on values built through the exported constructors.
package hex

import "fmt"

// Rotation is a clockwise turn in 60° steps, always in 0..5.
// It orients both tiles and board sides.
type Rotation uint8

// NewRotation normalizes any integer into a Rotation.
func NewRotation(n int) Rotation {
	n %= 6
	if n < 0 {
		n += 6
	}
	return Rotation(n)
}

// Add returns r followed by other.
func (r Rotation) Add(other Rotation) Rotation {
	return Rotation((uint8(r) + uint8(other)) % 6)
}

// Reversed returns the rotation that undoes r.
func (r Rotation) Reversed() Rotation {
	return Rotation((6 - uint8(r)) % 6)
}

// Direction is one of the six edges of a hex.
type Direction uint8

const (
	SouthWest Direction = iota
	West
	NorthWest
	NorthEast
	East
	SouthEast
)

// NumDirections is the number of hex edges.
const NumDirections = 6

// Directions lists all directions in index order.
var Directions = [NumDirections]Direction{SouthWest, West, NorthWest, NorthEast, East, SouthEast}

// DirectionFromRotation maps rotation n to the direction with index n.
func DirectionFromRotation(r Rotation) Direction {
	return Direction(r % 6)
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Rotate turns the direction clockwise by r.
func (d Direction) Rotate(r Rotation) Direction {
	return Direction((uint8(d) + uint8(r)) % 6)
}

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	return d.Rotate(3)
}

// Delta returns the (row, col) offset to the neighbor across this edge.
// Rows grow towards the north.
func (d Direction) Delta() Vec {
	switch d {
	case SouthWest:
		return Vec{Row: -1, Col: -1}
	case West:
		return Vec{Row: 0, Col: -1}
	case NorthWest:
		return Vec{Row: 1, Col: 0}
	case NorthEast:
		return Vec{Row: 1, Col: 1}
	case East:
		return Vec{Row: 0, Col: 1}
	case SouthEast:
		return Vec{Row: -1, Col: 0}
	default:
		return Vec{}
	}
}

// DirectionTowards returns the direction whose delta equals v, if any.
func DirectionTowards(v Vec) (Direction, bool) {
	for _, d := range Directions {
		if d.Delta() == v {
			return d, true
		}
	}
	return 0, false
}
