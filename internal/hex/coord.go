package hex

import "fmt"

// Pos is a cell position on the 7x7 board array.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p offset by v.
func (p Pos) Add(v Vec) Pos {
	return Pos{Row: p.Row + v.Row, Col: p.Col + v.Col}
}

// Sub returns the offset from other to p.
func (p Pos) Sub(other Pos) Vec {
	return Vec{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

// Step returns the neighbor position across edge d.
func (p Pos) Step(d Direction) Pos {
	return p.Add(d.Delta())
}

// Less orders positions row-major.
func (p Pos) Less(other Pos) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Vec is an offset between two positions.
type Vec struct {
	Row int
	Col int
}

// rotationMatrices holds (rr, rc, cr, cc) for each rotation so that
// row' = rr*row + rc*col and col' = cr*row + cc*col.
var rotationMatrices = [6][4]int{
	{1, 0, 0, 1},
	{1, -1, 1, 0},
	{0, -1, 1, -1},
	{-1, 0, 0, -1},
	{-1, 1, -1, 0},
	{0, 1, -1, 1},
}

// Rotate turns the offset clockwise by r around the origin.
func (v Vec) Rotate(r Rotation) Vec {
	m := rotationMatrices[r%6]
	return Vec{
		Row: m[0]*v.Row + m[1]*v.Col,
		Col: m[2]*v.Row + m[3]*v.Col,
	}
}

// Neg returns the opposite offset.
func (v Vec) Neg() Vec {
	return Vec{Row: -v.Row, Col: -v.Col}
}
