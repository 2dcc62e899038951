package maze

import "strconv"

// Cell values understood by the maze. Unknown characters count as Open.
const (
	Wall     rune = '#'
	Open     rune = '.'
	Start    rune = 'S'
	End      rune = 'E'
	PathMark rune = '*'
)

// Direction is a unit step on the grid.
type Direction struct {
	DRow, DCol int
}

var (
	Up    = Direction{-1, 0}
	Down  = Direction{1, 0}
	Left  = Direction{0, -1}
	Right = Direction{0, 1}
)

// Directions is the neighbor priority order: up, down, left, right.
// Searches depend on it for reproducible paths.
var Directions = [4]Direction{Up, Down, Left, Right}

// Coordinate addresses one cell by row and column.
type Coordinate struct {
	Row, Col int
}

// Step returns c moved one cell in direction d. The result may be out of bounds.
func (c Coordinate) Step(d Direction) Coordinate {
	return Coordinate{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Neighbors returns the four orthogonal neighbors in Directions order.
func (c Coordinate) Neighbors() [4]Coordinate {
	var out [4]Coordinate
	for i, d := range Directions {
		out[i] = c.Step(d)
	}

	return out
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Coordinate) Adjacent(o Coordinate) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

func (c Coordinate) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Grid is a rectangular maze. Cells[r][c] holds the character at (r, c);
// Cols counts characters, not bytes.
// Start and End are the first 'S' and 'E' found in row-major order.
// A Grid returned by NewGrid is safe to share; callers that need to
// write cells should work on a Clone.
type Grid struct {
	Rows, Cols int
	Cells      [][]rune
	Start, End Coordinate
}
