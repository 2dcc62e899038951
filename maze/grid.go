package maze

import (
	"strings"
	"unicode/utf8"
)

// NewGrid builds a Grid from text rows. Cols is the character count of the
// first row and every other row must match it. The rows are copied.
// Returns ErrEmptyGrid, a *MalformedError or a *MissingMarkerError.
// Complexity: O(Rows×Cols) time and memory.
func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), utf8.RuneCountInString(lines[0])

	g := &Grid{Rows: rows, Cols: cols, Cells: make([][]rune, rows)}
	var haveStart, haveEnd bool
	for r, line := range lines {
		cells := []rune(line)
		if len(cells) != cols {
			return nil, &MalformedError{Row: r, Want: cols, Got: len(cells)}
		}
		g.Cells[r] = cells
		for c, v := range cells {
			switch v {
			case Start:
				if !haveStart {
					g.Start, haveStart = Coordinate{r, c}, true
				}
			case End:
				if !haveEnd {
					g.End, haveEnd = Coordinate{r, c}, true
				}
			}
		}
	}
	if !haveStart {
		return nil, &MissingMarkerError{Marker: Start}
	}
	if !haveEnd {
		return nil, &MissingMarkerError{Marker: End}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// IsSafe reports whether c is in bounds and not a wall.
func (g *Grid) IsSafe(c Coordinate) bool {
	return g.InBounds(c) && g.Cells[c.Row][c.Col] != Wall
}

// At returns the cell character at c. c must be in bounds.
func (g *Grid) At(c Coordinate) rune {
	return g.Cells[c.Row][c.Col]
}

// Set overwrites the cell at c. c must be in bounds.
func (g *Grid) Set(c Coordinate, v rune) {
	g.Cells[c.Row][c.Col] = v
}

// Index maps c to a row-major index: Row*Cols + Col.
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := *g
	out.Cells = make([][]rune, g.Rows)
	for r := range g.Cells {
		out.Cells[r] = make([]rune, g.Cols)
		copy(out.Cells[r], g.Cells[r])
	}

	return &out
}

// Lines returns the rows as strings.
func (g *Grid) Lines() []string {
	out := make([]string, g.Rows)
	for r, row := range g.Cells {
		out[r] = string(row)
	}

	return out
}

// String renders the grid one row per line, each terminated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for _, row := range g.Cells {
		for _, v := range row {
			sb.WriteRune(v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
