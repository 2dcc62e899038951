package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrMalformed indicates rows of differing lengths.
	ErrMalformed = errors.New("maze: all rows must have the same length")
	// ErrMissingMarker indicates the grid has no start or no end cell.
	ErrMissingMarker = errors.New("maze: missing start or end marker")
)

// MalformedError reports the first row whose length differs from the first row.
type MalformedError struct {
	Row  int // zero-based row index
	Want int // expected length (Cols)
	Got  int // actual length
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("maze: row %d has length %d, want %d", e.Row, e.Got, e.Want)
}

// Is lets errors.Is(err, ErrMalformed) match.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

// MissingMarkerError reports which marker cell was not found.
type MissingMarkerError struct {
	Marker rune
}

func (e *MissingMarkerError) Error() string {
	return fmt.Sprintf("maze: no %q cell found", e.Marker)
}

// Is lets errors.Is(err, ErrMissingMarker) match.
func (e *MissingMarkerError) Is(target error) bool { return target == ErrMissingMarker }
