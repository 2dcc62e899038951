// Package maze treats a rectangular character grid as a maze that can be
// searched for a path between a start and an end cell.
//
// What:
//
//   - Grid wraps a rectangular [][]rune of cells with its Start and End.
//   - Parse and Load read a maze from text, one row per line.
//   - Coordinate addresses a cell by (Row, Col) and yields its four
//     orthogonal neighbors in the fixed order up, down, left, right.
//
// Cells:
//
//   - '#' Wall: never traversable.
//   - '.' Open: traversable floor. Any unknown character is also floor.
//   - 'S' Start and 'E' End: the first occurrence of each (row-major) wins.
//   - '*' PathMark: written by renderers onto a copy of the grid.
//
// Complexity:
//
//   - Parse / NewGrid: O(Rows×Cols) time and memory.
//   - InBounds, IsSafe, Index, Coordinate: O(1).
//
// Widths are measured in characters (runes), so a multi-byte floor
// character occupies one column.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or the first row is empty.
//   - ErrMalformed (*MalformedError): a row length differs from the first row.
//   - ErrMissingMarker (*MissingMarkerError): no 'S' or no 'E' cell.
//   - file errors from Load are wrapped and keep fs.ErrNotExist etc.
package maze
