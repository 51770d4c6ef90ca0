// Package grid: core types and sentinel errors.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates non-positive rows or cols.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be > 0")
	// ErrOutOfBounds indicates a cell coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBadLength indicates a flat vector whose length differs from rows*cols.
	ErrBadLength = errors.New("grid: flat vector length must equal rows*cols")
	// ErrBadRowString indicates a malformed "0101" row string.
	ErrBadRowString = errors.New("grid: row string must be cols characters of '0' or '1'")
)

// Cell addresses one board position. Cells carry no identity beyond
// their coordinate; they are passed and compared by value.
type Cell struct {
	Row, Col int
}

// Index returns the row-major flat index of the cell on a board with
// the given column count: Row*cols + Col.
func (c Cell) Index(cols int) int {
	return c.Row*cols + c.Col
}

// CellAt converts a row-major flat index back into a Cell.
func CellAt(idx, cols int) Cell {
	return Cell{Row: idx / cols, Col: idx % cols}
}
