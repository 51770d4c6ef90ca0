package grid

import (
	"github.com/katalvlaran/flipgrid/gf2"
)

// Grid is an R×C board of binary lights. Dimensions are fixed at
// construction; contents are mutated in place by a single logical owner.
// The zero value is unusable; construct with New or FromBitVector.
type Grid struct {
	rows, cols int
	bits       *gf2.Vector
}

// New returns an all-unlit rows×cols board.
// Returns ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(rows×cols/64).
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	bits, err := gf2.NewVector(rows * cols)
	if err != nil {
		return nil, ErrInvalidDimensions
	}

	return &Grid{rows: rows, cols: cols, bits: bits}, nil
}

// Rows returns the board height. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the board width. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// inBounds reports whether c lies on the board.
func (g *Grid) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Lit reports whether the light at c is on.
// Returns ErrOutOfBounds for coordinates outside the board.
// Complexity: O(1).
func (g *Grid) Lit(c Cell) (bool, error) {
	if !g.inBounds(c) {
		return false, ErrOutOfBounds
	}

	return g.bits.Bit(c.Index(g.cols))
}

// Toggle flips the light at c.
// Returns ErrOutOfBounds for coordinates outside the board.
// Complexity: O(1).
func (g *Grid) Toggle(c Cell) error {
	if !g.inBounds(c) {
		return ErrOutOfBounds
	}

	return g.bits.FlipBit(c.Index(g.cols))
}

// Set turns the light at c on regardless of its previous state.
// Returns ErrOutOfBounds for coordinates outside the board.
// Complexity: O(1).
func (g *Grid) Set(c Cell) error {
	if !g.inBounds(c) {
		return ErrOutOfBounds
	}

	return g.bits.SetBit(c.Index(g.cols), true)
}

// Clear turns the light at c off regardless of its previous state.
// Returns ErrOutOfBounds for coordinates outside the board.
// Complexity: O(1).
func (g *Grid) Clear(c Cell) error {
	if !g.inBounds(c) {
		return ErrOutOfBounds
	}

	return g.bits.SetBit(c.Index(g.cols), false)
}

// ApplyPresses toggles every cell in the press-set. Order is
// irrelevant and duplicates cancel pairwise, consistent with GF(2)
// addition. Validation happens before any mutation, so an out-of-bounds
// cell leaves the board untouched.
// Complexity: O(len(presses)).
func (g *Grid) ApplyPresses(presses []Cell) error {
	for _, c := range presses {
		if !g.inBounds(c) {
			return ErrOutOfBounds
		}
	}
	for _, c := range presses {
		_ = g.bits.FlipBit(c.Index(g.cols)) // bounds checked above
	}

	return nil
}

// ApplyPressVector XORs a flat press bit-vector into the board: bit i
// set means "toggle cell i".
// Returns ErrBadLength if len(v) != rows*cols.
// Complexity: O(rows×cols/64).
func (g *Grid) ApplyPressVector(v *gf2.Vector) error {
	if v == nil || v.Len() != g.rows*g.cols {
		return ErrBadLength
	}

	return g.bits.Xor(v)
}

// AllUnlit reports whether every light is off (the solved state).
// Complexity: O(rows×cols/64).
func (g *Grid) AllUnlit() bool {
	return g.bits.IsZero()
}

// AllLit reports whether every light is on.
// Complexity: O(rows×cols/64).
func (g *Grid) AllLit() bool {
	return g.bits.Weight() == g.rows*g.cols
}

// Fill turns every light on. Complexity: O(rows×cols).
func (g *Grid) Fill() {
	for i := 0; i < g.rows*g.cols; i++ {
		_ = g.bits.SetBit(i, true) // index always in range
	}
}

// ClearAll turns every light off. Complexity: O(rows×cols).
func (g *Grid) ClearAll() {
	for i := 0; i < g.rows*g.cols; i++ {
		_ = g.bits.SetBit(i, false) // index always in range
	}
}

// LitCells returns the coordinates of all lit cells in row-major order.
// Complexity: O(rows×cols).
func (g *Grid) LitCells() []Cell {
	ones := g.bits.Ones()
	cells := make([]Cell, len(ones))
	for i, idx := range ones {
		cells[i] = CellAt(idx, g.cols)
	}

	return cells
}

// BitVector returns a copy of the board as a flat row-major bit vector.
// Complexity: O(rows×cols/64).
func (g *Grid) BitVector() *gf2.Vector {
	return g.bits.Clone()
}

// FromBitVector reconstructs a board from a flat row-major bit vector.
// Round-trip identity with BitVector is guaranteed.
// Returns ErrInvalidDimensions on non-positive dimensions and
// ErrBadLength if len(v) != rows*cols.
// Complexity: O(rows×cols/64).
func FromBitVector(v *gf2.Vector, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if v == nil || v.Len() != rows*cols {
		return nil, ErrBadLength
	}

	return &Grid{rows: rows, cols: cols, bits: v.Clone()}, nil
}

// Clone returns a deep copy of the board.
// Complexity: O(rows×cols/64).
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, bits: g.bits.Clone()}
}

// Equal reports whether two boards share dimensions and contents.
// Complexity: O(rows×cols/64).
func (g *Grid) Equal(other *Grid) bool {
	return other != nil && g.rows == other.rows && g.cols == other.cols &&
		g.bits.Equal(other.bits)
}
