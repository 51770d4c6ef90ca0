// Package solve: options, result type and sentinel errors.
package solve

import (
	"errors"

	"github.com/katalvlaran/flipgrid/gf2"
	"github.com/katalvlaran/flipgrid/grid"
)

// Sentinel errors for the solver.
var (
	// ErrDimensionMismatch indicates b does not match A's row count.
	ErrDimensionMismatch = errors.New("solve: matrix/vector dimension mismatch")
	// ErrUnsolvable indicates an inconsistent system: the target board
	// is unreachable under the given toggle rule.
	ErrUnsolvable = errors.New("solve: no press-set solves this board")
	// ErrSearchSpaceTooLarge indicates the free-variable count exceeds
	// the configured enumeration bound.
	ErrSearchSpaceTooLarge = errors.New("solve: solution space exceeds enumeration bound")
	// ErrBadOptions indicates a non-positive MaxCandidates.
	ErrBadOptions = errors.New("solve: MaxCandidates must be > 0")
)

// DefaultMaxCandidates bounds free-variable enumeration at 2^20
// assignments. Puzzle-sized boards stay far below it; the bound exists
// so pathological rules fail fast instead of hanging an interactive
// caller.
const DefaultMaxCandidates = 1 << 20

// Options configures a solve call.
type Options struct {
	// MaxCandidates is the largest number of free-variable assignments
	// (2^k for k free columns) the solver will enumerate. Exceeding it
	// yields ErrSearchSpaceTooLarge before any enumeration starts.
	MaxCandidates int
}

// DefaultOptions returns Options with MaxCandidates = DefaultMaxCandidates.
func DefaultOptions() Options {
	return Options{MaxCandidates: DefaultMaxCandidates}
}

// Result is a verified minimum-weight solution of A·x = b.
type Result struct {
	// Presses is the press bit-vector x, flat row-major; bit j set
	// means "press button j".
	Presses *gf2.Vector

	// Weight is Presses.Weight(): the number of presses.
	Weight int

	// FreeVars is the number of free columns the system had; the full
	// solution space holds 2^FreeVars members.
	FreeVars int
}

// Cells expands the press vector into board coordinates in row-major
// order, for a board with the given column count.
func (r Result) Cells(cols int) []grid.Cell {
	ones := r.Presses.Ones()
	cells := make([]grid.Cell, len(ones))
	for i, idx := range ones {
		cells[i] = grid.CellAt(idx, cols)
	}

	return cells
}
