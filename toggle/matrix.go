package toggle

import (
	"github.com/katalvlaran/flipgrid/gf2"
	"github.com/katalvlaran/flipgrid/grid"
)

// BuildMatrix expands a toggle rule into its (R·C)×(R·C) bit matrix
// over GF(2): entry (i, j) is set iff pressing button j flips light i,
// with buttons and lights both in row-major flat order. Cells a rule
// lists an even number of times cancel, consistent with GF(2) addition.
//
// The result is pure and deterministic: identical (rows, cols, rule
// behavior) yields a bit-identical matrix.
//
// Returns ErrInvalidDimensions if rows <= 0 or cols <= 0, ErrNilRule on
// a nil rule, and ErrRuleOutOfBounds if the rule names a cell outside
// the board.
// Complexity: O((R·C)·f), f = flip-set size.
func BuildMatrix(rows, cols int, rule Rule) (*gf2.Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rule == nil {
		return nil, ErrNilRule
	}

	n := rows * cols
	m, err := gf2.NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		pressed := grid.CellAt(j, cols)
		for _, f := range rule.Flips(pressed, rows, cols) {
			if f.Row < 0 || f.Row >= rows || f.Col < 0 || f.Col >= cols {
				return nil, ErrRuleOutOfBounds
			}
			// XOR, not set: duplicate listings cancel.
			i := f.Index(cols)
			bit, _ := m.Bit(i, j) // indices validated above
			_ = m.SetBit(i, j, !bit)
		}
	}

	return m, nil
}

// BuildVariantMatrix is the tagged-variant convenience wrapper around
// BuildMatrix. Returns ErrUnknownVariant for unrecognized tags.
func BuildVariantMatrix(rows, cols int, v Variant) (*gf2.Matrix, error) {
	rule, err := v.Rule()
	if err != nil {
		return nil, err
	}

	return BuildMatrix(rows, cols, rule)
}
