package grid

import "strings"

// ParseRows builds a board from one "0101"-style string per row, the
// textual form produced by RowStrings. Every string must be exactly
// cols characters of '0' or '1'; the column count is taken from the
// first row.
// Returns ErrInvalidDimensions on an empty slice or empty first row,
// ErrBadRowString on any malformed row.
// Complexity: O(rows×cols).
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, ErrBadRowString
		}
		for c := 0; c < cols; c++ {
			switch row[c] {
			case '1':
				_ = g.bits.SetBit(Cell{Row: r, Col: c}.Index(cols), true) // index in range by construction
			case '0':
				// already zero
			default:
				return nil, ErrBadRowString
			}
		}
	}

	return g, nil
}

// RowStrings renders the board as one "0101" string per row, the exact
// input format accepted by ParseRows. Round-trip identity holds:
// ParseRows(g.RowStrings()) equals g.
// Complexity: O(rows×cols).
func (g *Grid) RowStrings() []string {
	out := make([]string, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		sb.Grow(g.cols)
		for c := 0; c < g.cols; c++ {
			lit, _ := g.bits.Bit(Cell{Row: r, Col: c}.Index(g.cols)) // index in range by construction
			if lit {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		out[r] = sb.String()
	}

	return out
}
