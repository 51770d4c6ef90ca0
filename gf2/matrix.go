package gf2

// Matrix is a dense r×c bit matrix over GF(2), stored as one Vector per
// row so row elimination reduces to word-wide XOR.
// The zero value is unusable; construct with NewMatrix.
type Matrix struct {
	rows, cols int
	row        []*Vector
}

// NewMatrix returns an all-zero r×c matrix.
// Returns ErrBadShape if r <= 0 or c <= 0.
// Complexity: O(r×c/64).
func NewMatrix(r, c int) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{rows: r, cols: c, row: make([]*Vector, r)}
	for i := range m.row {
		v, err := NewVector(c)
		if err != nil {
			return nil, err
		}
		m.row[i] = v
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Bit reports whether entry (i, j) is set.
// Returns ErrIndexOutOfRange if the position is outside the matrix.
// Complexity: O(1).
func (m *Matrix) Bit(i, j int) (bool, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false, ErrIndexOutOfRange
	}

	return m.row[i].bit(j), nil
}

// SetBit sets entry (i, j) to val.
// Returns ErrIndexOutOfRange if the position is outside the matrix.
// Complexity: O(1).
func (m *Matrix) SetBit(i, j int, val bool) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrIndexOutOfRange
	}

	return m.row[i].SetBit(j, val)
}

// SwapRows exchanges rows i and j in place.
// Returns ErrIndexOutOfRange if either row index is invalid.
// Complexity: O(1).
func (m *Matrix) SwapRows(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		return ErrIndexOutOfRange
	}
	m.row[i], m.row[j] = m.row[j], m.row[i]

	return nil
}

// XorRows adds row src into row dst over GF(2) (dst ^= src).
// Returns ErrIndexOutOfRange if either row index is invalid.
// Complexity: O(c/64).
func (m *Matrix) XorRows(dst, src int) error {
	if dst < 0 || dst >= m.rows || src < 0 || src >= m.rows {
		return ErrIndexOutOfRange
	}

	return m.row[dst].Xor(m.row[src])
}

// Row returns the underlying row vector. The returned vector is shared
// with the matrix; mutate it only through the matrix's own methods.
// Returns ErrIndexOutOfRange if i is invalid.
// Complexity: O(1).
func (m *Matrix) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.rows {
		return nil, ErrIndexOutOfRange
	}

	return m.row[i], nil
}

// Column extracts column j as a fresh vector of length Rows.
// Returns ErrIndexOutOfRange if j is invalid.
// Complexity: O(r).
func (m *Matrix) Column(j int) (*Vector, error) {
	if j < 0 || j >= m.cols {
		return nil, ErrIndexOutOfRange
	}
	col, err := NewVector(m.rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		if m.row[i].bit(j) {
			col.flip(i)
		}
	}

	return col, nil
}

// MulVec computes A·x over GF(2): result bit i is the parity of the
// AND of row i with x.
// Returns ErrDimensionMismatch if len(x) != Cols.
// Complexity: O(r×c/64).
func (m *Matrix) MulVec(x *Vector) (*Vector, error) {
	if x == nil || x.Len() != m.cols {
		return nil, ErrDimensionMismatch
	}
	out, err := NewVector(m.rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		var parity uint64
		for w := range m.row[i].words {
			parity ^= m.row[i].words[w] & x.words[w]
		}
		// Fold word parities down to a single bit.
		parity ^= parity >> 32
		parity ^= parity >> 16
		parity ^= parity >> 8
		parity ^= parity >> 4
		parity ^= parity >> 2
		parity ^= parity >> 1
		if parity&1 != 0 {
			out.flip(i)
		}
	}

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r×c/64).
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{rows: m.rows, cols: m.cols, row: make([]*Vector, m.rows)}
	for i := range m.row {
		cp.row[i] = m.row[i].Clone()
	}

	return cp
}

// Equal reports whether two matrices have identical shape and entries.
// Complexity: O(r×c/64).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || other.rows != m.rows || other.cols != m.cols {
		return false
	}
	for i := range m.row {
		if !m.row[i].Equal(other.row[i]) {
			return false
		}
	}

	return true
}
