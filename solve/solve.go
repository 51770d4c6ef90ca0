package solve

import (
	"math/bits"

	"github.com/katalvlaran/flipgrid/gf2"
)

// Solve returns the minimum-weight x with A·x = b over GF(2).
//
// A's rows are equations (lights), columns are variables (buttons);
// b must have exactly A.Rows() bits. A and b are never mutated:
// elimination runs on an internal augmented copy, and the winning
// candidate is re-verified against the originals before returning.
//
// Errors: ErrBadOptions, ErrDimensionMismatch, ErrUnsolvable,
// ErrSearchSpaceTooLarge. See the package doc for the deterministic
// pivot and tie-break rules.
//
// Complexity: O(r·c·min(r,c)/64) elimination + O(2^k·c) enumeration,
// k = free column count, bounded by opts.MaxCandidates.
func Solve(a *gf2.Matrix, b *gf2.Vector, opts Options) (Result, error) {
	if opts.MaxCandidates <= 0 {
		return Result{}, ErrBadOptions
	}
	if a == nil || b == nil || b.Len() != a.Rows() {
		return Result{}, ErrDimensionMismatch
	}

	var (
		rows = a.Rows()
		vars = a.Cols()
	)

	aug, err := augment(a, b)
	if err != nil {
		return Result{}, err
	}

	pivotCols, freeCols := reduce(aug, vars)

	// A zero coefficient row with a lit target bit is a contradiction:
	// rows below the last pivot are exactly the all-zero ones in RREF.
	for i := len(pivotCols); i < rows; i++ {
		if bit(aug, i, vars) {
			return Result{}, ErrUnsolvable
		}
	}

	k := len(freeCols)
	// 2^k candidates; reject before enumerating. k >= 63 overflows int
	// and exceeds any sane bound anyway.
	if k >= 63 || 1<<k > opts.MaxCandidates {
		return Result{}, ErrSearchSpaceTooLarge
	}

	best, err := enumerate(aug, pivotCols, freeCols, vars)
	if err != nil {
		return Result{}, err
	}

	// Cross-check the winner against the untouched system.
	check, err := a.MulVec(best)
	if err != nil {
		return Result{}, err
	}
	if !check.Equal(b) {
		return Result{}, ErrUnsolvable
	}

	return Result{Presses: best, Weight: best.Weight(), FreeVars: k}, nil
}

// augment builds the augmented matrix [A|b].
func augment(a *gf2.Matrix, b *gf2.Vector) (*gf2.Matrix, error) {
	aug, err := gf2.NewMatrix(a.Rows(), a.Cols()+1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if v, _ := a.Bit(i, j); v {
				_ = aug.SetBit(i, j, true)
			}
		}
		if v, _ := b.Bit(i); v {
			_ = aug.SetBit(i, a.Cols(), true)
		}
	}

	return aug, nil
}

// reduce brings aug to reduced row-echelon form over the first vars
// columns and returns the pivot columns (pivotCols[i] is the pivot of
// row i) and the free (non-pivot) columns, both in ascending order.
//
// Pivot selection is deterministic: the lowest row at or below the
// current pivot row with a set bit in the column. Elimination clears
// the pivot column in every other row, above and below, so pivot
// values read directly off the augmented column once free variables
// are fixed.
func reduce(aug *gf2.Matrix, vars int) (pivotCols, freeCols []int) {
	var pivotRow int
	for col := 0; col < vars && pivotRow < aug.Rows(); col++ {
		sel := -1
		for r := pivotRow; r < aug.Rows(); r++ {
			if bit(aug, r, col) {
				sel = r
				break
			}
		}
		if sel < 0 {
			freeCols = append(freeCols, col)
			continue
		}
		_ = aug.SwapRows(pivotRow, sel)
		for r := 0; r < aug.Rows(); r++ {
			if r != pivotRow && bit(aug, r, col) {
				_ = aug.XorRows(r, pivotRow)
			}
		}
		pivotCols = append(pivotCols, col)
		pivotRow++
	}
	// Columns past the last possible pivot row are free as well.
	for col := len(pivotCols) + len(freeCols); col < vars; col++ {
		freeCols = append(freeCols, col)
	}

	return pivotCols, freeCols
}

// enumerate walks every free-variable assignment in increasing mask
// order (mask bit i drives freeCols[i]) and returns the first candidate
// of minimal Hamming weight.
func enumerate(aug *gf2.Matrix, pivotCols, freeCols []int, vars int) (*gf2.Vector, error) {
	// rowFree[i] lists which mask bits influence pivot row i: in RREF a
	// pivot row holds ones only at its own pivot and at free columns.
	rowFree := make([][]int, len(pivotCols))
	for i := range pivotCols {
		for fi, f := range freeCols {
			if bit(aug, i, f) {
				rowFree[i] = append(rowFree[i], fi)
			}
		}
	}

	var (
		bestMask   uint64
		bestWeight = vars + 1
	)
	for mask := uint64(0); mask < uint64(1)<<len(freeCols); mask++ {
		weight := bits.OnesCount64(mask)
		if weight >= bestWeight {
			continue
		}
		for i := range pivotCols {
			v := bit(aug, i, vars) // pivot value with all free vars at 0
			for _, fi := range rowFree[i] {
				if mask&(1<<fi) != 0 {
					v = !v
				}
			}
			if v {
				weight++
			}
		}
		if weight < bestWeight {
			bestWeight = weight
			bestMask = mask
		}
	}

	// Materialize the winning assignment.
	x, err := gf2.NewVector(vars)
	if err != nil {
		return nil, err
	}
	for fi, f := range freeCols {
		if bestMask&(1<<fi) != 0 {
			_ = x.SetBit(f, true)
		}
	}
	for i, p := range pivotCols {
		v := bit(aug, i, vars)
		for _, fi := range rowFree[i] {
			if bestMask&(1<<fi) != 0 {
				v = !v
			}
		}
		_ = x.SetBit(p, v)
	}

	return x, nil
}

// bit reads entry (i, j); indices are validated by the callers.
func bit(m *gf2.Matrix, i, j int) bool {
	v, _ := m.Bit(i, j)

	return v
}
