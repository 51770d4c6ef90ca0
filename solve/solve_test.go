package solve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flipgrid/gf2"
	"github.com/katalvlaran/flipgrid/grid"
	"github.com/katalvlaran/flipgrid/solve"
	"github.com/katalvlaran/flipgrid/toggle"
)

// targetOf flattens a board's lit cells into the solver's b vector.
func targetOf(t *testing.T, g *grid.Grid) *gf2.Vector {
	t.Helper()

	return g.BitVector()
}

// solveBoard builds the variant matrix for the board's shape and solves
// for its lit cells.
func solveBoard(t *testing.T, g *grid.Grid, v toggle.Variant) (solve.Result, error) {
	t.Helper()
	a, err := toggle.BuildVariantMatrix(g.Rows(), g.Cols(), v)
	require.NoError(t, err)

	return solve.Solve(a, targetOf(t, g), solve.DefaultOptions())
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestSolve_BadInputs covers option and dimension validation.
func TestSolve_BadInputs(t *testing.T) {
	a, err := gf2.NewMatrix(4, 4)
	require.NoError(t, err)
	b, err := gf2.NewVector(4)
	require.NoError(t, err)

	_, err = solve.Solve(a, b, solve.Options{MaxCandidates: 0})
	assert.ErrorIs(t, err, solve.ErrBadOptions)

	short, err := gf2.NewVector(3)
	require.NoError(t, err)
	_, err = solve.Solve(a, short, solve.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)

	_, err = solve.Solve(nil, b, solve.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)
	_, err = solve.Solve(a, nil, solve.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)
}

//----------------------------------------------------------------------------//
// Concrete scenarios from first principles
//----------------------------------------------------------------------------//

// TestSolve_OneByOne pins the smallest board: pressing the single
// button flips its own light.
func TestSolve_OneByOne(t *testing.T) {
	// Lit board: one press.
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.Cell{}))

	res, err := solveBoard(t, g, toggle.Cross)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Weight)
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}}, res.Cells(1))

	// Unlit board: empty press-set.
	g.ClearAll()
	res, err = solveBoard(t, g, toggle.Cross)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Weight)
	assert.Empty(t, res.Cells(1))
}

// TestSolve_2x2RowColumn_AllLit follows the row-and-column variant on a
// fully lit 2x2 board: the press-set must extinguish everything and no
// lighter set may exist.
func TestSolve_2x2RowColumn_AllLit(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.Fill()

	res, err := solveBoard(t, g, toggle.RowColumn)
	require.NoError(t, err)

	applied := g.Clone()
	require.NoError(t, applied.ApplyPressVector(pressEffect(t, 2, 2, toggle.RowColumn, res.Presses)))
	assert.True(t, applied.AllUnlit(), "returned press-set must extinguish the board")

	assert.Equal(t, bruteForceMinWeight(t, 2, 2, toggle.RowColumn, targetOf(t, g)), res.Weight)
}

// TestSolve_AlreadySolved returns the empty press-set for a dark board.
func TestSolve_AlreadySolved(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	res, err := solveBoard(t, g, toggle.Cross)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Weight)
	assert.True(t, res.Presses.IsZero())
}

//----------------------------------------------------------------------------//
// Solution correctness and minimality (brute-force cross-checks)
//----------------------------------------------------------------------------//

// pressEffect computes the board-level effect A·x of a press vector.
func pressEffect(t *testing.T, rows, cols int, v toggle.Variant, x *gf2.Vector) *gf2.Vector {
	t.Helper()
	a, err := toggle.BuildVariantMatrix(rows, cols, v)
	require.NoError(t, err)
	effect, err := a.MulVec(x)
	require.NoError(t, err)

	return effect
}

// bruteForceMinWeight sweeps all 2^(rows*cols) press vectors and
// returns the minimum weight solving A·x = b, or -1 if none exists.
func bruteForceMinWeight(t *testing.T, rows, cols int, v toggle.Variant, b *gf2.Vector) int {
	t.Helper()
	a, err := toggle.BuildVariantMatrix(rows, cols, v)
	require.NoError(t, err)

	n := rows * cols
	best := -1
	for mask := 0; mask < 1<<n; mask++ {
		x, err := gf2.NewVector(n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				require.NoError(t, x.SetBit(i, true))
			}
		}
		got, err := a.MulVec(x)
		require.NoError(t, err)
		if got.Equal(b) {
			if w := x.Weight(); best < 0 || w < best {
				best = w
			}
		}
	}

	return best
}

// TestSolve_MatchesBruteForce cross-checks correctness and minimality
// against the full press-vector space on every board state of small
// boards, for every built-in variant.
func TestSolve_MatchesBruteForce(t *testing.T) {
	shapes := []struct{ rows, cols int }{{1, 2}, {2, 2}, {2, 3}, {3, 3}}
	variants := []toggle.Variant{toggle.Cross, toggle.RowColumn, toggle.Self}

	for _, sh := range shapes {
		for _, v := range variants {
			n := sh.rows * sh.cols
			a, err := toggle.BuildVariantMatrix(sh.rows, sh.cols, v)
			require.NoError(t, err)

			for state := 0; state < 1<<n; state++ {
				b, err := gf2.NewVector(n)
				require.NoError(t, err)
				for i := 0; i < n; i++ {
					if state&(1<<i) != 0 {
						require.NoError(t, b.SetBit(i, true))
					}
				}

				want := bruteForceMinWeight(t, sh.rows, sh.cols, v, b)
				res, err := solve.Solve(a, b, solve.DefaultOptions())
				if want < 0 {
					assert.ErrorIs(t, err, solve.ErrUnsolvable,
						"%dx%d %s state %b must be unsolvable", sh.rows, sh.cols, v, state)
					continue
				}
				require.NoError(t, err,
					"%dx%d %s state %b must be solvable", sh.rows, sh.cols, v, state)

				// Correctness: A·x = b exactly.
				got, err := a.MulVec(res.Presses)
				require.NoError(t, err)
				assert.True(t, got.Equal(b))

				// Minimality.
				assert.Equal(t, want, res.Weight,
					"%dx%d %s state %b weight", sh.rows, sh.cols, v, state)
			}
		}
	}
}

// TestSolve_ScrambleAlwaysSolvable scrambles boards with random
// press-sets; the scramble itself is a solution, so Solve must succeed
// with weight no larger than the scramble's.
func TestSolve_ScrambleAlwaysSolvable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		rows, cols := 1+rng.Intn(4), 1+rng.Intn(4)
		n := rows * cols

		scramble, err := gf2.NewVector(n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 1 {
				require.NoError(t, scramble.SetBit(i, true))
			}
		}
		b := pressEffect(t, rows, cols, toggle.Cross, scramble)

		a, err := toggle.BuildVariantMatrix(rows, cols, toggle.Cross)
		require.NoError(t, err)
		res, err := solve.Solve(a, b, solve.DefaultOptions())
		require.NoError(t, err, "a scrambled board is always solvable")
		assert.LessOrEqual(t, res.Weight, scramble.Weight())
	}
}

//----------------------------------------------------------------------------//
// Unsolvability and bounds
//----------------------------------------------------------------------------//

// TestSolve_Unsolvable hand-constructs an inconsistent system: a zero
// matrix cannot light anything, so any lit target is unreachable.
func TestSolve_Unsolvable(t *testing.T) {
	a, err := gf2.NewMatrix(2, 2)
	require.NoError(t, err)
	b, err := gf2.VectorFromBits([]uint8{1, 0})
	require.NoError(t, err)

	_, err = solve.Solve(a, b, solve.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrUnsolvable)
}

// TestSolve_SearchSpaceBound verifies the enumeration guard fires
// before any search: a zero matrix with a zero target has every
// variable free, so 2^n candidates exceed a tight bound.
func TestSolve_SearchSpaceBound(t *testing.T) {
	a, err := gf2.NewMatrix(6, 6)
	require.NoError(t, err)
	b, err := gf2.NewVector(6)
	require.NoError(t, err)

	_, err = solve.Solve(a, b, solve.Options{MaxCandidates: 32})
	assert.ErrorIs(t, err, solve.ErrSearchSpaceTooLarge)

	// A permissive bound admits the same system.
	res, err := solve.Solve(a, b, solve.Options{MaxCandidates: 64})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Weight)
	assert.Equal(t, 6, res.FreeVars)
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestSolve_Deterministic checks bit-identical results on repeat calls,
// including a system with free variables (the all-ones matrix has rank
// 1, leaving n-1 free columns).
func TestSolve_Deterministic(t *testing.T) {
	const n = 4
	a, err := gf2.NewMatrix(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, a.SetBit(i, j, true))
		}
	}
	b, err := gf2.VectorFromBits([]uint8{1, 1, 1, 1})
	require.NoError(t, err)

	first, err := solve.Solve(a, b, solve.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Weight, "rank-1 all-ones system is solved by any single press")
	assert.Equal(t, n-1, first.FreeVars)

	for i := 0; i < 5; i++ {
		again, err := solve.Solve(a, b, solve.DefaultOptions())
		require.NoError(t, err)
		assert.True(t, first.Presses.Equal(again.Presses), "repeat %d must be bit-identical", i)
	}
}
