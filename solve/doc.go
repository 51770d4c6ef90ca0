// Package solve finds minimum-weight solutions of toggle-puzzle
// systems A·x = b over GF(2): A is a toggle matrix (columns = buttons,
// rows = lights), b the lit cells of a board, and x the press-set that
// extinguishes every light.
//
// What:
//
//   - Solve row-reduces the augmented matrix [A|b] to reduced
//     row-echelon form, detects inconsistent systems, enumerates every
//     assignment of the free variables and returns the press-set with
//     the fewest presses.
//   - Options bounds the enumeration: a system with k free columns has
//     2^k solutions, and enumeration aborts up front when that count
//     exceeds MaxCandidates instead of hanging.
//   - The result is exact-or-fail: no partial or approximate press-sets.
//
// Why:
//
//   - Over GF(2) a press-set is a bit vector, pressing twice cancels,
//     and "solve the board" is plain linear algebra; the only search
//     left is picking the lightest member of the solution coset.
//
// Determinism: pivot selection takes the lowest eligible row, free
// assignments are enumerated in increasing mask order (bit i of the
// mask drives the i-th free column in ascending column order), and the
// first candidate of minimal weight wins. Identical inputs always
// produce bit-identical results.
//
// Complexity: elimination O(n^3 / 64) for n = R·C; enumeration
// O(2^k · n / 64) bounded by MaxCandidates.
//
// Errors:
//
//   - ErrDimensionMismatch: len(b) differs from A's row count.
//   - ErrUnsolvable: the system is inconsistent; no press-set reaches
//     the all-unlit state.
//   - ErrSearchSpaceTooLarge: 2^k exceeds Options.MaxCandidates.
//   - ErrBadOptions: a non-positive MaxCandidates.
package solve
