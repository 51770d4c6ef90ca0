// Package grid models a rectangular toggle-puzzle board: R×C cells,
// one bit per cell, 1 = lit and 0 = unlit.
//
// What:
//
//   - Grid wraps a gf2.Vector of length rows×cols in row-major order
//     (cell (r,c) lives at flat index r×cols + c).
//   - Toggle flips one light; ApplyPresses flips a whole press-set with
//     GF(2) semantics, so duplicated presses cancel pairwise.
//   - BitVector/FromBitVector round-trip the board through its flat
//     bit-vector form; ParseRows/RowStrings round-trip "0101"-style
//     row strings.
//
// Why:
//
//   - The solver works on flat GF(2) vectors; the board is the
//     human-facing 2D view of the same bits.
//   - Self-inverse toggling means a board is fully described by which
//     presses were applied, never by their order.
//
// Complexity: all single-cell operations are O(1); whole-board
// operations are O(rows×cols/64).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols not positive.
//   - ErrOutOfBounds: a cell coordinate outside [0,rows)×[0,cols).
//   - ErrBadLength: a flat vector whose length is not rows×cols.
//   - ErrBadRowString: a row string of wrong length or with characters
//     other than '0' and '1'.
package grid
