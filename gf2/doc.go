// Package gf2 implements dense bit-vectors and bit-matrices over GF(2),
// the two-element field {0,1} with addition = XOR and multiplication = AND.
//
// What:
//
//   - Vector: a fixed-length bit vector packed into 64-bit words.
//   - Matrix: an r×c bit matrix stored as one Vector per row, so that
//     row elimination is a word-wide XOR rather than a bit loop.
//   - MulVec computes A·x over GF(2); Weight counts set bits (popcount).
//
// Why:
//
//   - Toggle puzzles, parity codes and linear Boolean systems all live
//     in GF(2); a packed representation keeps elimination cache-friendly.
//   - Row-XOR as the single mutation primitive makes Gaussian elimination
//     over GF(2) both branch-light and allocation-free.
//
// Complexity (n = vector length, w = ⌈n/64⌉ words):
//
//   - Bit/SetBit/FlipBit: O(1).
//   - Xor, Equal, IsZero, Weight: O(w).
//   - Matrix.MulVec: O(r×w).
//
// Errors:
//
//   - ErrBadLength: requested vector length is not positive.
//   - ErrBadShape: requested matrix shape is not positive in both axes.
//   - ErrIndexOutOfRange: a bit index lies outside the vector/matrix.
//   - ErrLengthMismatch: two vectors of differing lengths were combined.
//   - ErrDimensionMismatch: matrix/vector operand shapes are incompatible.
package gf2
