// Package toggle derives the GF(2) linear map of a toggle puzzle: which
// lights flip when each button is pressed.
//
// What:
//
//   - Rule is the caller-supplied toggle-influence relation: given a
//     pressed cell and the board dimensions, it names every cell whose
//     light flips. Any linear rule fits; nothing here is tied to one
//     adjacency pattern.
//   - Variant tags the built-in rules: Cross (the pressed cell plus its
//     orthogonal neighbors — classic Lights Out), RowColumn (the
//     pressed cell's entire row and column) and Self (only the pressed
//     cell).
//   - BuildMatrix expands a rule into the (R·C)×(R·C) bit matrix whose
//     column j holds the flips of button j. The matrix depends only on
//     (rows, cols, rule), never on board contents.
//   - ModelCache memoizes built matrices per (rows, cols, variant)
//     behind a read-mostly lock, since interactive callers solve many
//     boards of the same shape.
//
// Why:
//
//   - With the rule expressed as a matrix, "which presses fix this
//     board" becomes the linear system A·x = b over GF(2) and one
//     solver covers every puzzle variant.
//
// Complexity:
//
//   - BuildMatrix: O((R·C)·f) where f is the flip-set size of the rule.
//   - ModelCache.Matrix: O(1) on a hit, one BuildMatrix on a miss.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols not positive.
//   - ErrUnknownVariant: an unrecognized variant tag.
//   - ErrNilRule: BuildMatrix called without a rule.
//   - ErrRuleOutOfBounds: a rule produced a cell outside the board.
package toggle
