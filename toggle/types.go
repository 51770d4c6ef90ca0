// Package toggle: rule/variant types and sentinel errors.
package toggle

import (
	"errors"

	"github.com/katalvlaran/flipgrid/grid"
)

// Sentinel errors for toggle-model operations.
var (
	// ErrInvalidDimensions indicates non-positive rows or cols.
	ErrInvalidDimensions = errors.New("toggle: rows and cols must be > 0")
	// ErrUnknownVariant indicates an unrecognized variant tag.
	ErrUnknownVariant = errors.New("toggle: unknown variant")
	// ErrNilRule indicates BuildMatrix was called with a nil rule.
	ErrNilRule = errors.New("toggle: rule must not be nil")
	// ErrRuleOutOfBounds indicates a rule produced a cell outside the board.
	ErrRuleOutOfBounds = errors.New("toggle: rule produced an out-of-bounds cell")
)

// Rule is a toggle-influence relation: Flips lists every cell whose
// light flips when pressed is pressed on a rows×cols board. The list
// must include pressed itself and must depend only on the arguments,
// never on board contents. Cells listed an even number of times cancel
// (the matrix build XORs them), which keeps arbitrary rules linear.
type Rule interface {
	Flips(pressed grid.Cell, rows, cols int) []grid.Cell
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(pressed grid.Cell, rows, cols int) []grid.Cell

// Flips calls f.
func (f RuleFunc) Flips(pressed grid.Cell, rows, cols int) []grid.Cell {
	return f(pressed, rows, cols)
}

// Variant tags a built-in toggle rule.
type Variant int

const (
	// Cross flips the pressed cell and its orthogonal neighbors.
	// This is the classic Lights Out rule and the library default.
	Cross Variant = iota
	// RowColumn flips the pressed cell's entire row and entire column.
	RowColumn
	// Self flips only the pressed cell.
	Self
)

// variantNames doubles as the ParseVariant lookup and String table.
var variantNames = map[Variant]string{
	Cross:     "cross",
	RowColumn: "rowcolumn",
	Self:      "self",
}

// String returns the canonical lowercase tag, or "unknown" for
// unrecognized values.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}

	return "unknown"
}

// ParseVariant maps a canonical tag back to its Variant.
// Returns ErrUnknownVariant for anything else.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}

	return 0, ErrUnknownVariant
}

// Rule returns the built-in rule for the variant.
// Returns ErrUnknownVariant for unrecognized values.
func (v Variant) Rule() (Rule, error) {
	switch v {
	case Cross:
		return RuleFunc(crossFlips), nil
	case RowColumn:
		return RuleFunc(rowColumnFlips), nil
	case Self:
		return RuleFunc(selfFlips), nil
	default:
		return nil, ErrUnknownVariant
	}
}
