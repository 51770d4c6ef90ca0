package toggle

import "github.com/katalvlaran/flipgrid/grid"

// crossOffsets are the orthogonal neighbor displacements, matching the
// 4-connectivity used throughout grid traversal code.
var crossOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// crossFlips implements the classic Lights Out rule: the pressed cell
// plus every orthogonal neighbor that lies on the board.
func crossFlips(pressed grid.Cell, rows, cols int) []grid.Cell {
	flips := make([]grid.Cell, 0, 5)
	flips = append(flips, pressed)
	for _, d := range crossOffsets {
		n := grid.Cell{Row: pressed.Row + d[0], Col: pressed.Col + d[1]}
		if n.Row >= 0 && n.Row < rows && n.Col >= 0 && n.Col < cols {
			flips = append(flips, n)
		}
	}

	return flips
}

// rowColumnFlips flips the pressed cell's entire row and entire column.
// The pressed cell appears once: it is emitted by the row sweep and
// skipped by the column sweep.
func rowColumnFlips(pressed grid.Cell, rows, cols int) []grid.Cell {
	flips := make([]grid.Cell, 0, rows+cols-1)
	for c := 0; c < cols; c++ {
		flips = append(flips, grid.Cell{Row: pressed.Row, Col: c})
	}
	for r := 0; r < rows; r++ {
		if r == pressed.Row {
			continue
		}
		flips = append(flips, grid.Cell{Row: r, Col: pressed.Col})
	}

	return flips
}

// selfFlips flips only the pressed cell. Useful as a trivial variant
// and for exercising degenerate systems in tests.
func selfFlips(pressed grid.Cell, _, _ int) []grid.Cell {
	return []grid.Cell{pressed}
}
