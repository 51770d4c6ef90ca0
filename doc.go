// Package flipgrid solves "Lights Out"-style toggle puzzles with plain
// linear algebra over GF(2) — the two-element field where pressing a
// button twice is the same as never pressing it.
//
// 🚀 What is flipgrid?
//
//	A small, dependency-light library that turns any linear toggle rule
//	into a solvable system of equations:
//		• gf2/     — packed bit-vectors and bit-matrices, XOR row ops
//		• grid/    — the R×C board: toggling, press-sets, round trips
//		• toggle/  — pluggable toggle rules and the press matrix build
//		• solve/   — Gaussian elimination + minimum-weight press-sets
//		• session/ — the stateful glue an interactive front end needs
//
// ✨ Why choose flipgrid?
//
//   - Rule-agnostic – cross, row-and-column, or any custom linear rule
//   - Exact-or-fail – minimum press count, Unsolvable when none exists
//   - Deterministic – identical inputs always give bit-identical output
//   - Bounded – free-variable search aborts instead of hanging
//
// Quick ASCII example (2×2, cross rule, all lights on):
//
//	    ▒▒│▒▒          │
//	    ──┼──   ==>  ──┼──
//	    ▒▒│▒▒          │
//
//	pressing all four buttons flips each light three times: solved.
//
// Every solve is the same three steps: build the board (grid), expand
// the rule into its press matrix (toggle), then solve A·x = b for the
// lightest x (solve). See each package's doc.go and the examples/
// directory for walkthroughs.
//
//	go get github.com/katalvlaran/flipgrid
package flipgrid
