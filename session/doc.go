// Package session holds the mutable state of one interactive puzzle
// sitting: the current board, the active toggle variant, a shared
// matrix cache and an injected randomness source.
//
// What:
//
//   - Session replaces a process-wide "current board" global with an
//     explicit object handed to command handlers. Every command of the
//     interactive tool maps to one method: NewBoard, ClearBoard,
//     SetState, Enable, Disable, Flip, Scramble, ScrambleRandom, Solve.
//   - Boards start fully lit and count as solved when every cell is
//     lit, matching the puzzle's playing convention; Solve therefore
//     targets the unlit cells and returns the minimum press-set that
//     lights the whole board.
//   - Scramble applies random flips, so a scrambled board is always
//     solvable: the scramble presses themselves are one valid solution.
//
// Why:
//
//   - The core packages (grid, toggle, solve) are pure; all statefulness
//     of an interactive front end concentrates here, testable without a
//     terminal.
//
// Concurrency: a Session is owned by one goroutine; only the embedded
// ModelCache is safe to share.
//
// Errors:
//
//   - ErrNoBoard: a command needing a board ran before NewBoard.
//   - ErrBoardTooLarge: rows or cols exceed MaxBoardSize.
//   - ErrBadChangeCount: Scramble count outside [1, rows*cols].
//     Plus the sentinels of grid, toggle and solve, forwarded as-is.
package session
