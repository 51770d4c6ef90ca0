package session

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/flipgrid/grid"
	"github.com/katalvlaran/flipgrid/solve"
	"github.com/katalvlaran/flipgrid/toggle"
)

// MaxBoardSize caps each board dimension for interactive play; larger
// boards make the rendered grid unwieldy long before the solver slows.
const MaxBoardSize = 8

// Sentinel errors for session commands.
var (
	// ErrNoBoard indicates a board-dependent command ran before NewBoard.
	ErrNoBoard = errors.New("session: no board, create one first")
	// ErrBoardTooLarge indicates a dimension above MaxBoardSize.
	ErrBoardTooLarge = errors.New("session: board dimension exceeds maximum")
	// ErrBadChangeCount indicates a Scramble count outside [1, rows*cols].
	ErrBadChangeCount = errors.New("session: change count must be in [1, rows*cols]")
)

// Session is the state of one interactive sitting. Construct with New;
// the zero value lacks a randomness source and cache.
type Session struct {
	board   *grid.Grid
	variant toggle.Variant
	rule    toggle.Rule
	cache   *toggle.ModelCache
	rng     *rand.Rand
	opts    solve.Options
}

// New returns a Session playing the given variant, drawing randomness
// from rng and solving under opts. The cache may be shared between
// sessions; pass nil to get a private one.
// Returns toggle.ErrUnknownVariant for an unrecognized variant.
func New(variant toggle.Variant, rng *rand.Rand, cache *toggle.ModelCache, opts solve.Options) (*Session, error) {
	rule, err := variant.Rule()
	if err != nil {
		return nil, err
	}
	if cache == nil {
		cache = toggle.NewModelCache()
	}

	return &Session{variant: variant, rule: rule, cache: cache, rng: rng, opts: opts}, nil
}

// Board returns the current board, or nil before NewBoard.
func (s *Session) Board() *grid.Grid { return s.board }

// Variant returns the session's toggle variant.
func (s *Session) Variant() toggle.Variant { return s.variant }

// NewBoard replaces the current board with a fully lit rows×cols one,
// the tool's starting position.
// Returns grid.ErrInvalidDimensions or ErrBoardTooLarge.
func (s *Session) NewBoard(rows, cols int) error {
	if rows > MaxBoardSize || cols > MaxBoardSize {
		return ErrBoardTooLarge
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return err
	}
	g.Fill()
	s.board = g

	return nil
}

// ClearBoard turns every light off.
// Returns ErrNoBoard before NewBoard.
func (s *Session) ClearBoard() error {
	if s.board == nil {
		return ErrNoBoard
	}
	s.board.ClearAll()

	return nil
}

// SetState replaces the board contents from "0101"-style row strings,
// keeping the current dimensions. The strings must describe a board of
// exactly the current shape.
// Returns ErrNoBoard, grid.ErrBadRowString, or grid.ErrBadLength when
// the described shape differs.
func (s *Session) SetState(rows []string) error {
	if s.board == nil {
		return ErrNoBoard
	}
	parsed, err := grid.ParseRows(rows)
	if err != nil {
		return err
	}
	if parsed.Rows() != s.board.Rows() || parsed.Cols() != s.board.Cols() {
		return grid.ErrBadLength
	}
	s.board = parsed

	return nil
}

// Enable turns the light at c on.
// Returns ErrNoBoard or grid.ErrOutOfBounds.
func (s *Session) Enable(c grid.Cell) error {
	if s.board == nil {
		return ErrNoBoard
	}

	return s.board.Set(c)
}

// Disable turns the light at c off.
// Returns ErrNoBoard or grid.ErrOutOfBounds.
func (s *Session) Disable(c grid.Cell) error {
	if s.board == nil {
		return ErrNoBoard
	}

	return s.board.Clear(c)
}

// Flip presses the button at c: every cell in the variant's flip-set
// toggles.
// Returns ErrNoBoard or grid.ErrOutOfBounds.
func (s *Session) Flip(c grid.Cell) error {
	if s.board == nil {
		return ErrNoBoard
	}
	if c.Row < 0 || c.Row >= s.board.Rows() || c.Col < 0 || c.Col >= s.board.Cols() {
		return grid.ErrOutOfBounds
	}

	return s.board.ApplyPresses(s.rule.Flips(c, s.board.Rows(), s.board.Cols()))
}

// Scramble presses n distinct random buttons. The resulting board is
// always solvable: the pressed set is itself a solution.
// Returns ErrNoBoard or ErrBadChangeCount for n outside [1, rows*cols].
func (s *Session) Scramble(n int) error {
	if s.board == nil {
		return ErrNoBoard
	}
	cells := s.board.Rows() * s.board.Cols()
	if n < 1 || n > cells {
		return ErrBadChangeCount
	}
	for _, idx := range s.rng.Perm(cells)[:n] {
		if err := s.Flip(grid.CellAt(idx, s.board.Cols())); err != nil {
			return err
		}
	}

	return nil
}

// ScrambleRandom presses a uniformly random number of distinct random
// buttons, between 1 and rows*cols.
// Returns ErrNoBoard.
func (s *Session) ScrambleRandom() error {
	if s.board == nil {
		return ErrNoBoard
	}

	return s.Scramble(1 + s.rng.Intn(s.board.Rows()*s.board.Cols()))
}

// Solved reports whether every light is on, the tool's goal state.
// Returns ErrNoBoard before NewBoard.
func (s *Session) Solved() (bool, error) {
	if s.board == nil {
		return false, ErrNoBoard
	}

	return s.board.AllLit(), nil
}

// Solve returns the minimum press-set that lights the whole board. The
// solver's target is the complement of the current board: exactly the
// unlit cells must flip an odd number of times.
// Returns ErrNoBoard and the solve package's sentinels.
func (s *Session) Solve() (solve.Result, error) {
	if s.board == nil {
		return solve.Result{}, ErrNoBoard
	}

	a, err := s.cache.Matrix(s.board.Rows(), s.board.Cols(), s.variant)
	if err != nil {
		return solve.Result{}, err
	}

	// Complement: target the unlit cells.
	target := s.board.BitVector()
	for i := 0; i < target.Len(); i++ {
		_ = target.FlipBit(i) // index in range by construction
	}

	return solve.Solve(a, target, s.opts)
}
