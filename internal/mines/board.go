package mines

import (
	"fmt"
	"hash/maphash"
	"iter"
	"math"
	"math/rand/v2"
)

// Share of cells that hold a mine when the player does not pick a count.
const defaultMineDensity = 0.15

type Visibility int8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
	Questioned
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	default:
		return fmt.Sprintf("Visibility(%d)", int8(v))
	}
}

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

type cell struct {
	mined      bool
	visibility Visibility
	adjacent   int8
}

// Board is a single game of minesweeper. A Board is not safe for concurrent
// use; it belongs to whoever created it.
type Board struct {
	rows, cols int
	mineCount  int
	cells      []cell /* row-major, i = row*cols + col */

	/*
	 * Tallies over cells, updated on every visibility change so that
	 * State() does not have to scan the grid.
	 */
	revealedSafe int
	flagged      int
	flaggedMines int
	exploded     int /* index of the revealed mine, or -1 */
}

// DefaultMineCount returns the number of mines used when a new game is
// requested without one.
func DefaultMineCount(rows, cols int) int {
	return int(math.Round(float64(rows*cols) * defaultMineDensity))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func validateSize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf(
			"%w: board must be at least 1x1 (rows = %d, cols = %d)",
			ErrInvalidConfiguration, rows, cols,
		)
	}
	if rows > math.MaxInt32/cols {
		return fmt.Errorf(
			"%w: board %dx%d is too large", ErrInvalidConfiguration, rows, cols,
		)
	}
	return nil
}

// New creates a board with mineCount mines placed uniformly at random using
// r. A nil r is replaced by a freshly seeded source.
func New(rows, cols, mineCount int, r *rand.Rand) (*Board, error) {
	if err := validateSize(rows, cols); err != nil {
		return nil, err
	}
	if mineCount < 0 || mineCount >= rows*cols {
		return nil, fmt.Errorf(
			"%w: mine count must be in [0, %d) (mine count = %d)",
			ErrInvalidConfiguration, rows*cols, mineCount,
		)
	}
	if r == nil {
		r = newRand()
	}

	/*
	 * Write down every cell as a candidate, then pick mineCount of them
	 * off the list at random, swapping the last one into the hole.
	 */
	candidates := make([]int, rows*cols)
	for i := range candidates {
		candidates[i] = i
	}
	mined := make([]int, 0, mineCount)
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		mined = append(mined, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	return build(rows, cols, mined), nil
}

// NewFromLayout creates a board with mines at exactly the given points. It
// is meant for fixed puzzles and tests.
func NewFromLayout(rows, cols int, mines []Point) (*Board, error) {
	if err := validateSize(rows, cols); err != nil {
		return nil, err
	}
	if len(mines) >= rows*cols {
		return nil, fmt.Errorf(
			"%w: mine count must be in [0, %d) (mine count = %d)",
			ErrInvalidConfiguration, rows*cols, len(mines),
		)
	}
	seen := make(map[Point]bool, len(mines))
	mined := make([]int, 0, len(mines))
	for _, p := range mines {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return nil, fmt.Errorf(
				"%w: mine %s is outside the %dx%d grid",
				ErrInvalidConfiguration, p, rows, cols,
			)
		}
		if seen[p] {
			return nil, fmt.Errorf(
				"%w: mine %s listed twice", ErrInvalidConfiguration, p,
			)
		}
		seen[p] = true
		mined = append(mined, p.Row*cols+p.Col)
	}
	return build(rows, cols, mined), nil
}

func build(rows, cols int, mined []int) *Board {
	b := &Board{
		rows:      rows,
		cols:      cols,
		mineCount: len(mined),
		cells:     make([]cell, rows*cols),
		exploded:  -1,
	}
	for _, i := range mined {
		b.cells[i].mined = true
	}
	for _, i := range mined {
		for j := range b.neighbors(i) {
			b.cells[j].adjacent++
		}
	}
	return b
}

// neighbors yields the indices of the up to 8 cells around i.
func (b *Board) neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row, col := i/b.cols, i%b.cols
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := row+dr, col+dc
				if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
					continue
				}
				if !yield(r*b.cols + c) {
					return
				}
			}
		}
	}
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.cols, Col: i % b.cols}
}

func (b *Board) Rows() int      { return b.rows }
func (b *Board) Cols() int      { return b.cols }
func (b *Board) MineCount() int { return b.mineCount }
func (b *Board) FlagCount() int { return b.flagged }

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.rows && 0 <= col && col < b.cols
}

// target validates a mutating call and returns the index of its cell.
func (b *Board) target(row, col int) (int, error) {
	if state := b.State(); state != InProgress {
		return 0, fmt.Errorf("%w: game already %s", ErrGameOver, state)
	}
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf(
			"%w: %d:%d is outside the %dx%d grid",
			ErrOutOfBounds, row, col, b.rows, b.cols,
		)
	}
	return row*b.cols + col, nil
}

func (b *Board) setVisibility(i int, v Visibility) {
	c := &b.cells[i]
	if c.visibility == Flagged {
		b.flagged--
		if c.mined {
			b.flaggedMines--
		}
	}
	switch v {
	case Flagged:
		b.flagged++
		if c.mined {
			b.flaggedMines++
		}
	case Revealed:
		if c.mined {
			b.exploded = i
		} else {
			b.revealedSafe++
		}
	}
	c.visibility = v
}
