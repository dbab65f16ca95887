package mines

import "fmt"

type GameState int8

const (
	InProgress GameState = iota
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("GameState(%d)", int8(s))
	}
}

type RevealResult int8

const (
	NoEffect RevealResult = iota // target was not hidden, nothing changed
	HitMine                      // target was mined, the game is lost
	Opened                       // safe cells were revealed
	Win                          // safe cells were revealed and none are left
)

func (r RevealResult) String() string {
	switch r {
	case NoEffect:
		return "no effect"
	case HitMine:
		return "hit mine"
	case Opened:
		return "opened"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("RevealResult(%d)", int8(r))
	}
}

type RevealOutcome struct {
	Result RevealResult
	// Cells revealed by the call, in reveal order. For HitMine it holds the
	// mined cell only.
	Points []Point
}

type MarkOutcome struct {
	Point      Point
	Visibility Visibility
	State      GameState
}

// State evaluates the game. A revealed mine loses; the game is won once
// every safe cell is revealed or once the flagged cells are exactly the
// mined cells.
func (b *Board) State() GameState {
	switch {
	case b.exploded >= 0:
		return Lost
	case b.revealedSafe == len(b.cells)-b.mineCount:
		return Won
	/* The empty flag set never wins a board without mines. */
	case b.mineCount > 0 &&
		b.flagged == b.mineCount && b.flaggedMines == b.mineCount:
		return Won
	}
	return InProgress
}

// Reveal opens the cell at row, col. Opening a cell with no mined
// neighbours also opens every hidden safe cell connected to it through
// other such cells; flags and question marks stop the spread.
func (b *Board) Reveal(row, col int) (RevealOutcome, error) {
	i, err := b.target(row, col)
	if err != nil {
		return RevealOutcome{}, err
	}

	c := &b.cells[i]
	if c.visibility != Hidden {
		return RevealOutcome{Result: NoEffect}, nil
	}

	if c.mined {
		b.setVisibility(i, Revealed)
		return RevealOutcome{Result: HitMine, Points: []Point{b.point(i)}}, nil
	}

	opened := b.floodFill(i)
	result := Opened
	if b.State() == Won {
		result = Win
	}
	return RevealOutcome{Result: result, Points: opened}, nil
}

func (b *Board) floodFill(start int) []Point {
	var (
		opened  []Point
		visited = make([]bool, len(b.cells))
		stack   = []int{start}
	)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] {
			continue
		}
		visited[i] = true

		c := &b.cells[i]
		if c.visibility != Hidden || c.mined {
			continue
		}
		b.setVisibility(i, Revealed)
		opened = append(opened, b.point(i))

		if c.adjacent > 0 {
			continue
		}
		for j := range b.neighbors(i) {
			if !visited[j] {
				stack = append(stack, j)
			}
		}
	}
	return opened
}

// Flag toggles a flag on the cell at row, col. A question mark is replaced
// by the flag.
func (b *Board) Flag(row, col int) (MarkOutcome, error) {
	return b.toggleMark(row, col, Flagged)
}

// Question toggles a question mark on the cell at row, col. A flag is
// replaced by the question mark.
func (b *Board) Question(row, col int) (MarkOutcome, error) {
	return b.toggleMark(row, col, Questioned)
}

func (b *Board) toggleMark(row, col int, mark Visibility) (MarkOutcome, error) {
	i, err := b.target(row, col)
	if err != nil {
		return MarkOutcome{}, err
	}

	c := &b.cells[i]
	if c.visibility == Revealed {
		return MarkOutcome{}, fmt.Errorf(
			"%w: cannot mark revealed cell %d:%d as %s",
			ErrInvalidTransition, row, col, mark,
		)
	}

	next := mark
	if c.visibility == mark {
		next = Hidden
	}
	b.setVisibility(i, next)

	return MarkOutcome{
		Point:      b.point(i),
		Visibility: next,
		State:      b.State(),
	}, nil
}
