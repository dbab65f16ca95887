package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Question         CellState = -3
	Unknown          CellState = -2
	Flag             CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * Each item in a view grid is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is revealed and has that many mined
	 * 	  neighbours.
	 *
	 * 	- -1 means the cell is flagged, -3 that it carries a question
	 * 	  mark, -2 that it is covered and unmarked.
	 *
	 * 	- 64 to 67 only appear once the game is over: a flagged mine, the
	 * 	  mine that was hit, a flag on a safe cell and a mine nobody
	 * 	  flagged.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Question:
		return "?"
	case s == Unknown:
		return "#"
	case s == Flag, s == CorrectlyFlagged:
		return "F"
	case s == 0:
		return "."
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	case s == ExplodedMine:
		return "X"
	case s == FalselyFlagged:
		return "x"
	case s == UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8
}

// Mine reports whether the cell holds a mine, and whether that is known at
// all to the holder of the view.
func (s CellState) Mine() (mined, known bool) {
	switch {
	case s == CorrectlyFlagged, s == ExplodedMine, s == UnflaggedMine:
		return true, true
	case s == FalselyFlagged, s.Revealed():
		return false, true
	default:
		return false, false
	}
}

type Grid []CellState

// View is what a board shows to the outside. While the game is in progress
// it carries nothing about covered cells beyond their marks.
type View struct {
	Rows, Cols int
	MineCount  int
	FlagCount  int
	State      GameState
	Grid       Grid
}

func (v View) At(row, col int) CellState {
	return v.Grid[row*v.Cols+col]
}

func (v View) Row(row int) []CellState {
	return v.Grid[row*v.Cols : (row+1)*v.Cols]
}

func (v View) String() string {
	var b strings.Builder
	for row := range v.Rows {
		for col, s := range v.Row(row) {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Snapshot projects the board for display. Once the game is over every cell
// is disclosed.
func (b *Board) Snapshot() View {
	state := b.State()
	grid := make(Grid, len(b.cells))
	for i := range b.cells {
		if state == InProgress {
			grid[i] = b.playerState(i)
		} else {
			grid[i] = b.disclosedState(i)
		}
	}
	return View{
		Rows:      b.rows,
		Cols:      b.cols,
		MineCount: b.mineCount,
		FlagCount: b.flagged,
		State:     state,
		Grid:      grid,
	}
}

func (b *Board) playerState(i int) CellState {
	c := b.cells[i]
	switch c.visibility {
	case Revealed:
		return CellState(c.adjacent)
	case Flagged:
		return Flag
	case Questioned:
		return Question
	default:
		return Unknown
	}
}

func (b *Board) disclosedState(i int) CellState {
	c := b.cells[i]
	switch {
	case i == b.exploded:
		return ExplodedMine
	case c.visibility == Flagged && c.mined:
		return CorrectlyFlagged
	case c.visibility == Flagged:
		return FalselyFlagged
	case c.mined:
		return UnflaggedMine
	default:
		return CellState(c.adjacent)
	}
}
