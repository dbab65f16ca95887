package mines

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layout builds a board from rows of text where '*' marks a mine.
func layout(t *testing.T, rows ...string) *Board {
	t.Helper()
	var mined []Point
	for r, row := range rows {
		for c, ch := range row {
			if ch == '*' {
				mined = append(mined, Point{Row: r, Col: c})
			}
		}
	}
	b, err := NewFromLayout(len(rows), len(rows[0]), mined)
	require.NoError(t, err)
	return b
}

func clone(b *Board) *Board {
	c := *b
	c.cells = slices.Clone(b.cells)
	return &c
}

func naiveAdjacent(b *Board, row, col int) (count int8) {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if (r == row && c == col) || !b.InBounds(r, c) {
				continue
			}
			if b.cells[r*b.cols+c].mined {
				count++
			}
		}
	}
	return
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		rows, cols, mine int
	}{
		{"zero rows", 0, 5, 0},
		{"zero cols", 5, 0, 0},
		{"negative rows", -1, 5, 0},
		{"negative mines", 5, 5, -1},
		{"all cells mined", 5, 5, 25},
		{"more mines than cells", 2, 2, 10},
		{"single cell with mine", 1, 1, 1},
		{"too large", math.MaxInt32, 2, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b, err := New(test.rows, test.cols, test.mine, rand.New(rand.NewPCG(1, 2)))
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, b)
		})
	}
}

func TestNewPlacesMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rows, cols, mines int
	}{
		{1, 1, 0},
		{1, 2, 1},
		{2, 2, 3},
		{9, 9, 10},
		{16, 16, 40},
		{16, 30, 99},
		{5, 5, 24},
	}

	r := rand.New(rand.NewPCG(1, 2))
	for _, test := range tests {
		b, err := New(test.rows, test.cols, test.mines, r)
		require.NoError(t, err)

		assert.Equal(t, test.rows, b.Rows())
		assert.Equal(t, test.cols, b.Cols())
		assert.Equal(t, test.mines, b.MineCount())
		assert.Equal(t, InProgress, b.State())

		mined := 0
		for i, c := range b.cells {
			if c.mined {
				mined++
			}
			p := b.point(i)
			assert.Equal(t, naiveAdjacent(b, p.Row, p.Col), c.adjacent,
				"adjacency of %s", p)
			assert.Equal(t, Hidden, c.visibility)
		}
		assert.Equal(t, test.mines, mined)
	}
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a, err := New(16, 16, 40, rand.New(rand.NewPCG(7, 9)))
	require.NoError(t, err)
	b, err := New(16, 16, 40, rand.New(rand.NewPCG(7, 9)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestNewWithoutRand(t *testing.T) {
	t.Parallel()

	b, err := New(9, 9, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, b.MineCount())
}

func TestNewFromLayout(t *testing.T) {
	t.Parallel()

	b := layout(t,
		"*..",
		".*.",
		"...",
	)
	assert.Equal(t, 2, b.MineCount())
	assert.Equal(t, int8(2), b.cells[1].adjacent)
	assert.Equal(t, int8(1), b.cells[8].adjacent)

	tests := []struct {
		name  string
		mines []Point
	}{
		{"row outside", []Point{{Row: 3, Col: 0}}},
		{"col outside", []Point{{Row: 0, Col: -1}}},
		{"duplicate", []Point{{Row: 1, Col: 1}, {Row: 1, Col: 1}}},
		{"every cell", []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewFromLayout(2, 2, test.mines)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestDefaultMineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rows, cols, want int
	}{
		{1, 1, 0},
		{2, 2, 1},
		{9, 9, 12},
		{16, 16, 38},
		{16, 30, 72},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, DefaultMineCount(test.rows, test.cols),
			"%dx%d", test.rows, test.cols)
	}
}
