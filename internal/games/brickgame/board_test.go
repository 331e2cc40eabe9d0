package brickgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow fills every column of row y except the listed ones.
func fillRow(b *Board, y int, skip ...int) {
	for col := range Cols {
		hole := false
		for _, s := range skip {
			if s == col {
				hole = true
			}
		}
		if !hole {
			b.Fill(y, col, TileGreen)
		}
	}
}

func TestCollidesBounds(t *testing.T) {
	b := NewBoard()
	horizontal := ShapeOf(PieceI, 0) // occupies shape row 2, columns 0..3

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"left edge", 0, 0, false},
		{"right edge", 4, 0, false},
		{"past right wall", 5, 0, true},
		{"past left wall", -1, 0, true},
		{"bottom row", 0, 13, false},
		{"below floor", 0, 14, true},
		{"empty rows above top", 0, -2, false},
		{"above top", 0, -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Collides(horizontal, tt.x, tt.y))
		})
	}
}

func TestCollidesWithStack(t *testing.T) {
	b := NewBoard()
	b.Fill(10, 3, TileRed)
	tee := ShapeOf(PieceT, 0) // row 1 col 1, row 2 cols 0..2

	assert.False(t, b.Collides(tee, 2, 7))
	assert.True(t, b.Collides(tee, 2, 8), "row 2 of the shape overlaps (10,3)")
	assert.True(t, b.Collides(tee, 2, 9), "row 1 of the shape overlaps (10,3)")
	assert.False(t, b.Collides(tee, 4, 8), "columns 4..6 are free")
}

func TestLockWritesOccupancyAndColor(t *testing.T) {
	b := NewBoard()
	b.Lock(NewPiece(PieceT), 2, 13)

	assert.Equal(t, Row(0b00010000), b.Row(14))
	assert.Equal(t, Row(0b00111000), b.Row(15))
	for _, cell := range [][2]int{{14, 3}, {15, 2}, {15, 3}, {15, 4}} {
		color, ok := b.ColorAt(cell[0], cell[1])
		require.True(t, ok, "cell %v", cell)
		assert.Equal(t, TilePink, color)
	}
	_, ok := b.ColorAt(14, 2)
	assert.False(t, ok)
	assert.True(t, b.Consistent())
}

func TestRowOutOfRangeIsFull(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, FullRow, b.Row(-1))
	assert.Equal(t, FullRow, b.Row(Rows))
	assert.Equal(t, Row(0), b.Row(0))
}

func TestClearSingleRowShiftsStackDown(t *testing.T) {
	b := NewBoard()
	fillRow(b, 15)
	b.Fill(14, 0, TileBlue)
	b.Fill(0, 5, TileOrange)

	rep := b.ClearLines(DefaultScorer())

	assert.Equal(t, 1, rep.Lines)
	assert.Equal(t, []int{1}, rep.Chains)
	assert.Equal(t, []int{15}, rep.Complete)
	assert.Equal(t, uint64(10), rep.Points)

	assert.Equal(t, Row(0b10000000), b.Row(15), "row 14 moved to 15")
	assert.Equal(t, Row(0b00000100), b.Row(1), "row 0 moved to 1")
	assert.Equal(t, Row(0), b.Row(0))
	color, ok := b.ColorAt(15, 0)
	require.True(t, ok)
	assert.Equal(t, TileBlue, color)
	assert.True(t, b.Consistent())
}

func TestClearChainScoring(t *testing.T) {
	tests := []struct {
		name   string
		full   []int
		lines  int
		chains []int
		points uint64
	}{
		{"single", []int{15}, 1, []int{1}, 10},
		{"double", []int{14, 15}, 2, []int{2}, 20},
		{"triple", []int{13, 14, 15}, 3, []int{3}, 3*10 + 25},
		{"tetris", []int{12, 13, 14, 15}, 4, []int{4}, 4*10 + 50},
		{"five", []int{11, 12, 13, 14, 15}, 5, []int{5}, 5*10 + 50 + 5*10},
		{"split runs", []int{10, 12, 13}, 3, []int{1, 2}, 30},
		{"two triples", []int{4, 5, 6, 10, 11, 12}, 6, []int{3, 3}, 60 + 25 + 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			for _, y := range tt.full {
				fillRow(b, y)
			}

			rep := b.ClearLines(DefaultScorer())

			assert.Equal(t, tt.lines, rep.Lines)
			assert.Equal(t, tt.chains, rep.Chains)
			assert.Equal(t, tt.points, rep.Points)
			assert.Equal(t, tt.full, rep.Complete)
			assert.True(t, b.Empty())
			assert.True(t, b.Consistent())
		})
	}
}

func TestClearKeepsPartialRowsInOrder(t *testing.T) {
	b := NewBoard()
	fillRow(b, 10)
	b.Fill(11, 1, TileRed)
	fillRow(b, 12)
	fillRow(b, 13)
	b.Fill(14, 2, TileBlue)
	b.Fill(15, 3, TileYellow)

	rep := b.ClearLines(DefaultScorer())

	assert.Equal(t, []int{1, 2}, rep.Chains)
	assert.Equal(t, Row(0b01000000), b.Row(13), "row 11 dropped by three")
	assert.Equal(t, Row(0b00100000), b.Row(14))
	assert.Equal(t, Row(0b00010000), b.Row(15))
	for y := range 13 {
		assert.Equal(t, Row(0), b.Row(y), "row %d", y)
	}
	assert.True(t, b.Consistent())
}

func TestClearWholeBoard(t *testing.T) {
	b := NewBoard()
	for y := range Rows {
		fillRow(b, y)
	}

	rep := b.ClearLines(DefaultScorer())

	assert.Equal(t, Rows, rep.Lines)
	assert.Equal(t, []int{Rows}, rep.Chains)
	assert.Equal(t, uint64(Rows*10+50+Rows*10), rep.Points)
	assert.True(t, b.Empty())
}

func TestClearWithoutCompleteRows(t *testing.T) {
	b := NewBoard()
	fillRow(b, 15, 7)
	before := b.String()

	rep := b.ClearLines(DefaultScorer())

	assert.Zero(t, rep.Lines)
	assert.Zero(t, rep.Points)
	assert.Empty(t, rep.Chains)
	assert.Equal(t, before, b.String())
}

func TestChainBonus(t *testing.T) {
	s := DefaultScorer()
	assert.Zero(t, s.ChainBonus(0))
	assert.Zero(t, s.ChainBonus(1))
	assert.Zero(t, s.ChainBonus(2))
	assert.Equal(t, uint64(25), s.ChainBonus(3))
	assert.Equal(t, uint64(50), s.ChainBonus(4))
	assert.Equal(t, uint64(100), s.ChainBonus(5))
	assert.Equal(t, uint64(110), s.ChainBonus(6))
}
