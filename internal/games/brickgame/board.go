package brickgame

// Cell is one entry of the display grid.
type Cell struct {
	Filled bool
	Color  TileColor
}

// Board is the stack of locked cells. Occupancy rows are the collision
// surface; the cell grid mirrors them for display. A cell is Filled exactly
// when its occupancy bit is set.
type Board struct {
	rows  [Rows]Row
	cells [Rows][Cols]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Row returns the occupancy of row y. Out-of-range rows are reported full.
func (b *Board) Row(y int) Row {
	if y < 0 || y >= Rows {
		return FullRow
	}
	return b.rows[y]
}

// ColorAt returns the color of the locked cell at (row, col), if any.
func (b *Board) ColorAt(row, col int) (TileColor, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, false
	}
	c := b.cells[row][col]
	return c.Color, c.Filled
}

// Fill sets a single cell. It is used to build positions directly.
func (b *Board) Fill(row, col int, color TileColor) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return
	}
	b.rows[row] = b.rows[row].With(col)
	b.cells[row][col] = Cell{Filled: true, Color: color}
}

// Collides reports whether shape placed with its top-left corner at (x, y)
// overlaps the stack or leaves the field. Rows of the shape with no
// occupied cells are never checked, so an empty top row may sit above the
// board.
func (b *Board) Collides(shape Shape, x, y int) bool {
	for i, r := range shape {
		if r == 0 {
			continue
		}
		by := y + i
		if by < 0 || by >= Rows {
			return true
		}
		shifted, ok := r.Shift(x)
		if !ok {
			return true
		}
		if b.rows[by]&shifted != 0 {
			return true
		}
	}
	return false
}

// Lock merges piece into the stack at (x, y). The placement must be legal;
// cells that would land outside the field are dropped.
func (b *Board) Lock(piece Piece, x, y int) {
	color := piece.Color()
	for i, r := range piece.Shape {
		by := y + i
		if r == 0 || by < 0 || by >= Rows {
			continue
		}
		shifted, ok := r.Shift(x)
		if !ok {
			continue
		}
		b.rows[by] |= shifted
		for c := range Cols {
			if shifted.Has(c) {
				b.cells[by][c] = Cell{Filled: true, Color: color}
			}
		}
	}
}

// ClearReport summarizes one line-clear pass.
type ClearReport struct {
	Lines    int   // Total rows removed
	Chains   []int // Length of each run of consecutive complete rows, top to bottom
	Points   uint64
	Complete []int // Indices of the removed rows as they were before the pass
}

// ClearLines removes every complete row, compacting the stack downward, and
// scores the pass with s. Rows are scanned top to bottom. Removing row y
// shifts rows 0..y-1 down by one, so every row that moves has already been
// scanned and is known to be incomplete; the scan simply continues at y+1.
func (b *Board) ClearLines(s Scorer) ClearReport {
	var rep ClearReport
	chain := 0
	for y := range Rows {
		if b.rows[y].Full() {
			b.removeRow(y)
			rep.Complete = append(rep.Complete, y)
			rep.Lines++
			rep.Points += s.LinePoints
			chain++
			continue
		}
		if chain > 0 {
			rep.Points += s.ChainBonus(chain)
			rep.Chains = append(rep.Chains, chain)
		}
		chain = 0
	}
	if chain > 0 {
		rep.Points += s.ChainBonus(chain)
		rep.Chains = append(rep.Chains, chain)
	}
	return rep
}

// removeRow discards row y and moves every row above it down by one,
// leaving row 0 empty.
func (b *Board) removeRow(y int) {
	copy(b.rows[1:y+1], b.rows[0:y])
	copy(b.cells[1:y+1], b.cells[0:y])
	b.rows[0] = 0
	b.cells[0] = [Cols]Cell{}
}

// Empty reports whether no cell is occupied.
func (b *Board) Empty() bool {
	for _, r := range b.rows {
		if r != 0 {
			return false
		}
	}
	return true
}

// Consistent reports whether the display grid agrees with the occupancy rows.
func (b *Board) Consistent() bool {
	for y := range Rows {
		for c := range Cols {
			if b.rows[y].Has(c) != b.cells[y][c].Filled {
				return false
			}
		}
	}
	return true
}

// String renders the occupancy rows, one line per row.
func (b *Board) String() string {
	out := make([]byte, 0, Rows*(Cols+1))
	for y, r := range b.rows {
		if y > 0 {
			out = append(out, '\n')
		}
		out = append(out, r.String()...)
	}
	return string(out)
}
