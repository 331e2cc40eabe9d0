package brickgame

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frame      uint64
	Phase      Phase
	Score      uint64
	Lines      int
	Locks      int
	Piece      PieceType
	Rotation   int
	X, Y       int
	Queue      [QueueSize]PieceType
	Rows       [Rows]Row
	IntervalMS int64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	piece, x, y := e.Falling()

	s := Snapshot{
		Frame:      g.frames,
		Phase:      e.Phase(),
		Score:      e.Score(),
		Lines:      e.Lines(),
		Locks:      e.Locks(),
		Piece:      piece.Type,
		Rotation:   piece.Rotation,
		X:          x,
		Y:          y,
		Queue:      e.Upcoming(),
		IntervalMS: e.Interval().Milliseconds(),
	}
	for row := range Rows {
		s.Rows[row] = e.RowBits(row)
	}
	return s
}
