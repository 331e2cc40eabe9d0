// Package brickgame implements a falling-block puzzle on an 8x16 board with
// bit-packed rows, chain scoring and a score-driven gravity curve.
package brickgame

import "time"

// Phase is the lifecycle state of an engine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a new engine. Zero fields fall back to the classic
// defaults.
type Options struct {
	Scorer     *Scorer
	Gravity    *Gravity
	Randomizer Randomizer
	Seed       int64 // Used for a uniform randomizer when Randomizer is nil
}

// Engine owns the whole simulation state: board, queue, falling piece and
// score. It is not safe for concurrent use; a single owner must serialize
// every call.
type Engine struct {
	board   *Board
	queue   *Queue
	scorer  Scorer
	gravity Gravity

	piece Piece
	x, y  int

	score    uint64
	lines    int
	locks    int
	paused   bool
	gameOver bool
	last     ClearReport
}

// NewEngine creates an engine with an empty board and spawns the first
// piece.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		board:   NewBoard(),
		scorer:  DefaultScorer(),
		gravity: DefaultGravity(),
	}
	if opts.Scorer != nil {
		e.scorer = *opts.Scorer
	}
	if opts.Gravity != nil {
		e.gravity = *opts.Gravity
	}
	src := opts.Randomizer
	if src == nil {
		src = NewUniformRandomizer(opts.Seed)
	}
	e.queue = NewQueue(src)
	e.spawn()
	return e
}

// SpawnPosition returns where a freshly popped piece with the given shape
// enters the board: top row, occupied columns centered.
func SpawnPosition(shape Shape) (x, y int) {
	first, _, ok := shape.Span()
	if !ok {
		return 0, 0
	}
	return (Cols-shape.Width())/2 - first, 0
}

// Tick advances gravity by one step. If the piece cannot descend it is
// locked, complete rows are cleared and the next piece spawns. It returns
// the interval until the next tick; changed is false once the game is over.
// While paused, a tick changes nothing and asks to be polled again soon.
func (e *Engine) Tick() (next time.Duration, changed bool) {
	if e.gameOver {
		return 0, false
	}
	if e.paused {
		return e.gravity.PausedPoll, true
	}
	if !e.tryMove(0, 1) {
		e.lockAndAdvance()
	}
	return e.Interval(), true
}

// Interval returns the current gravity period.
func (e *Engine) Interval() time.Duration {
	return e.gravity.Interval(e.score)
}

// Move shifts the falling piece by (dx, dy) if the target is free. It
// reports whether the move applied.
func (e *Engine) Move(dx, dy int) bool {
	if e.gameOver || e.paused {
		return false
	}
	return e.tryMove(dx, dy)
}

// SoftDrop moves the piece down one row if possible.
func (e *Engine) SoftDrop() bool {
	return e.Move(0, 1)
}

// Rotate advances the piece to its next rotation state when that state fits
// at the current position. There is no kick search.
func (e *Engine) Rotate() {
	if e.gameOver || e.paused {
		return
	}
	next := e.piece.Rotated()
	if !e.board.Collides(next.Shape, e.x, e.y) {
		e.piece = next
	}
}

// HardDrop drops the piece as far as it goes and locks it immediately.
func (e *Engine) HardDrop() {
	if e.gameOver || e.paused {
		return
	}
	for e.tryMove(0, 1) {
	}
	e.lockAndAdvance()
}

// TogglePause flips the paused flag. It has no effect after game over.
func (e *Engine) TogglePause() {
	if e.gameOver {
		return
	}
	e.paused = !e.paused
}

// Ghost returns where the falling piece would land if dropped now.
func (e *Engine) Ghost() (x, y int) {
	y = e.y
	for !e.board.Collides(e.piece.Shape, e.x, y+1) {
		y++
	}
	return e.x, y
}

func (e *Engine) tryMove(dx, dy int) bool {
	if e.board.Collides(e.piece.Shape, e.x+dx, e.y+dy) {
		return false
	}
	e.x += dx
	e.y += dy
	return true
}

func (e *Engine) lockAndAdvance() {
	e.board.Lock(e.piece, e.x, e.y)
	e.locks++
	e.last = e.board.ClearLines(e.scorer)
	e.score += e.last.Points
	e.lines += e.last.Lines
	e.spawn()
}

// spawn takes the next piece from the queue. A spawn that overlaps the stack
// ends the game.
func (e *Engine) spawn() {
	e.piece = e.queue.Pop()
	e.x, e.y = SpawnPosition(e.piece.Shape)
	if e.board.Collides(e.piece.Shape, e.x, e.y) {
		e.gameOver = true
		e.paused = false
	}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	switch {
	case e.gameOver:
		return PhaseGameOver
	case e.paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Paused reports whether the simulation is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether a spawn collided with the stack.
func (e *Engine) GameOver() bool { return e.gameOver }

// Score returns the accumulated score.
func (e *Engine) Score() uint64 { return e.score }

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// Locks returns how many pieces have been locked.
func (e *Engine) Locks() int { return e.locks }

// LastClear returns the report of the most recent lock.
func (e *Engine) LastClear() ClearReport { return e.last }

// Falling returns the falling piece and its board offset.
func (e *Engine) Falling() (piece Piece, x, y int) {
	return e.piece, e.x, e.y
}

// Upcoming returns the queued piece types in spawn order.
func (e *Engine) Upcoming() [QueueSize]PieceType {
	return e.queue.Items()
}

// ColorAt returns the color of the locked cell at (row, col), if any.
func (e *Engine) ColorAt(row, col int) (TileColor, bool) {
	return e.board.ColorAt(row, col)
}

// RowBits returns the occupancy of board row y.
func (e *Engine) RowBits(y int) Row {
	return e.board.Row(y)
}
