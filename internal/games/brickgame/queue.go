package brickgame

import "math/rand"

// QueueSize is the number of upcoming pieces kept in the queue.
const QueueSize = 3

// Randomizer produces the sequence of piece types fed into the queue.
type Randomizer interface {
	Next() PieceType
}

// UniformRandomizer draws every piece independently with equal probability.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer returns a uniform randomizer seeded with seed.
func NewUniformRandomizer(seed int64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece type.
func (u *UniformRandomizer) Next() PieceType {
	return PieceType(u.rng.Intn(PieceTypeCount))
}

// BagRandomizer deals shuffled bags containing each piece type once, so no
// type can be absent for more than twelve pieces in a row.
type BagRandomizer struct {
	rng *rand.Rand
	bag []PieceType
}

// NewBagRandomizer returns a bag randomizer seeded with seed.
func NewBagRandomizer(seed int64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece type, refilling the bag when it runs out.
func (b *BagRandomizer) Next() PieceType {
	if len(b.bag) == 0 {
		b.bag = make([]PieceType, PieceTypeCount)
		for i := range b.bag {
			b.bag[i] = PieceType(i)
		}
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	t := b.bag[0]
	b.bag = b.bag[1:]
	return t
}

// Queue is the lookahead buffer of upcoming pieces. Popping the front shifts
// the rest forward and appends a fresh piece at the back.
type Queue struct {
	items [QueueSize]PieceType
	src   Randomizer
}

// NewQueue fills a queue from src.
func NewQueue(src Randomizer) *Queue {
	q := &Queue{src: src}
	for i := range q.items {
		q.items[i] = src.Next()
	}
	return q
}

// Peek returns the piece type at index i (0 is the next to be popped).
// It returns false for an index outside [0, QueueSize).
func (q *Queue) Peek(i int) (PieceType, bool) {
	if i < 0 || i >= QueueSize {
		return 0, false
	}
	return q.items[i], true
}

// Items returns the queued types in pop order.
func (q *Queue) Items() [QueueSize]PieceType {
	return q.items
}

// Pop removes and returns the front piece.
func (q *Queue) Pop() Piece {
	front := q.items[0]
	copy(q.items[:], q.items[1:])
	q.items[QueueSize-1] = q.src.Next()
	return NewPiece(front)
}
