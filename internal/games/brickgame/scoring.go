package brickgame

// Scorer holds the point values for line clears.
type Scorer struct {
	LinePoints  uint64 // Awarded for every removed row
	Chain3Bonus uint64 // Extra for a run of exactly three rows
	Chain4Bonus uint64 // Extra for a run of exactly four rows, and the base for longer runs
	ChainStep   uint64 // Per-row extra on top of Chain4Bonus for runs longer than four
}

// DefaultScorer returns the classic point table.
func DefaultScorer() Scorer {
	return Scorer{
		LinePoints:  10,
		Chain3Bonus: 25,
		Chain4Bonus: 50,
		ChainStep:   10,
	}
}

// ChainBonus returns the bonus for a closed run of n consecutive complete
// rows. Runs shorter than three earn nothing beyond their line points.
func (s Scorer) ChainBonus(n int) uint64 {
	switch {
	case n == 3:
		return s.Chain3Bonus
	case n == 4:
		return s.Chain4Bonus
	case n > 4:
		return s.Chain4Bonus + uint64(n)*s.ChainStep
	default:
		return 0
	}
}
