package brickgame

import "time"

// Gravity defines how fast the falling piece descends.
type Gravity struct {
	Base         time.Duration // Interval at score 0
	Min          time.Duration // Floor for the interval
	ScoreDivisor uint64        // Every ScoreDivisor points shave 1ms off Base; 0 disables speed-up
	PausedPoll   time.Duration // Re-poll interval while paused
}

// DefaultGravity returns the classic timing: 800ms shrinking by 1ms every
// 10 points, never below 1ms.
func DefaultGravity() Gravity {
	return Gravity{
		Base:         800 * time.Millisecond,
		Min:          time.Millisecond,
		ScoreDivisor: 10,
		PausedPoll:   5 * time.Millisecond,
	}
}

// Interval returns the gravity period for the given score.
func (g Gravity) Interval(score uint64) time.Duration {
	interval := g.Base
	if g.ScoreDivisor > 0 {
		cut := time.Duration(score/g.ScoreDivisor) * time.Millisecond
		if cut >= interval {
			interval = 0
		} else {
			interval -= cut
		}
	}
	return max(interval, g.Min, time.Millisecond)
}

// Scheduler accumulates host time and reports when the next gravity tick is
// due. It never runs on its own: the owner of the engine polls it from its
// single loop, so ticks and input never interleave mid-operation.
type Scheduler struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewScheduler returns a scheduler armed with interval.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{interval: max(interval, time.Millisecond)}
}

// Interval returns the current period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Advance adds dt of host time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.elapsed += dt
	}
}

// Due reports whether a tick should fire.
func (s *Scheduler) Due() bool {
	return s.elapsed >= s.interval
}

// Fire consumes one period and rearms with next when changed is true.
func (s *Scheduler) Fire(next time.Duration, changed bool) {
	s.elapsed -= s.interval
	if s.elapsed < 0 {
		s.elapsed = 0
	}
	if changed {
		s.interval = max(next, time.Millisecond)
	}
}

// Reset clears accumulated time and rearms with interval.
func (s *Scheduler) Reset(interval time.Duration) {
	s.elapsed = 0
	s.interval = max(interval, time.Millisecond)
}
