package engine

import "time"

// Stepper converts wall-clock timestamps from the outer frame driver into
// bounded simulation deltas. Clamping the delta keeps a stalled terminal or a
// slow frame from producing a jump large enough to tunnel the body through a
// pipe. A delta of zero is valid and yields a no-op tick.
type Stepper struct {
	last     time.Time
	maxDelta float64
}

// NewStepper returns a stepper that clamps deltas to maxDelta seconds.
func NewStepper(maxDelta float64) *Stepper {
	return &Stepper{maxDelta: maxDelta}
}

// Delta returns the simulation delta for a frame arriving at now. The first
// call after construction or Reset returns 0. Clock skew (now before the
// previous frame) also returns 0 rather than a negative delta.
func (s *Stepper) Delta(now time.Time) float64 {
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	dt := now.Sub(s.last).Seconds()
	s.last = now
	if dt < 0 {
		return 0
	}
	if dt > s.maxDelta {
		return s.maxDelta
	}
	return dt
}

// Skip advances the reference timestamp without producing a delta. Used while
// the game is paused so that unpausing does not replay the paused interval.
func (s *Stepper) Skip(now time.Time) {
	s.last = now
}

// Reset forgets the reference timestamp; the next Delta call returns 0.
func (s *Stepper) Reset() {
	s.last = time.Time{}
}
