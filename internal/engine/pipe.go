package engine

// Pipe is one gated obstacle: two vertical segments separated by a passable
// gap. Bottom always equals Top + the tuned gap height. Passed is set exactly
// once, when the trailing edge crosses the body's x position, and is what
// scores the pipe.
type Pipe struct {
	X      float64 // left edge
	Top    float64 // gap-top offset from the ceiling
	Bottom float64 // gap-bottom offset, Top + gap height
	Passed bool
}

// advance scrolls the pipe leftward.
func (p *Pipe) advance(dx float64) {
	p.X -= dx
}

// markPassed sets the passed flag. Returns false if it was already set.
func (p *Pipe) markPassed() bool {
	if p.Passed {
		return false
	}
	p.Passed = true
	return true
}

// Rand is the source of randomness for pipe placement, the only randomness in
// the simulation. Tests inject deterministic sequences; production wraps
// math/rand.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Spawner emits a new pipe each time its timer accumulates the spawn
// interval of simulation time.
type Spawner struct {
	timer    float64
	interval float64
	rnd      Rand
}

// NewSpawner returns a spawner emitting every interval seconds.
func NewSpawner(interval float64, rnd Rand) *Spawner {
	return &Spawner{interval: interval, rnd: rnd}
}

// Reset zeroes the accumulated timer.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Tick accumulates dt and, when the interval is reached, resets the timer and
// returns a freshly placed pipe at the right edge of the field.
func (s *Spawner) Tick(dt float64, field Playfield, t Tuning) (Pipe, bool) {
	s.timer += dt
	if s.timer < s.interval {
		return Pipe{}, false
	}
	s.timer = 0
	return s.place(field, t), true
}

// place picks the gap-top offset uniformly from [minTop, maxTop]. maxTop
// keeps the whole gap above the ground band; on a degenerate field (too short
// for both margins) maxTop collapses onto minTop instead of failing.
func (s *Spawner) place(field Playfield, t Tuning) Pipe {
	minTop := t.TopMargin
	maxTop := field.H - t.GapHeight - t.GroundHeight
	if maxTop < minTop {
		maxTop = minTop
	}
	top := minTop + s.rnd.Float64()*(maxTop-minTop)
	return Pipe{
		X:      field.W,
		Top:    top,
		Bottom: top + t.GapHeight,
	}
}
