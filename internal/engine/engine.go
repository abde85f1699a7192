package engine

import "time"

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseIdle: the body exists but is not integrated; waiting for the
	// player to start (explicitly or with a first flap).
	PhaseIdle Phase = iota
	// PhaseRunning: physics active.
	PhaseRunning
	// PhaseEnded: terminal until Retry creates a new session.
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// session aggregates the per-run state: the body, the pipes ordered oldest to
// newest, and the score. A fresh session is built on construction and on
// every retry.
type session struct {
	body  Body
	pipes []Pipe
	score int
}

// Engine owns one live session at a time and mediates every mutation of it.
// It is driven by an external per-frame callback (Advance) and is not safe
// for concurrent use: all calls must come from a single goroutine, the same
// single-writer discipline the Bubble Tea update loop provides upstream.
type Engine struct {
	tuning   Tuning
	field    Playfield
	stepper  *Stepper
	spawner  *Spawner
	sess     session
	phase    Phase
	paused   bool
	best     int
	store    RecordStore
	listener Listener
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithListener wires the gameplay event collaborator.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listener = l }
}

// WithRecordStore wires the best-record persistence collaborator. The stored
// best is loaded immediately; a load failure leaves the best at 0.
func WithRecordStore(s RecordStore) Option {
	return func(e *Engine) { e.store = s }
}

// New creates an engine in the idle phase with a fresh session. rnd feeds
// pipe placement, the simulation's only randomness.
func New(t Tuning, rnd Rand, opts ...Option) *Engine {
	e := &Engine{
		tuning:   t,
		field:    DefaultPlayfield(),
		stepper:  NewStepper(t.MaxDelta),
		spawner:  NewSpawner(t.SpawnInterval, rnd),
		store:    &MemoryRecord{},
		listener: NopListener{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if best, err := e.store.Best(); err == nil {
		e.best = best
	}
	e.resetSession()
	return e
}

// SetPlayfield updates the virtual playfield geometry. Pipe placement and
// collision bounds read it at the start of every tick, so a resize takes
// effect immediately. While idle the body is re-centered to the new height.
func (e *Engine) SetPlayfield(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	e.field = Playfield{W: w, H: h}
	if e.phase == PhaseIdle {
		e.sess.body.Y = h / 2
	}
}

// Playfield returns the current virtual playfield.
func (e *Engine) Playfield() Playfield {
	return e.field
}

// Start transitions idle -> running. Calling it while already running or
// ended is a no-op, which keeps the "start button" and "start on first flap"
// triggers safely interchangeable.
func (e *Engine) Start() {
	if e.phase == PhaseIdle {
		e.phase = PhaseRunning
	}
}

// Flap applies the upward impulse. Valid whenever the body is alive; while
// idle it also starts the session. While ended it does nothing.
func (e *Engine) Flap() {
	if e.phase == PhaseEnded || !e.sess.body.Alive {
		return
	}
	e.Start()
	e.sess.body.flap(e.tuning.FlapImpulse)
	e.listener.Flapped()
}

// Retry discards the ended session and builds a fresh idle one. No-op unless
// the session has ended.
func (e *Engine) Retry() {
	if e.phase != PhaseEnded {
		return
	}
	e.resetSession()
	e.phase = PhaseIdle
}

// TogglePause flips the orthogonal paused flag. Pausing withholds ticks from
// the simulation entirely and alters no session data, so it can be toggled in
// any phase.
func (e *Engine) TogglePause() {
	e.paused = !e.paused
}

// Paused reports the paused flag.
func (e *Engine) Paused() bool {
	return e.paused
}

// Phase returns the session lifecycle state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the live session's score.
func (e *Engine) Score() int {
	return e.sess.score
}

// Best returns the best record across sessions.
func (e *Engine) Best() int {
	return e.best
}

// Advance runs one simulation tick for a frame arriving at now. Paused is
// checked before any state mutation; while paused the reference clock is
// advanced so that unpausing does not replay the paused interval.
func (e *Engine) Advance(now time.Time) {
	if e.paused {
		e.stepper.Skip(now)
		return
	}
	e.Step(e.stepper.Delta(now))
}

func (e *Engine) resetSession() {
	e.sess = session{
		body:  newBody(e.tuning, e.field),
		pipes: e.sess.pipes[:0],
	}
	e.spawner.Reset()
	e.stepper.Reset()
}
