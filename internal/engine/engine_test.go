package engine

import (
	"testing"
	"time"
)

// recordingListener captures emitted events for assertions.
type recordingListener struct {
	flaps  int
	scores []int
	deaths []struct {
		score   int
		newBest bool
	}
}

func (l *recordingListener) Flapped()         { l.flaps++ }
func (l *recordingListener) Scored(score int) { l.scores = append(l.scores, score) }
func (l *recordingListener) Died(s int, b bool) {
	l.deaths = append(l.deaths, struct {
		score   int
		newBest bool
	}{s, b})
}

func newTestEngine(opts ...Option) *Engine {
	e := New(DefaultTuning(), fixedRand{0.5}, opts...)
	e.SetPlayfield(640, 480)
	return e
}

func TestZeroDeltaIsNoOp(t *testing.T) {
	e := newTestEngine()
	e.Start()
	before := e.Snapshot()

	e.Step(0)

	after := e.Snapshot()
	if after.Body != before.Body || after.Score != before.Score || after.Phase != before.Phase {
		t.Error("dt = 0 tick must leave the session unchanged")
	}
}

func TestIdleDoesNotIntegrate(t *testing.T) {
	e := newTestEngine()
	y := e.Snapshot().Body.Y

	for i := 0; i < 100; i++ {
		e.Step(0.016)
	}

	if got := e.Snapshot().Body.Y; got != y {
		t.Errorf("idle body moved from %f to %f", y, got)
	}
}

func TestFlapStartsSession(t *testing.T) {
	e := newTestEngine()
	if e.Phase() != PhaseIdle {
		t.Fatalf("expected idle phase, got %v", e.Phase())
	}

	e.Flap()

	if e.Phase() != PhaseRunning {
		t.Errorf("first flap should start the session, phase is %v", e.Phase())
	}
	if vy := e.Snapshot().Body.Vy; vy != DefaultTuning().FlapImpulse {
		t.Errorf("flap should set vy to %f, got %f", DefaultTuning().FlapImpulse, vy)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	e := newTestEngine()
	e.Start()
	e.Step(0.016)
	snap := e.Snapshot()

	e.Start()

	after := e.Snapshot()
	if after.Body != snap.Body || after.Phase != PhaseRunning {
		t.Error("Start while running must be a no-op")
	}
}

func TestFlapWhileEndedIsNoOp(t *testing.T) {
	e := newTestEngine()
	e.Start()
	crash(e)

	e.Flap()

	if e.Phase() != PhaseEnded {
		t.Errorf("flap after death must not revive the session, phase %v", e.Phase())
	}
}

// crash drives the body into the ground.
func crash(e *Engine) {
	e.sess.body.Y = e.field.H
	e.Step(0.001)
}

func TestGroundCollisionEndsSession(t *testing.T) {
	e := newTestEngine()
	e.Start()

	// With radius 18, height 480 and ground 58 the death line is y+18 > 422.
	e.sess.body.Y = 404.5
	e.sess.body.Vy = 0
	e.Step(0.001)

	if e.Phase() != PhaseEnded {
		t.Errorf("body at y=404.5 (422.5 > 422) should end the session, phase %v", e.Phase())
	}
	if e.Snapshot().Body.Alive {
		t.Error("body should be dead after ground collision")
	}
}

func TestGroundCollisionBoundary(t *testing.T) {
	e := newTestEngine()
	e.Start()

	// Just above the line survives the tick.
	e.sess.body.Y = 400
	e.sess.body.Vy = 0
	e.Step(0.001)

	if e.Phase() != PhaseRunning {
		t.Errorf("body above the ground line should survive, phase %v", e.Phase())
	}
}

func TestCeilingClampIsNotDeath(t *testing.T) {
	e := newTestEngine()
	e.Start()

	e.sess.body.Y = 10
	e.sess.body.Vy = -500
	e.Step(0.01)

	snap := e.Snapshot()
	if snap.Phase != PhaseRunning {
		t.Fatalf("ceiling contact must not end the session, phase %v", snap.Phase)
	}
	if snap.Body.Y != snap.Body.Radius {
		t.Errorf("ceiling clamp should pin y to radius %f, got %f", snap.Body.Radius, snap.Body.Y)
	}
	if snap.Body.Vy != 0 {
		t.Errorf("ceiling clamp should zero velocity, got %f", snap.Body.Vy)
	}
}

func TestPipeCollisionFixtures(t *testing.T) {
	cases := []struct {
		name string
		body Body
		pipe Pipe
		want bool
	}{
		{
			name: "inside the gap",
			body: Body{X: 120, Y: 170, Radius: 18},
			pipe: Pipe{X: 120, Top: 100, Bottom: 240},
			want: false,
		},
		{
			name: "top segment hit",
			body: Body{X: 120, Y: 90, Radius: 18},
			pipe: Pipe{X: 120, Top: 100, Bottom: 240},
			want: true,
		},
		{
			name: "bottom segment hit",
			body: Body{X: 120, Y: 230, Radius: 18},
			pipe: Pipe{X: 120, Top: 100, Bottom: 240},
			want: true,
		},
		{
			name: "no horizontal overlap",
			body: Body{X: 120, Y: 90, Radius: 18},
			pipe: Pipe{X: 300, Top: 100, Bottom: 240},
			want: false,
		},
		{
			name: "grazing the left edge",
			body: Body{X: 120, Y: 90, Radius: 18},
			pipe: Pipe{X: 138, Top: 100, Bottom: 240},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := collides(tc.body, tc.pipe, 60); got != tc.want {
				t.Errorf("collides = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPipeCollisionEndsSession(t *testing.T) {
	listener := &recordingListener{}
	e := newTestEngine(WithListener(listener))
	e.Start()

	// A pipe sitting on the body with the gap elsewhere.
	e.sess.pipes = append(e.sess.pipes, Pipe{X: 100, Top: 400, Bottom: 540})
	e.sess.body.Y = 240
	e.Step(0.001)

	if e.Phase() != PhaseEnded {
		t.Fatalf("expected ended phase, got %v", e.Phase())
	}
	if len(listener.deaths) != 1 {
		t.Fatalf("expected exactly one death event, got %d", len(listener.deaths))
	}

	// Further ticks must not re-fire the transition.
	e.Step(0.016)
	if len(listener.deaths) != 1 {
		t.Error("ended session re-emitted a death event")
	}
}

func TestScoringCountsEveryCrossedPipe(t *testing.T) {
	listener := &recordingListener{}
	e := newTestEngine(WithListener(listener))
	e.Start()

	// Two pipes whose trailing edges cross x=120 in the same tick. The
	// body sits safely inside both gaps.
	e.sess.body.Y = 300
	e.sess.body.Vy = 0
	e.sess.pipes = append(e.sess.pipes,
		Pipe{X: 59.9, Top: 200, Bottom: 340},
		Pipe{X: 59.9, Top: 220, Bottom: 360},
	)

	e.Step(0.01)

	if got := e.Score(); got != 2 {
		t.Errorf("both crossing pipes should score, got %d", got)
	}
	if len(listener.scores) != 2 || listener.scores[0] != 1 || listener.scores[1] != 2 {
		t.Errorf("expected score events [1 2], got %v", listener.scores)
	}
}

func TestScoreMonotonicWithinSession(t *testing.T) {
	e := New(DefaultTuning(), &seqRand{vals: []float64{0.3, 0.6, 0.5, 0.4}})
	e.SetPlayfield(640, 480)
	e.Flap()

	prev := 0
	for i := 0; i < 4000 && e.Phase() == PhaseRunning; i++ {
		// Steer toward the next gap center so the body survives long
		// enough to pass several pipes.
		target := 240.0
		for _, p := range e.sess.pipes {
			if p.X+e.tuning.PipeWidth > e.sess.body.X-30 {
				target = (p.Top + p.Bottom) / 2
				break
			}
		}
		if e.sess.body.Y > target+10 {
			e.Flap()
		}
		e.Step(0.016)
		if s := e.Score(); s < prev {
			t.Fatalf("score decreased from %d to %d", prev, s)
		} else {
			prev = s
		}
	}
	if prev < 3 {
		t.Errorf("expected the steered body to pass several pipes, got %d", prev)
	}
}

func TestPipesDespawnPastTrailingMargin(t *testing.T) {
	e := newTestEngine()
	e.Start()
	e.sess.body.Y = 100
	e.sess.pipes = append(e.sess.pipes, Pipe{X: -119, Top: 300, Bottom: 440, Passed: true})

	// One step pushes the trailing edge past -60.
	e.Step(0.01)

	if n := len(e.Snapshot().Pipes); n != 0 {
		t.Errorf("off-screen pipe should be removed, %d remain", n)
	}
}

func TestRetryYieldsFreshSession(t *testing.T) {
	e := newTestEngine()
	e.Flap()
	for i := 0; i < 500 && e.Phase() == PhaseRunning; i++ {
		e.Step(0.016)
	}
	if e.Phase() != PhaseEnded {
		t.Fatal("free fall should have ended the session")
	}

	e.Retry()

	snap := e.Snapshot()
	if snap.Phase != PhaseIdle {
		t.Errorf("retry should return to idle, got %v", snap.Phase)
	}
	if snap.Score != 0 {
		t.Errorf("retry should zero the score, got %d", snap.Score)
	}
	if len(snap.Pipes) != 0 {
		t.Errorf("retry should clear pipes, %d remain", len(snap.Pipes))
	}
	if !snap.Body.Alive {
		t.Error("retry should revive the body")
	}
}

func TestRetryOnlyFromEnded(t *testing.T) {
	e := newTestEngine()
	e.Start()
	e.Step(0.016)
	snap := e.Snapshot()

	e.Retry()

	if e.Phase() != PhaseRunning || e.Snapshot().Body != snap.Body {
		t.Error("retry while running must be a no-op")
	}
}

func TestBestRecordAcrossSessions(t *testing.T) {
	listener := &recordingListener{}
	e := newTestEngine(WithListener(listener))

	// First session: two passed pipes, then a crash.
	e.Start()
	e.sess.score = 2
	crash(e)
	if e.Best() != 2 {
		t.Fatalf("best should be 2 after first session, got %d", e.Best())
	}
	if !listener.deaths[0].newBest {
		t.Error("first scoring session should be a new best")
	}

	// Second session scores less; the best must not decrease.
	e.Retry()
	e.Start()
	e.sess.score = 1
	crash(e)
	if e.Best() != 2 {
		t.Errorf("best decreased to %d", e.Best())
	}
	if listener.deaths[1].newBest {
		t.Error("lower score must not be reported as a new best")
	}
}

func TestBestRecordLoadedFromStore(t *testing.T) {
	store := &MemoryRecord{best: 7}
	e := New(DefaultTuning(), fixedRand{0.5}, WithRecordStore(store))
	if e.Best() != 7 {
		t.Errorf("engine should load the stored best, got %d", e.Best())
	}
}

func TestPauseWithholdsTicks(t *testing.T) {
	e := newTestEngine()
	e.Flap()
	base := time.Now()
	e.Advance(base)
	e.Advance(base.Add(16 * time.Millisecond))
	snap := e.Snapshot()

	e.TogglePause()
	e.Advance(base.Add(32 * time.Millisecond))
	e.Advance(base.Add(48 * time.Millisecond))

	if e.Snapshot().Body != snap.Body {
		t.Error("paused ticks must not mutate the session")
	}

	// Unpausing resumes with a single-frame delta, not the paused span.
	e.TogglePause()
	e.Advance(base.Add(64 * time.Millisecond))
	after := e.Snapshot()
	if after.Body == snap.Body {
		t.Error("simulation should resume after unpause")
	}
	moved := after.Body.Y - snap.Body.Y
	if moved < 0 {
		moved = -moved
	}
	if moved > 20 {
		t.Errorf("resume moved the body %f px, paused interval leaked in", moved)
	}
}

func TestPausePreservesPhase(t *testing.T) {
	e := newTestEngine()
	e.TogglePause()
	if e.Phase() != PhaseIdle {
		t.Error("pause must not touch the lifecycle phase")
	}
	e.TogglePause()
	if e.Paused() {
		t.Error("second toggle should unpause")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := newTestEngine()
	e.Start()
	e.sess.pipes = append(e.sess.pipes, Pipe{X: 500, Top: 100, Bottom: 240})

	snap := e.Snapshot()
	snap.Pipes[0].X = -999

	if e.sess.pipes[0].X != 500 {
		t.Error("mutating a snapshot leaked into the session")
	}
}
