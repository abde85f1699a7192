package engine

// Step advances the simulation by dt seconds. Exported so tests and headless
// drivers can feed exact deltas; Advance is the wall-clock entry point.
// dt <= 0 is a no-op tick. Nothing moves unless the session is running and
// the body alive.
func (e *Engine) Step(dt float64) {
	if dt <= 0 || e.phase != PhaseRunning || !e.sess.body.Alive {
		return
	}
	t := e.tuning
	field := e.field
	body := &e.sess.body

	body.applyGravity(dt, t.Gravity)
	body.updateAngle(dt)

	if pipe, ok := e.spawner.Tick(dt, field, t); ok {
		e.sess.pipes = append(e.sess.pipes, pipe)
	}

	dx := t.ScrollSpeed * dt
	kept := e.sess.pipes[:0]
	for i := range e.sess.pipes {
		e.sess.pipes[i].advance(dx)
		if e.sess.pipes[i].X+t.PipeWidth > -t.DespawnMargin {
			kept = append(kept, e.sess.pipes[i])
		}
	}
	e.sess.pipes = kept

	// Score every pipe whose trailing edge crossed the body this tick, in
	// spawn order. Iterating the full set means a clamped large delta that
	// pushes two pipes past the body still scores both.
	for i := range e.sess.pipes {
		p := &e.sess.pipes[i]
		if !p.Passed && p.X+t.PipeWidth < body.X {
			p.markPassed()
			e.sess.score++
			e.listener.Scored(e.sess.score)
		}
	}

	// Ground kills; the ceiling is a bounce-stop.
	if body.Y+body.Radius > field.H-t.GroundHeight {
		e.endSession()
		return
	}
	if body.Y-body.Radius < 0 {
		body.Y = body.Radius
		body.Vy = 0
	}

	for i := range e.sess.pipes {
		if collides(*body, e.sess.pipes[i], t.PipeWidth) {
			e.endSession()
			return
		}
	}
}

// collides tests the body against one pipe: horizontal extent overlap plus a
// vertical gap-bound check. This treats each segment as a full-width band
// rather than doing a circle-vs-corner distance test; the coarser shape is
// part of the game feel and is preserved as-is.
func collides(b Body, p Pipe, pipeWidth float64) bool {
	if b.X+b.Radius <= p.X || b.X-b.Radius >= p.X+pipeWidth {
		return false
	}
	return b.Y-b.Radius < p.Top || b.Y+b.Radius > p.Bottom
}

// endSession runs the running -> ended transition exactly once: mark the body
// dead, freeze the phase, settle the best record and report the result.
// Recording is best-effort; a storage failure never reaches gameplay.
func (e *Engine) endSession() {
	e.sess.body.Alive = false
	e.phase = PhaseEnded

	score := e.sess.score
	newBest := score > e.best
	if newBest {
		e.best = score
	}
	if score > 0 {
		//nolint:errcheck // best-effort persistence, in-memory best stands regardless
		e.store.Record(score)
	}
	e.listener.Died(score, newBest)
}
