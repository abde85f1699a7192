package engine

// Snapshot is an immutable copy of the visible simulation state, handed to
// the presentation layer once per frame. The pipe slice is freshly allocated
// so the renderer can hold it across ticks.
type Snapshot struct {
	Body   Body
	Pipes  []Pipe
	Score  int
	Best   int
	Phase  Phase
	Paused bool
	Field  Playfield

	// Geometry the renderer needs without reaching into the tuning.
	GroundY   float64 // top of the ground band
	PipeWidth float64
}

// Snapshot captures the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	pipes := make([]Pipe, len(e.sess.pipes))
	copy(pipes, e.sess.pipes)
	return Snapshot{
		Body:   e.sess.body,
		Pipes:  pipes,
		Score:  e.sess.score,
		Best:   e.best,
		Phase:  e.phase,
		Paused: e.paused,
		Field:  e.field,

		GroundY:   e.field.H - e.tuning.GroundHeight,
		PipeWidth: e.tuning.PipeWidth,
	}
}
