package engine

// Listener receives discrete gameplay events. A sound layer maps them to
// effects; the engine never blocks on a listener call, so implementations
// must return promptly (fire-and-forget their own work).
type Listener interface {
	// Flapped fires on every accepted flap action.
	Flapped()
	// Scored fires when a pipe is passed, with the new total.
	Scored(score int)
	// Died fires once per session on the ending tick.
	Died(score int, newBest bool)
}

// NopListener discards all events.
type NopListener struct{}

func (NopListener) Flapped()       {}
func (NopListener) Scored(int)     {}
func (NopListener) Died(int, bool) {}

var _ Listener = NopListener{}
