// Package engine implements the flap game simulation: a body falling under
// gravity, boosted upward by discrete flap actions, threading a stream of
// gated pipes. The package is pure logic with no terminal, audio or storage
// dependencies; collaborators plug in through the Listener and RecordStore
// interfaces and drive the simulation with wall-clock timestamps.
package engine

import "math"

// Tuning holds the numeric constants of the simulation. All lengths are in
// virtual pixels, velocities in px/s, accelerations in px/s², durations in
// seconds.
type Tuning struct {
	Gravity       float64 // downward acceleration
	FlapImpulse   float64 // velocity set by a flap (negative = up)
	ScrollSpeed   float64 // horizontal pipe speed
	SpawnInterval float64 // time between pipe spawns
	GapHeight     float64 // vertical gap between pipe segments
	PipeWidth     float64
	TopMargin     float64 // minimum gap-top distance from the ceiling
	GroundHeight  float64 // height of the ground band
	DespawnMargin float64 // how far past the left edge a pipe may trail
	BodyX         float64 // fixed horizontal body position
	BodyRadius    float64
	MaxDelta      float64 // upper bound on a single simulation step
}

// Cosmetic orientation constants. These affect nothing physical, so they are
// compiled in rather than exposed through the tuning config.
const (
	maxRiseAngle  = math.Pi / 6    // nose-up bound, reached on flap
	maxDiveAngle  = -math.Pi / 2.6 // nose-down bound at terminal dive
	angleVelScale = 0.0015         // rad per px/s of vertical velocity
	angleRate     = 10.0           // smoothing rate, 1/s
)

// DefaultTuning returns the stock game feel.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:       1100,
		FlapImpulse:   -350,
		ScrollSpeed:   180,
		SpawnInterval: 1.4,
		GapHeight:     140,
		PipeWidth:     60,
		TopMargin:     40,
		GroundHeight:  58,
		DespawnMargin: 60,
		BodyX:         120,
		BodyRadius:    18,
		MaxDelta:      0.035,
	}
}

// Playfield is the virtual-pixel area the simulation runs in. It is supplied
// by the environment and may change between ticks (terminal resize).
type Playfield struct {
	W, H float64
}

// DefaultPlayfield matches an 80x24 terminal at the renderer's 8x16 px cell
// scale, with the height rounded up to leave room for the ground band.
func DefaultPlayfield() Playfield {
	return Playfield{W: 640, H: 480}
}
