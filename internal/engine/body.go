package engine

// Body is the player-controlled entity. It falls under gravity at a fixed
// horizontal position; flaps set its vertical velocity upward. Alive flips to
// false exactly once per session and stays false until the next session.
type Body struct {
	X      float64
	Y      float64
	Vy     float64
	Radius float64
	Angle  float64 // orientation, positive = nose up
	Alive  bool
}

func newBody(t Tuning, field Playfield) Body {
	return Body{
		X:      t.BodyX,
		Y:      field.H / 2,
		Radius: t.BodyRadius,
		Alive:  true,
	}
}

// applyGravity integrates velocity and position over dt.
func (b *Body) applyGravity(dt, gravity float64) {
	b.Vy += gravity * dt
	b.Y += b.Vy * dt
}

// flap sets the upward impulse and snaps the nose to the rise bound.
func (b *Body) flap(impulse float64) {
	b.Vy = impulse
	b.Angle = maxRiseAngle
}

// updateAngle eases the orientation toward the velocity-derived target using
// min(1, rate*dt) in place of the exact 1-e^(-rate*dt) factor.
func (b *Body) updateAngle(dt float64) {
	target := angleForVelocity(b.Vy)
	f := angleRate * dt
	if f > 1 {
		f = 1
	}
	b.Angle += (target - b.Angle) * f
}

// angleForVelocity maps vertical velocity linearly to an orientation angle,
// clamped to the dive/rise bounds. Pure so it can be tested in isolation from
// the physics step.
func angleForVelocity(vy float64) float64 {
	a := -vy * angleVelScale
	if a > maxRiseAngle {
		return maxRiseAngle
	}
	if a < maxDiveAngle {
		return maxDiveAngle
	}
	return a
}
