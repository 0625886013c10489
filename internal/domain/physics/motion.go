package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Motion is the per-tick velocity state of an actor.
// Movement is the displacement for this tick, already scaled by elapsed time.
// The zero vector means the actor is not moving this tick.
type Motion struct {
	Movement mgl32.Vec3
	Speed    float32
}

// NewMotion creates a resting motion with the given speed
func NewMotion(speed float32) Motion {
	return Motion{Speed: speed}
}

// IsMoving reports whether Movement is anything but the zero vector
func (m Motion) IsMoving() bool {
	return isMoving(m.Movement)
}

// Stop clears the movement, keeping the speed
func (m *Motion) Stop() {
	m.Movement = mgl32.Vec3{}
}

// SteerTowards replaces Movement with a steering step toward destination
func (m *Motion) SteerTowards(origin, destination mgl32.Vec3, dt float32) {
	m.Movement = Steer(origin, destination, m.Speed, dt)
}

// Steer returns the movement for one tick of steering from origin to destination.
//
// The normalized origin is subtracted from the desired velocity, not a
// relative steering term. Movement tuning depends on it; keep it as is.
func Steer(origin, destination mgl32.Vec3, speed, dt float32) mgl32.Vec3 {
	desired := normalizeOrZero(destination.Sub(origin)).Mul(speed)
	return desired.Sub(normalizeOrZero(origin)).Mul(dt)
}

// Launch creates the motion of a projectile fired from origin toward
// destination. The movement is not scaled by time; Speed starts at 1 and acts
// as the multiplier a Dropoff decays.
func Launch(origin, destination mgl32.Vec3, speed float32) Motion {
	desired := normalizeOrZero(destination.Sub(origin)).Mul(speed)
	return Motion{
		Movement: desired.Sub(normalizeOrZero(origin)),
		Speed:    1,
	}
}

// Dropoff decelerates a launched projectile. The deceleration grows with the
// square of Rate, and Rate grows every tick.
type Dropoff struct {
	Rate float32
}

// Apply advances the dropoff by one tick and scales the movement by the new speed
func (d *Dropoff) Apply(m *Motion, dt, increment float32) {
	m.Speed -= dt * d.Rate * d.Rate
	d.Rate += increment
	m.Movement = m.Movement.Mul(m.Speed)
}

// Integrate returns the position after one tick: movement plus the collision
// correction. A non-finite movement or correction is dropped so a bad tick can
// never corrupt the position.
func Integrate(position, movement, correction mgl32.Vec3) mgl32.Vec3 {
	if finite(movement) {
		position = position.Add(movement)
	}
	if finite(correction) {
		position = position.Add(correction)
	}
	return position
}

// Angle returns the heading in radians from origin to destination
func Angle(origin, destination mgl32.Vec3) float32 {
	d := destination.Sub(origin)
	return math32.Atan2(d.Y(), d.X())
}

func isMoving(v mgl32.Vec3) bool {
	return v.X() != 0 || v.Y() != 0 || v.Z() != 0
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
