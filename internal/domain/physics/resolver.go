package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Handle identifies a body in a Registry. Handles are indices, stable until Reset.
type Handle int

// Body is one collidable actor as seen by the resolver for a single tick.
// Fixed bodies (walls, obstacles) never move and never receive corrections.
type Body struct {
	Box    Box
	Motion Motion
	Fixed  bool
}

// Registry is the arena of bodies taking part in one tick's collision pass.
// Callers rebuild it every tick from their own actor store.
type Registry struct {
	bodies []Body
}

// NewRegistry creates an empty registry with room for capacity bodies
func NewRegistry(capacity int) *Registry {
	return &Registry{bodies: make([]Body, 0, capacity)}
}

// Add appends a body and returns its handle
func (r *Registry) Add(box Box, motion Motion) Handle {
	r.bodies = append(r.bodies, Body{Box: box, Motion: motion})
	return Handle(len(r.bodies) - 1)
}

// AddFixed appends an immovable body and returns its handle
func (r *Registry) AddFixed(box Box) Handle {
	r.bodies = append(r.bodies, Body{Box: box, Fixed: true})
	return Handle(len(r.bodies) - 1)
}

// Len returns the number of bodies
func (r *Registry) Len() int {
	return len(r.bodies)
}

// Body returns the body for h
func (r *Registry) Body(h Handle) (Body, bool) {
	if h < 0 || int(h) >= len(r.bodies) {
		return Body{}, false
	}
	return r.bodies[h], true
}

// Reset removes all bodies, keeping the allocated storage
func (r *Registry) Reset() {
	r.bodies = r.bodies[:0]
}

// PairState classifies a pair of bodies by which of them moves this tick
type PairState int

const (
	PairStaticStatic PairState = iota
	PairMovingStatic
	PairStaticMoving
	PairMovingMoving
)

// String returns the state name
func (s PairState) String() string {
	switch s {
	case PairStaticStatic:
		return "static-static"
	case PairMovingStatic:
		return "moving-static"
	case PairStaticMoving:
		return "static-moving"
	case PairMovingMoving:
		return "moving-moving"
	default:
		return "unknown"
	}
}

// Classify returns the pair state for two motions
func Classify(a, b Motion) PairState {
	switch am, bm := a.IsMoving(), b.IsMoving(); {
	case am && bm:
		return PairMovingMoving
	case am:
		return PairMovingStatic
	case bm:
		return PairStaticMoving
	default:
		return PairStaticStatic
	}
}

// CorrectionKind tells how a correction was produced
type CorrectionKind int

const (
	// CorrectionPush separates two resting boxes
	CorrectionPush CorrectionKind = iota
	// CorrectionSweep pulls a mover back to its first contact
	CorrectionSweep
)

// Correction is a positional delta for one body, valid for the tick it was
// detected in only. The delta is added after the body's movement is integrated.
type Correction struct {
	Handle Handle
	Other  Handle
	Kind   CorrectionKind
	Delta  mgl32.Vec3
	// Fraction of the movement travelled before contact (sweeps only)
	Fraction float32
}

// Contact records a colliding pair
type Contact struct {
	A, B  Handle
	State PairState
}

// Report is the outcome of one detection pass
type Report struct {
	// Corrections holds at most one merged correction per body, in handle order
	Corrections []Correction
	Contacts    []Contact
	// Collided is indexed by handle
	Collided []bool
	// SkippedMovingPairs counts moving-moving pairs, which are never resolved
	SkippedMovingPairs int
}

// CorrectionFor returns the correction attached to h, if any
func (r Report) CorrectionFor(h Handle) (Correction, bool) {
	for _, c := range r.Corrections {
		if c.Handle == h {
			return c, true
		}
	}
	return Correction{}, false
}

// Detect runs the collision pass over every unordered pair of bodies.
//
// Resting pairs push the first body of the pair out of the second, or the
// second out of the first when the first is fixed. A mover against a resting
// body is pulled back to its first contact. Pairs where both bodies move are
// not handled and only counted.
func Detect(reg *Registry) Report {
	n := reg.Len()
	rep := Report{Collided: make([]bool, n)}
	pending := make([]Correction, n)
	has := make([]bool, n)

	attach := func(c Correction) {
		h := c.Handle
		if !has[h] {
			pending[h] = c
			has[h] = true
			return
		}
		switch c.Kind {
		case CorrectionPush:
			pending[h].Delta = pending[h].Delta.Add(c.Delta)
		case CorrectionSweep:
			if c.Fraction < pending[h].Fraction {
				pending[h] = c
			}
		}
	}

	sweep := func(mover Handle, other Handle, state PairState) {
		m, o := reg.bodies[mover], reg.bodies[other]
		corrected, fraction, ok := m.Box.SweptCollision(m.Motion.Movement, o.Box)
		if !ok {
			return
		}
		destination := m.Box.Center.Add(m.Motion.Movement)
		attach(Correction{
			Handle:   mover,
			Other:    other,
			Kind:     CorrectionSweep,
			Delta:    corrected.Sub(destination),
			Fraction: fraction,
		})
		rep.touch(mover, other, state)
	}

	// push moves the first body of the pair unless it is fixed, in which
	// case the second one is moved out instead
	push := func(a, b Handle, state PairState) {
		if reg.bodies[a].Fixed {
			if reg.bodies[b].Fixed {
				return
			}
			a, b = b, a
		}
		box := reg.bodies[a].Box
		corrected, ok := box.StaticStatic(reg.bodies[b].Box)
		if !ok {
			return
		}
		attach(Correction{
			Handle: a,
			Other:  b,
			Kind:   CorrectionPush,
			Delta:  corrected.Sub(box.Center),
		})
		rep.touch(a, b, state)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := Handle(i), Handle(j)
			state := Classify(reg.bodies[i].Motion, reg.bodies[j].Motion)

			switch state {
			case PairStaticStatic:
				push(a, b, state)
			case PairMovingStatic:
				sweep(a, b, state)
			case PairStaticMoving:
				sweep(b, a, state)
			case PairMovingMoving:
				rep.SkippedMovingPairs++
			}
		}
	}

	for h := range pending {
		if has[h] {
			rep.Corrections = append(rep.Corrections, pending[h])
		}
	}
	return rep
}

func (r *Report) touch(a, b Handle, state PairState) {
	r.Contacts = append(r.Contacts, Contact{A: a, B: b, State: state})
	r.Collided[a] = true
	r.Collided[b] = true
}

// Bounds confines actors to a rectangle centered on the origin.
// Tolerance lets a box stick out past the edge by that much.
// A zero half extent disables confinement on that axis.
type Bounds struct {
	HalfWidth  float32
	HalfHeight float32
	Tolerance  float32
}

// Clamp returns position with box kept inside the bounds. This is a hard clamp,
// nothing bounces.
func (b Bounds) Clamp(position mgl32.Vec3, box Box) mgl32.Vec3 {
	if b.HalfWidth > 0 {
		position[AxisX] = clampAxis(position.X(), b.HalfWidth-box.HalfWidth+b.Tolerance)
	}
	if b.HalfHeight > 0 {
		position[AxisY] = clampAxis(position.Y(), b.HalfHeight-box.HalfHeight+b.Tolerance)
	}
	return position
}

func clampAxis(v, limit float32) float32 {
	if limit <= 0 {
		return 0
	}
	return math32.Max(-limit, math32.Min(limit, v))
}

// Result is the outcome of one Step
type Result struct {
	// Positions holds the new center of every body, indexed by handle
	Positions []mgl32.Vec3
	Report    Report
}

// Step runs one tick of the collision pipeline: detect, apply corrections,
// integrate the movement and clamp to bounds. The registry is not modified.
func Step(reg *Registry, bounds Bounds) Result {
	rep := Detect(reg)

	corrections := make([]mgl32.Vec3, reg.Len())
	for _, c := range rep.Corrections {
		corrections[c.Handle] = c.Delta
	}

	positions := make([]mgl32.Vec3, reg.Len())
	for h, body := range reg.bodies {
		if body.Fixed {
			positions[h] = body.Box.Center
			continue
		}
		pos := Integrate(body.Box.Center, body.Motion.Movement, corrections[h])
		positions[h] = bounds.Clamp(pos, body.Box)
	}

	return Result{Positions: positions, Report: rep}
}
