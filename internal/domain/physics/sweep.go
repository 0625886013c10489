package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// slab returns the parametric window [low, high] of the segment current->next
// that lies within the box on one axis.
//
// A segment with no extent on the axis is parallel to the slab: it is either
// inside for its whole length (unbounded window) or never inside. The interior
// is open here so a box sliding along a face it already touches is not stopped.
func (b Box) slab(axis Axis, current, next mgl32.Vec3) (low, high float32, ok bool) {
	s := b.Sides()
	lo, hi := s.Min(axis), s.Max(axis)
	c := current[axis]
	d := next[axis] - c

	if d == 0 {
		if c <= lo || c >= hi {
			return 0, 0, false
		}
		return math32.Inf(-1), math32.Inf(1), true
	}

	low = (lo - c) / d
	high = (hi - c) / d
	if low > high {
		low, high = high, low
	}

	if high < 0 || low > 1 {
		return 0, 0, false
	}
	if math32.Max(0, low) > math32.Min(1, high) {
		return 0, 0, false
	}
	return low, high, true
}

// ClipSegmentAgainstAxis returns the fraction of current->next at which the
// segment enters the box's slab on axis, clamped to [0, 1]. ok is false when the
// segment never lies within the slab. A segment parallel to the slab and inside
// it reports 0.
func (b Box) ClipSegmentAgainstAxis(axis Axis, current, next mgl32.Vec3) (float32, bool) {
	low, _, ok := b.slab(axis, current, next)
	if !ok {
		return 0, false
	}
	return clamp01(low), true
}

// SegmentEntry returns the fraction of current->next at which the segment
// enters the box. ok is false when the segment never passes through it: both
// axis clips must succeed and their windows must overlap within [0, 1].
func (b Box) SegmentEntry(current, next mgl32.Vec3) (float32, bool) {
	lowX, highX, ok := b.slab(AxisX, current, next)
	if !ok {
		return 0, false
	}
	lowY, highY, ok := b.slab(AxisY, current, next)
	if !ok {
		return 0, false
	}

	enter := math32.Max(0, math32.Max(lowX, lowY))
	exit := math32.Min(1, math32.Min(highX, highY))
	if enter > exit {
		return 0, false
	}
	return enter, true
}

// IntersectSegment reports whether the segment current->next passes through the box.
func (b Box) IntersectSegment(current, next mgl32.Vec3) bool {
	_, ok := b.SegmentEntry(current, next)
	return ok
}

// SweptCollision moves b along movement against a static box. When the path
// ends inside other it returns the pulled-back center at which b first touches
// other, and the fraction of movement travelled before contact.
//
// The destination test includes the edges so a move that ends flush with the far
// side still collides. A zero movement never collides here; resting overlaps are
// handled by StaticStatic.
func (b Box) SweptCollision(movement mgl32.Vec3, other Box) (corrected mgl32.Vec3, fraction float32, ok bool) {
	if !isMoving(movement) || !finite(movement) {
		return mgl32.Vec3{}, 0, false
	}

	minkowski := b.MinkowskiDifference(other)
	destination := b.Center.Add(movement)
	if !minkowski.containsClosed(destination) {
		return mgl32.Vec3{}, 0, false
	}

	lowX, _, ok := minkowski.slab(AxisX, b.Center, destination)
	if !ok {
		return mgl32.Vec3{}, 0, false
	}
	lowY, _, ok := minkowski.slab(AxisY, b.Center, destination)
	if !ok {
		return mgl32.Vec3{}, 0, false
	}

	// Contact happens once the center is inside both slabs
	fraction = clamp01(math32.Max(lowX, lowY))
	corrected = b.Center.Add(destination.Sub(b.Center).Mul(fraction))
	return corrected, fraction, true
}

func clamp01(v float32) float32 {
	return math32.Min(1, math32.Max(0, v))
}
