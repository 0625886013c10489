package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned bounding box described by its center and half extents.
// The center mirrors the owning actor's position and is refreshed every tick.
type Box struct {
	Center     mgl32.Vec3
	HalfWidth  float32
	HalfHeight float32
}

// NewBox creates a box from half extents. Negative extents are clamped to zero.
func NewBox(center mgl32.Vec3, halfWidth, halfHeight float32) Box {
	return Box{
		Center:     center,
		HalfWidth:  math32.Max(halfWidth, 0),
		HalfHeight: math32.Max(halfHeight, 0),
	}
}

// BoxFromSize creates a box from its full width and height
func BoxFromSize(center mgl32.Vec3, size mgl32.Vec2) Box {
	return NewBox(center, size.X()/2, size.Y()/2)
}

// Size returns the full width and height
func (b Box) Size() mgl32.Vec2 {
	return mgl32.Vec2{b.HalfWidth * 2, b.HalfHeight * 2}
}

// At returns a copy of the box moved to a new center
func (b Box) At(center mgl32.Vec3) Box {
	b.Center = center
	return b
}

// Sides returns the edge coordinates of the box
func (b Box) Sides() Sides {
	return Sides{
		Left:   b.Center.X() - b.HalfWidth,
		Bottom: b.Center.Y() - b.HalfHeight,
		Right:  b.Center.X() + b.HalfWidth,
		Top:    b.Center.Y() + b.HalfHeight,
	}
}

// Corners returns the box corners counter-clockwise from the top-left.
// The corners share the center's z.
func (b Box) Corners() Corners {
	s := b.Sides()
	z := b.Center.Z()
	return Corners{
		A: mgl32.Vec3{s.Left, s.Top, z},
		B: mgl32.Vec3{s.Left, s.Bottom, z},
		C: mgl32.Vec3{s.Right, s.Bottom, z},
		D: mgl32.Vec3{s.Right, s.Top, z},
	}
}

// PointInside reports whether p lies strictly inside the box.
// A point on an edge is outside, so boxes that only graze each other never collide.
func (b Box) PointInside(p mgl32.Vec3) bool {
	s := b.Sides()
	return p.X() > s.Left && p.X() < s.Right &&
		p.Y() > s.Bottom && p.Y() < s.Top
}

// containsClosed is PointInside with the edges included
func (b Box) containsClosed(p mgl32.Vec3) bool {
	s := b.Sides()
	return p.X() >= s.Left && p.X() <= s.Right &&
		p.Y() >= s.Bottom && p.Y() <= s.Top
}

// Overlaps reports whether the interiors of both boxes intersect on x and y.
func (b Box) Overlaps(other Box) bool {
	s, o := b.Sides(), other.Sides()
	return s.Right > o.Left && s.Left < o.Right &&
		s.Top > o.Bottom && s.Bottom < o.Top
}

// MinkowskiDifference returns the box centered on other with both boxes' half
// extents summed. Testing b.Center against it is equivalent to testing b
// against other.
func (b Box) MinkowskiDifference(other Box) Box {
	return Box{
		Center:     other.Center,
		HalfWidth:  b.HalfWidth + other.HalfWidth,
		HalfHeight: b.HalfHeight + other.HalfHeight,
	}
}

// MinimumTranslationVector moves p, presumed inside the box, onto the nearest
// edge. Distances are compared left, right, top, bottom and the first minimum wins.
func (b Box) MinimumTranslationVector(p mgl32.Vec3) mgl32.Vec3 {
	s := b.Sides()

	best := math32.Abs(p.X() - s.Left)
	out := mgl32.Vec3{s.Left, p.Y(), p.Z()}

	if d := math32.Abs(s.Right - p.X()); d < best {
		best = d
		out = mgl32.Vec3{s.Right, p.Y(), p.Z()}
	}
	if d := math32.Abs(s.Top - p.Y()); d < best {
		best = d
		out = mgl32.Vec3{p.X(), s.Top, p.Z()}
	}
	if d := math32.Abs(p.Y() - s.Bottom); d < best {
		out = mgl32.Vec3{p.X(), s.Bottom, p.Z()}
	}

	return out
}

// StaticStatic detects and corrects an overlap between two resting boxes.
// The returned point is the suggested corrected center for b; ok is false when
// the boxes do not overlap.
func (b Box) StaticStatic(other Box) (corrected mgl32.Vec3, ok bool) {
	minkowski := b.MinkowskiDifference(other)
	if !minkowski.PointInside(b.Center) {
		return mgl32.Vec3{}, false
	}
	return minkowski.MinimumTranslationVector(b.Center), true
}
