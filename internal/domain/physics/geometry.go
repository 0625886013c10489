// Package physics implements the collision core of the game: axis-aligned
// boxes, Minkowski-difference queries, swept (line clip) collision against
// static boxes, steering and the per-tick resolution driver.
//
// The package has no engine dependency. All coordinates are float32 world
// units with y pointing up, stored in mgl32.Vec3 (z is carried but ignored).
package physics

import "github.com/go-gl/mathgl/mgl32"

// Axis selects a coordinate of a vector.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// Sides holds the four edge coordinates of a box.
//
//	        top
//	       +---+
//	  left |   | right
//	       +---+
//	      bottom
type Sides struct {
	Left, Bottom, Right, Top float32
}

// Min returns the lower bound of the box on the given axis
func (s Sides) Min(axis Axis) float32 {
	if axis == AxisY {
		return s.Bottom
	}
	return s.Left
}

// Max returns the upper bound of the box on the given axis
func (s Sides) Max(axis Axis) float32 {
	if axis == AxisY {
		return s.Top
	}
	return s.Right
}

// Corners holds the four box corners counter-clockwise, starting top-left.
//
//	A     D
//	 +---+
//	 |   |
//	 +---+
//	B     C
type Corners struct {
	A, B, C, D mgl32.Vec3
}

// Segment is a line between two points
type Segment struct {
	From, To mgl32.Vec3
}

// Edges returns the outline A->B->C->D->A, used by debug overlays.
func (c Corners) Edges() [4]Segment {
	return [4]Segment{
		{From: c.A, To: c.B},
		{From: c.B, To: c.C},
		{From: c.C, To: c.D},
		{From: c.D, To: c.A},
	}
}
