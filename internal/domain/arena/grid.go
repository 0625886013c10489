package arena

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/ranger/internal/domain/physics"
)

// Grid is a board of equally sized fields centered on the origin.
// Row 0 is the top row, column 0 the leftmost column.
type Grid struct {
	Rows        int
	Columns     int
	FieldWidth  float32
	FieldHeight float32
}

// Empty reports whether the grid has no fields
func (g Grid) Empty() bool {
	return g.Rows <= 0 || g.Columns <= 0 || g.FieldWidth <= 0 || g.FieldHeight <= 0
}

// HalfWidth returns half of the total grid width
func (g Grid) HalfWidth() float32 {
	if g.Empty() {
		return 0
	}
	return float32(g.Columns) * g.FieldWidth / 2
}

// HalfHeight returns half of the total grid height
func (g Grid) HalfHeight() float32 {
	if g.Empty() {
		return 0
	}
	return float32(g.Rows) * g.FieldHeight / 2
}

// Field returns the box of the field at row, col
func (g Grid) Field(row, col int) (physics.Box, bool) {
	if g.Empty() || row < 0 || row >= g.Rows || col < 0 || col >= g.Columns {
		return physics.Box{}, false
	}
	x := (float32(col) - float32(g.Columns-1)/2) * g.FieldWidth
	y := (float32(g.Rows-1)/2 - float32(row)) * g.FieldHeight
	return physics.NewBox(mgl32.Vec3{x, y, 0}, g.FieldWidth/2, g.FieldHeight/2), true
}

// Fields returns every field box, row by row
func (g Grid) Fields() []physics.Box {
	if g.Empty() {
		return nil
	}
	fields := make([]physics.Box, 0, g.Rows*g.Columns)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			f, _ := g.Field(row, col)
			fields = append(fields, f)
		}
	}
	return fields
}

// FieldAt returns the row and column containing p. Points on a shared edge
// belong to the field to the right / below.
func (g Grid) FieldAt(p mgl32.Vec3) (row, col int, ok bool) {
	if g.Empty() {
		return 0, 0, false
	}
	left := -g.HalfWidth()
	top := g.HalfHeight()

	col = int(math32.Floor((p.X() - left) / g.FieldWidth))
	row = int(math32.Floor((top - p.Y()) / g.FieldHeight))
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Columns {
		return 0, 0, false
	}
	return row, col, true
}
