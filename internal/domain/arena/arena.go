// Package arena describes the play field: its grid, its confinement bounds,
// the fixed obstacles and where actors spawn. Coordinates are world units with
// the origin at the arena center and y pointing up.
package arena

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/ranger/internal/domain/physics"
)

// Arena is the loaded play field
type Arena struct {
	ID          string
	Name        string
	Grid        Grid
	Bounds      physics.Bounds
	PlayerSpawn mgl32.Vec3
	Obstacles   []physics.Box
	EnemySpawns []mgl32.Vec3
}

// New creates an arena confined to the grid's extent. An empty grid falls
// back to the given half extents.
func New(id, name string, grid Grid, halfWidth, halfHeight, tolerance float32) *Arena {
	bounds := physics.Bounds{
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		Tolerance:  tolerance,
	}
	if !grid.Empty() {
		bounds.HalfWidth = grid.HalfWidth()
		bounds.HalfHeight = grid.HalfHeight()
	}
	return &Arena{
		ID:     id,
		Name:   name,
		Grid:   grid,
		Bounds: bounds,
	}
}

// AddObstacle places a fixed obstacle
func (a *Arena) AddObstacle(box physics.Box) {
	a.Obstacles = append(a.Obstacles, box)
}

// AddEnemySpawn registers a spawn point for enemies
func (a *Arena) AddEnemySpawn(p mgl32.Vec3) {
	a.EnemySpawns = append(a.EnemySpawns, p)
}

// EnemySpawn returns the n-th spawn point, wrapping around. An arena without
// spawn points spawns enemies at the origin.
func (a *Arena) EnemySpawn(n int) mgl32.Vec3 {
	if len(a.EnemySpawns) == 0 {
		return mgl32.Vec3{}
	}
	if n < 0 {
		n = -n
	}
	return a.EnemySpawns[n%len(a.EnemySpawns)]
}

// Blocked reports whether box overlaps any obstacle
func (a *Arena) Blocked(box physics.Box) bool {
	for _, o := range a.Obstacles {
		if box.Overlaps(o) {
			return true
		}
	}
	return false
}

// Contains reports whether p lies within the confinement bounds
func (a *Arena) Contains(p mgl32.Vec3) bool {
	b := a.Bounds
	if b.HalfWidth > 0 && (p.X() < -b.HalfWidth || p.X() > b.HalfWidth) {
		return false
	}
	if b.HalfHeight > 0 && (p.Y() < -b.HalfHeight || p.Y() > b.HalfHeight) {
		return false
	}
	return true
}
