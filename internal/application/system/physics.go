package system

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/ranger/internal/domain/physics"
	"github.com/younwookim/ranger/internal/ecs"
)

// PhysicsSystem runs the collision pass and moves bullets inside the arena bounds
type PhysicsSystem struct {
	bounds physics.Bounds
	logger *log.Logger

	skippedMovingPairs int
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(bounds physics.Bounds, logger *log.Logger) *PhysicsSystem {
	return &PhysicsSystem{
		bounds: bounds,
		logger: logger,
	}
}

// UpdateBullets decelerates bullets and drops the ones that stopped
func (s *PhysicsSystem) UpdateBullets(w *ecs.World, dt float32) int {
	ecs.UpdateBulletDropoff(w, dt)
	return ecs.RemoveStoppedBullets(w)
}

// Update resolves collisions, integrates movement and removes bullets that
// left the arena
func (s *PhysicsSystem) Update(w *ecs.World) ecs.PhysicsResult {
	res := ecs.UpdatePhysics(w, s.bounds)
	ecs.MoveBullets(w)
	escaped := ecs.RemoveEscapedBullets(w, s.bounds)

	if res.SkippedMovingPairs > 0 {
		s.skippedMovingPairs += res.SkippedMovingPairs
		s.logger.Debug("moving pairs left unresolved", "pairs", res.SkippedMovingPairs)
	}
	if escaped > 0 {
		s.logger.Debug("bullets left the arena", "count", escaped)
	}

	return res
}

// SkippedMovingPairs returns how many moving-moving pairs were skipped in total
func (s *PhysicsSystem) SkippedMovingPairs() int {
	return s.skippedMovingPairs
}

// Bounds returns the confinement rectangle
func (s *PhysicsSystem) Bounds() physics.Bounds {
	return s.bounds
}
