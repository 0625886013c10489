package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/ranger/internal/domain/physics"
	"github.com/younwookim/ranger/internal/ecs"
)

func TestPhysicsSystem_Update(t *testing.T) {
	bounds := physics.Bounds{HalfWidth: 600, HalfHeight: 300}
	sys := NewPhysicsSystem(bounds, testLogger())
	w := ecs.NewWorld()

	player := w.CreatePlayer(mgl32.Vec3{0, 0, 0}, PlayerConfig(createTestGameConfig()))
	wall := w.CreateObstacle(physics.NewBox(mgl32.Vec3{100, 0, 0}, 10, 10))
	bullet := w.CreateBullet(mgl32.Vec3{0, 200, 0}, mgl32.Vec3{0, 300, 0}, BulletConfig(createTestGameConfig()))

	motion := w.Motion[player]
	motion.Movement = mgl32.Vec3{50, 0, 0}
	w.Motion[player] = motion

	res := sys.Update(w)

	assert.InDelta(t, 40, w.Position[player].X(), 1e-4, "stopped at the wall")
	assert.Equal(t, []ecs.ContactPair{{A: player, B: wall}}, res.Contacts)
	assert.False(t, w.Exists(bullet), "bullet flew out of the arena")
	assert.Equal(t, bounds, sys.Bounds())
}

func TestPhysicsSystem_CountsSkippedPairs(t *testing.T) {
	sys := NewPhysicsSystem(physics.Bounds{}, testLogger())
	w := ecs.NewWorld()

	a := w.CreateEnemy(mgl32.Vec3{0, 0, 0}, EnemyConfig(createTestGameConfig()))
	b := w.CreateEnemy(mgl32.Vec3{200, 0, 0}, EnemyConfig(createTestGameConfig()))
	for _, id := range []ecs.EntityID{a, b} {
		motion := w.Motion[id]
		motion.Movement = mgl32.Vec3{1, 0, 0}
		w.Motion[id] = motion
	}

	sys.Update(w)
	sys.Update(w)

	assert.Equal(t, 2, sys.SkippedMovingPairs())
}

func TestPhysicsSystem_UpdateBullets(t *testing.T) {
	sys := NewPhysicsSystem(physics.Bounds{}, testLogger())
	w := ecs.NewWorld()
	cfg := BulletConfig(createTestGameConfig())

	id := w.CreateBullet(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, cfg)

	removed := 0
	ticks := 0
	for w.Exists(id) && ticks < 10000 {
		removed += sys.UpdateBullets(w, 1.0/60)
		ticks++
	}

	// speed reaches zero once dt*0.0025*sum(k^2) passes 1
	assert.Equal(t, 1, removed)
	assert.GreaterOrEqual(t, ticks, 40)
	assert.LessOrEqual(t, ticks, 46)
}
