package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ranger/internal/domain/physics"
)

var (
	testPlayer = PlayerConfig{HalfWidth: 50, HalfHeight: 50, Speed: 400, MaxHealth: 100, Iframes: 1, ShootCooldown: 0.1}
	testEnemy  = EnemyConfig{HalfWidth: 25, HalfHeight: 25, Speed: 150, MaxHealth: 50, ContactDamage: 10, DetectRadius: 500, DisengageRadius: 700}
	testBullet = BulletConfig{HalfWidth: 4, HalfHeight: 4, LaunchSpeed: 6000, DropoffIncrement: 0.05, Damage: 10}
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Position)
	assert.NotNil(t, w.Motion)
	assert.NotNil(t, w.IsPlayer)
	assert.Equal(t, EntityID(0), w.PlayerID)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	w.Position[id1] = mgl32.Vec3{100, 200, 0}

	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEnemy(mgl32.Vec3{10, 20, 0}, testEnemy)
	w.Collided[id] = true

	require.True(t, w.Exists(id))

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	_, hasBox := w.Box[id]
	assert.False(t, hasBox)
	_, hasMotion := w.Motion[id]
	assert.False(t, hasMotion)
	_, hasTarget := w.Target[id]
	assert.False(t, hasTarget)
	_, isEnemy := w.IsEnemy[id]
	assert.False(t, isEnemy)
	assert.False(t, w.Collided[id])
}

func TestDestroyEntity_ClearsPlayerID(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(mgl32.Vec3{}, testPlayer)

	w.DestroyEntity(id)

	assert.Equal(t, EntityID(0), w.PlayerID)
}

func TestExists(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()

	assert.False(t, w.Exists(id), "Entity without Position should not exist")

	w.Position[id] = mgl32.Vec3{}
	assert.True(t, w.Exists(id), "Entity with Position should exist")
}

func TestCreatePlayer(t *testing.T) {
	w := NewWorld()
	pos := mgl32.Vec3{0, -200, 0}

	id := w.CreatePlayer(pos, testPlayer)

	assert.Equal(t, id, w.PlayerID)
	assert.Equal(t, pos, w.GetPlayerPosition())
	assert.Equal(t, physics.NewBox(pos, 50, 50), w.Box[id])
	assert.Equal(t, float32(400), w.Motion[id].Speed)
	assert.False(t, w.Motion[id].IsMoving())
	assert.Equal(t, Health{Current: 100, Max: 100}, w.Health[id])
	assert.Equal(t, float32(0.1), w.PlayerData[id].ShootInterval)
	assert.True(t, w.PlayerData[id].CanShoot())
}

func TestCreateEnemy(t *testing.T) {
	w := NewWorld()

	id := w.CreateEnemy(mgl32.Vec3{100, 0, 0}, testEnemy)

	assert.Equal(t, 1, w.CountEnemies())
	assert.Equal(t, float32(25), w.Box[id].HalfWidth)
	assert.Equal(t, 50, w.Health[id].Current)
	assert.False(t, w.Target[id].Has())
	assert.Equal(t, 10, w.AI[id].ContactDamage)
}

func TestCreateBullet(t *testing.T) {
	w := NewWorld()

	id := w.CreateBullet(mgl32.Vec3{}, mgl32.Vec3{0, 10, 0}, testBullet)

	assert.Equal(t, 1, w.CountBullets())
	assert.Equal(t, float32(1), w.Motion[id].Speed)
	assert.InDelta(t, 6000, w.Motion[id].Movement.Y(), 1e-3)
	assert.Equal(t, physics.Dropoff{}, w.Dropoff[id])
	assert.InDelta(t, 1.5707964, w.Facing[id].Angle, 1e-6)
	assert.Equal(t, 10, w.BulletData[id].Damage)
}

func TestCreateObstacle(t *testing.T) {
	w := NewWorld()
	box := physics.NewBox(mgl32.Vec3{30, 40, 0}, 5, 5)

	id := w.CreateObstacle(box)

	assert.Equal(t, box.Center, w.Position[id])
	assert.Equal(t, box, w.Box[id])
	_, hasMotion := w.Motion[id]
	assert.False(t, hasMotion)
}

func TestSortedIDs(t *testing.T) {
	m := map[EntityID]struct{}{5: {}, 1: {}, 3: {}}

	assert.Equal(t, []EntityID{1, 3, 5}, sortedIDs(m))
	assert.Empty(t, sortedIDs(map[EntityID]int{}))
}

func TestHealth(t *testing.T) {
	t.Run("TakeDamage", func(t *testing.T) {
		h := Health{Current: 100, Max: 100}

		dead := h.TakeDamage(30)
		assert.False(t, dead)
		assert.Equal(t, 70, h.Current)

		dead = h.TakeDamage(80)
		assert.True(t, dead)
		assert.Equal(t, -10, h.Current)
	})

	t.Run("TakeDamage with Iframe", func(t *testing.T) {
		h := Health{Current: 100, Max: 100, Iframe: 0.5}

		dead := h.TakeDamage(50)
		assert.False(t, dead)
		assert.Equal(t, 100, h.Current, "Should not take damage during iframe")
	})

	t.Run("IsAlive", func(t *testing.T) {
		h := Health{Current: 1, Max: 100}
		assert.True(t, h.IsAlive())

		h.Current = 0
		assert.False(t, h.IsAlive())

		h.Current = -10
		assert.False(t, h.IsAlive())
	})
}

func TestTarget(t *testing.T) {
	var target Target
	assert.False(t, target.Has())

	target.Set(mgl32.Vec3{1, 2, 0})
	assert.True(t, target.Has())
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, target.Point)

	target.Clear()
	assert.False(t, target.Has())
	assert.Equal(t, mgl32.Vec3{}, target.Point)
}

func TestEnemies(t *testing.T) {
	w := NewWorld()
	a := w.CreateEnemy(mgl32.Vec3{}, testEnemy)
	w.CreatePlayer(mgl32.Vec3{}, testPlayer)
	b := w.CreateEnemy(mgl32.Vec3{}, testEnemy)

	assert.Equal(t, []EntityID{a, b}, w.Enemies())
}
