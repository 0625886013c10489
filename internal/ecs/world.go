package ecs

import (
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/ranger/internal/domain/physics"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position   map[EntityID]mgl32.Vec3
	Box        map[EntityID]physics.Box
	Motion     map[EntityID]physics.Motion
	Health     map[EntityID]Health
	Target     map[EntityID]Target
	Dropoff    map[EntityID]physics.Dropoff
	Facing     map[EntityID]Facing
	AI         map[EntityID]AI
	BulletData map[EntityID]Bullet
	PlayerData map[EntityID]Player

	// Collided marks boxes that touched something this tick (debug outlines)
	Collided map[EntityID]bool

	// Tags
	IsPlayer   map[EntityID]struct{}
	IsEnemy    map[EntityID]struct{}
	IsBullet   map[EntityID]struct{}
	IsObstacle map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Position:   make(map[EntityID]mgl32.Vec3),
		Box:        make(map[EntityID]physics.Box),
		Motion:     make(map[EntityID]physics.Motion),
		Health:     make(map[EntityID]Health),
		Target:     make(map[EntityID]Target),
		Dropoff:    make(map[EntityID]physics.Dropoff),
		Facing:     make(map[EntityID]Facing),
		AI:         make(map[EntityID]AI),
		BulletData: make(map[EntityID]Bullet),
		PlayerData: make(map[EntityID]Player),
		Collided:   make(map[EntityID]bool),
		IsPlayer:   make(map[EntityID]struct{}),
		IsEnemy:    make(map[EntityID]struct{}),
		IsBullet:   make(map[EntityID]struct{}),
		IsObstacle: make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Box, id)
	delete(w.Motion, id)
	delete(w.Health, id)
	delete(w.Target, id)
	delete(w.Dropoff, id)
	delete(w.Facing, id)
	delete(w.AI, id)
	delete(w.BulletData, id)
	delete(w.PlayerData, id)
	delete(w.Collided, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsBullet, id)
	delete(w.IsObstacle, id)

	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// PlayerConfig holds configuration for creating the player
type PlayerConfig struct {
	HalfWidth, HalfHeight float32
	Speed                 float32
	MaxHealth             int
	Iframes               float32 // seconds of invincibility after a hit
	ShootCooldown         float32 // seconds between shots
}

// CreatePlayer creates the player entity
func (w *World) CreatePlayer(pos mgl32.Vec3, cfg PlayerConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Box[id] = physics.NewBox(pos, cfg.HalfWidth, cfg.HalfHeight)
	w.Motion[id] = physics.NewMotion(cfg.Speed)
	w.Health[id] = Health{Current: cfg.MaxHealth, Max: cfg.MaxHealth}
	w.Facing[id] = Facing{}
	w.PlayerData[id] = Player{
		Iframes:       cfg.Iframes,
		ShootInterval: cfg.ShootCooldown,
	}
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// EnemyConfig holds configuration for creating an enemy
type EnemyConfig struct {
	HalfWidth, HalfHeight float32
	Speed                 float32
	MaxHealth             int
	ContactDamage         int
	DetectRadius          float32
	DisengageRadius       float32
}

// CreateEnemy creates an enemy entity
func (w *World) CreateEnemy(pos mgl32.Vec3, cfg EnemyConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Box[id] = physics.NewBox(pos, cfg.HalfWidth, cfg.HalfHeight)
	w.Motion[id] = physics.NewMotion(cfg.Speed)
	w.Health[id] = Health{Current: cfg.MaxHealth, Max: cfg.MaxHealth}
	w.Target[id] = Target{}
	w.Facing[id] = Facing{}
	w.AI[id] = AI{
		DetectRadius:    cfg.DetectRadius,
		DisengageRadius: cfg.DisengageRadius,
		ContactDamage:   cfg.ContactDamage,
	}
	w.IsEnemy[id] = struct{}{}

	return id
}

// BulletConfig holds configuration for creating a bullet
type BulletConfig struct {
	HalfWidth, HalfHeight float32
	LaunchSpeed           float32
	DropoffIncrement      float32
	Damage                int
}

// CreateBullet launches a bullet from origin toward destination
func (w *World) CreateBullet(origin, destination mgl32.Vec3, cfg BulletConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = origin
	w.Box[id] = physics.NewBox(origin, cfg.HalfWidth, cfg.HalfHeight)
	w.Motion[id] = physics.Launch(origin, destination, cfg.LaunchSpeed)
	w.Dropoff[id] = physics.Dropoff{}
	w.Facing[id] = Facing{Angle: physics.Angle(origin, destination)}
	w.BulletData[id] = Bullet{
		Damage:    cfg.Damage,
		Increment: cfg.DropoffIncrement,
	}
	w.IsBullet[id] = struct{}{}

	return id
}

// CreateObstacle creates a fixed obstacle
func (w *World) CreateObstacle(box physics.Box) EntityID {
	id := w.NewEntity()

	w.Position[id] = box.Center
	w.Box[id] = box
	w.IsObstacle[id] = struct{}{}

	return id
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() mgl32.Vec3 {
	return w.Position[w.PlayerID]
}

// CountEnemies returns the number of live enemies
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}

// Enemies returns the live enemy IDs in ascending order
func (w *World) Enemies() []EntityID {
	return sortedIDs(w.IsEnemy)
}

// CountBullets returns the number of bullets in flight
func (w *World) CountBullets() int {
	return len(w.IsBullet)
}

// sortedIDs returns the IDs of a component or tag map in ascending order.
// Systems iterate in this order so a tick is reproducible.
func sortedIDs[V any](m map[EntityID]V) []EntityID {
	return slices.Sorted(maps.Keys(m))
}
