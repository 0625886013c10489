package system

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/ranger/internal/domain/arena"
	"github.com/younwookim/ranger/internal/ecs"
	"github.com/younwookim/ranger/internal/infrastructure/config"
)

// CombatStats counts what happened during a run
type CombatStats struct {
	Shots       int
	Hits        int
	Kills       int
	Spawned     int
	DamageTaken int
}

// CombatSystem owns spawning, shooting and damage
type CombatSystem struct {
	config *config.GameConfig
	arena  *arena.Arena
	rng    *rand.Rand
	logger *log.Logger

	spawnTimer float32
	stats      CombatStats

	// Event callbacks
	OnPlayerHit func(damage int)
	OnKill      func(id ecs.EntityID)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig, a *arena.Arena, rng *rand.Rand, logger *log.Logger) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		arena:  a,
		rng:    rng,
		logger: logger,
	}
}

// Populate creates the player at the arena spawn and every obstacle
func (s *CombatSystem) Populate(w *ecs.World) ecs.EntityID {
	for _, box := range s.arena.Obstacles {
		w.CreateObstacle(box)
	}
	return w.CreatePlayer(s.arena.PlayerSpawn, PlayerConfig(s.config))
}

// Shoot fires toward the cursor when the input asks for it
func (s *CombatSystem) Shoot(w *ecs.World, input ecs.InputState) {
	if _, ok := ecs.ShootAtCursor(w, input, BulletConfig(s.config)); ok {
		s.stats.Shots++
	}
}

// ResolveHits applies bullet hits and removes the enemies they killed
func (s *CombatSystem) ResolveHits(w *ecs.World) []ecs.BulletHit {
	hits := ecs.DetectBulletHits(w)
	for _, hit := range hits {
		if hit.Damage > 0 {
			s.stats.Hits++
		}
	}

	for _, id := range ecs.RemoveDeadEnemies(w) {
		s.stats.Kills++
		s.logger.Debug("enemy killed", "id", id, "kills", s.stats.Kills)
		if s.OnKill != nil {
			s.OnKill(id)
		}
	}

	return hits
}

// ApplyContacts hurts the player for touching enemies
func (s *CombatSystem) ApplyContacts(w *ecs.World, contacts []ecs.ContactPair) int {
	damage := ecs.ApplyContactDamage(w, contacts)
	if damage == 0 {
		return 0
	}

	s.stats.DamageTaken += damage
	s.logger.Debug("player hit", "damage", damage, "health", w.Health[w.PlayerID].Current)
	if s.OnPlayerHit != nil {
		s.OnPlayerHit(damage)
	}
	return damage
}

// Update advances the repeating spawn timer and spawns an enemy every
// SpawnInterval seconds
func (s *CombatSystem) Update(w *ecs.World, dt float32) (ecs.EntityID, bool) {
	interval := s.config.Enemy.SpawnInterval
	if interval <= 0 {
		return 0, false
	}

	s.spawnTimer += dt
	if s.spawnTimer < interval {
		return 0, false
	}
	s.spawnTimer -= interval

	return s.SpawnEnemy(w)
}

// SpawnEnemy spawns an enemy at a random spawn point, unless MaxAlive
// enemies are already alive
func (s *CombatSystem) SpawnEnemy(w *ecs.World) (ecs.EntityID, bool) {
	if limit := s.config.Enemy.MaxAlive; limit > 0 && w.CountEnemies() >= limit {
		return 0, false
	}

	n := 0
	if count := len(s.arena.EnemySpawns); count > 0 {
		n = s.rng.Intn(count)
	}
	pos := s.arena.EnemySpawn(n)

	id := w.CreateEnemy(pos, EnemyConfig(s.config))
	s.stats.Spawned++
	s.logger.Debug("enemy spawned", "id", id, "x", pos.X(), "y", pos.Y())

	return id, true
}

// Stats returns the counters so far
func (s *CombatSystem) Stats() CombatStats {
	return s.stats
}
