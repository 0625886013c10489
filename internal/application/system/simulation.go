package system

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/ranger/internal/domain/arena"
	"github.com/younwookim/ranger/internal/ecs"
	"github.com/younwookim/ranger/internal/infrastructure/config"
)

// TickReport describes one simulation step
type TickReport struct {
	Tick       int
	Hits       []ecs.BulletHit
	Contacts   []ecs.ContactPair
	Damage     int
	Spawned    bool
	PlayerDead bool
}

// Simulation runs the game rules without a window. The Playing scene and the
// headless sim command both drive it one fixed tick at a time.
type Simulation struct {
	World   *ecs.World
	Arena   *arena.Arena
	Combat  *CombatSystem
	Physics *PhysicsSystem

	config *config.GameConfig
	logger *log.Logger
	dt     float32
	seed   int64
	tick   int
}

// NewSimulation creates a populated world for the arena. The seed drives
// every random choice, so the same seed and input replay the same run.
func NewSimulation(cfg *config.GameConfig, a *arena.Arena, seed int64, logger *log.Logger) *Simulation {
	s := &Simulation{
		Arena:  a,
		config: cfg,
		logger: logger,
		dt:     cfg.Display.DT(),
	}
	s.Reset(seed)
	return s
}

// Reset rebuilds the world from scratch with a new seed
func (s *Simulation) Reset(seed int64) {
	s.seed = seed
	s.tick = 0
	s.World = ecs.NewWorld()
	s.Combat = NewCombatSystem(s.config, s.Arena, rand.New(rand.NewSource(seed)), s.logger)
	s.Physics = NewPhysicsSystem(s.Arena.Bounds, s.logger)
	s.Combat.Populate(s.World)
}

// Step advances the world by one tick. Behaviors write movement first, then
// bullets are hit-tested, then the collision pass resolves and integrates.
func (s *Simulation) Step(input ecs.InputState) TickReport {
	w := s.World
	dt := s.dt
	s.tick++

	ecs.ClearCollisions(w)
	ecs.UpdateTimers(w, dt)

	ecs.UpdatePlayerInput(w, input, dt)
	s.Combat.Shoot(w, input)
	ecs.UpdateEnemyAI(w, dt)
	s.Physics.UpdateBullets(w, dt)

	report := TickReport{Tick: s.tick}
	report.Hits = s.Combat.ResolveHits(w)

	res := s.Physics.Update(w)
	report.Contacts = res.Contacts
	report.Damage = s.Combat.ApplyContacts(w, res.Contacts)

	_, report.Spawned = s.Combat.Update(w, dt)
	report.PlayerDead = ecs.PlayerDead(w)

	return report
}

// Run steps until the source is exhausted, the player dies or maxTicks is
// reached (0 means no limit). It returns the last report.
func (s *Simulation) Run(source InputSource, maxTicks int) TickReport {
	var last TickReport
	for maxTicks <= 0 || s.tick < maxTicks {
		input, ok := source.Next()
		if !ok {
			break
		}
		last = s.Step(input)
		if last.PlayerDead {
			s.logger.Info("player died", "tick", s.tick)
			break
		}
	}
	return last
}

// Tick returns the number of steps taken since the last reset
func (s *Simulation) Tick() int {
	return s.tick
}

// Seed returns the seed of the current run
func (s *Simulation) Seed() int64 {
	return s.seed
}

// DT returns the fixed tick length in seconds
func (s *Simulation) DT() float32 {
	return s.dt
}

// Stats returns the combat counters of the current run
func (s *Simulation) Stats() CombatStats {
	return s.Combat.Stats()
}

// Config returns the game configuration
func (s *Simulation) Config() *config.GameConfig {
	return s.config
}
