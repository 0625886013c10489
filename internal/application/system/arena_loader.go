package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/ranger/internal/domain/arena"
	"github.com/younwookim/ranger/internal/domain/physics"
	"github.com/younwookim/ranger/internal/ecs"
	"github.com/younwookim/ranger/internal/infrastructure/config"
)

// LoadArena converts an ArenaConfig into an Arena. An arena without a grid
// is confined to the screen.
func LoadArena(cfg *config.ArenaConfig, game *config.GameConfig) *arena.Arena {
	grid := arena.Grid{
		Rows:        cfg.Grid.Rows,
		Columns:     cfg.Grid.Columns,
		FieldWidth:  cfg.Grid.FieldWidth,
		FieldHeight: cfg.Grid.FieldHeight,
	}

	a := arena.New(cfg.ID, cfg.Name, grid,
		float32(game.Display.ScreenWidth)/2,
		float32(game.Display.ScreenHeight)/2,
		game.World.ConfinementTolerance,
	)
	a.PlayerSpawn = vec(cfg.PlayerSpawn)

	for _, o := range cfg.Obstacles {
		a.AddObstacle(physics.NewBox(mgl32.Vec3{o.X, o.Y, 0}, o.HalfWidth, o.HalfHeight))
	}
	for _, s := range cfg.EnemySpawns {
		a.AddEnemySpawn(vec(s))
	}

	return a
}

func vec(p config.PositionConfig) mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, 0}
}

// PlayerConfig maps the player section of game.yaml onto the ECS constructor config
func PlayerConfig(cfg *config.GameConfig) ecs.PlayerConfig {
	return ecs.PlayerConfig{
		HalfWidth:     cfg.Player.HalfWidth,
		HalfHeight:    cfg.Player.HalfHeight,
		Speed:         cfg.Player.Speed,
		MaxHealth:     cfg.Player.MaxHealth,
		Iframes:       cfg.Player.Iframes,
		ShootCooldown: cfg.Projectile.Cooldown,
	}
}

// EnemyConfig maps the enemy section of game.yaml
func EnemyConfig(cfg *config.GameConfig) ecs.EnemyConfig {
	return ecs.EnemyConfig{
		HalfWidth:       cfg.Enemy.HalfWidth,
		HalfHeight:      cfg.Enemy.HalfHeight,
		Speed:           cfg.Enemy.Speed,
		MaxHealth:       cfg.Enemy.MaxHealth,
		ContactDamage:   cfg.Enemy.ContactDamage,
		DetectRadius:    cfg.Enemy.DetectRadius,
		DisengageRadius: cfg.Enemy.DisengageRadius,
	}
}

// BulletConfig maps the projectile section of game.yaml
func BulletConfig(cfg *config.GameConfig) ecs.BulletConfig {
	return ecs.BulletConfig{
		HalfWidth:        cfg.Projectile.HalfWidth,
		HalfHeight:       cfg.Projectile.HalfHeight,
		LaunchSpeed:      cfg.Projectile.LaunchSpeed,
		DropoffIncrement: cfg.Projectile.DropoffIncrement,
		Damage:           cfg.Projectile.Damage,
	}
}
