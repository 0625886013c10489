package config

import (
	"errors"
	"fmt"
)

// Default returns the built-in game configuration
func Default() GameConfig {
	return GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			Scale:        1,
			TPS:          60,
		},
		Player: PlayerConfig{
			HalfWidth:  50,
			HalfHeight: 50,
			Speed:      400,
			MaxHealth:  100,
			Iframes:    1,
		},
		Enemy: EnemyConfig{
			HalfWidth:       25,
			HalfHeight:      25,
			Speed:           150,
			MaxHealth:       50,
			ContactDamage:   10,
			DetectRadius:    500,
			DisengageRadius: 700,
			SpawnInterval:   5,
			MaxAlive:        8,
		},
		Projectile: ProjectileConfig{
			HalfWidth:        4,
			HalfHeight:       4,
			LaunchSpeed:      6000,
			DropoffIncrement: 0.05,
			Cooldown:         0.1,
			Damage:           10,
		},
		World: WorldConfig{
			ConfinementTolerance: 0,
		},
		Debug: DebugConfig{
			Outlines: true,
			Grid:     true,
		},
	}
}

// Validate checks the values the simulation cannot run with
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.TPS <= 0 {
		errs = append(errs, fmt.Errorf("display: tps must be positive, got %d", c.Display.TPS))
	}

	extents := []struct {
		name string
		w, h float32
	}{
		{"player", c.Player.HalfWidth, c.Player.HalfHeight},
		{"enemy", c.Enemy.HalfWidth, c.Enemy.HalfHeight},
		{"projectile", c.Projectile.HalfWidth, c.Projectile.HalfHeight},
	}
	for _, e := range extents {
		if e.w < 0 || e.h < 0 {
			errs = append(errs, fmt.Errorf("%s: half extents must not be negative, got %gx%g", e.name, e.w, e.h))
		}
	}

	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player: maxHealth must be positive, got %d", c.Player.MaxHealth))
	}
	if c.Enemy.DisengageRadius < c.Enemy.DetectRadius {
		errs = append(errs, fmt.Errorf("enemy: disengageRadius %g is smaller than detectRadius %g",
			c.Enemy.DisengageRadius, c.Enemy.DetectRadius))
	}
	if c.Enemy.SpawnInterval < 0 || c.Projectile.Cooldown < 0 || c.Player.Iframes < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	if c.World.ConfinementTolerance < 0 {
		errs = append(errs, fmt.Errorf("world: confinementTolerance must not be negative, got %g",
			c.World.ConfinementTolerance))
	}

	return errors.Join(errs...)
}

// Validate checks the arena layout
func (a *ArenaConfig) Validate() error {
	var errs []error

	if a.ID == "" {
		errs = append(errs, errors.New("arena: id is required"))
	}
	g := a.Grid
	if g.Rows < 0 || g.Columns < 0 || g.FieldWidth < 0 || g.FieldHeight < 0 {
		errs = append(errs, fmt.Errorf("arena %s: grid values must not be negative", a.ID))
	}
	for i, o := range a.Obstacles {
		if o.HalfWidth <= 0 || o.HalfHeight <= 0 {
			errs = append(errs, fmt.Errorf("arena %s: obstacle %d has no extent", a.ID, i))
		}
	}

	return errors.Join(errs...)
}
