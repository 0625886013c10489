package config

// GameConfig is the root config for game.yaml.
// Lengths are world units, durations are seconds.
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	World      WorldConfig      `yaml:"world"`
	Debug      DebugConfig      `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	TPS          int `yaml:"tps"`
}

// DT returns the fixed tick length in seconds
func (d DisplayConfig) DT() float32 {
	if d.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1 / float32(d.TPS)
}

type PlayerConfig struct {
	HalfWidth  float32 `yaml:"halfWidth"`
	HalfHeight float32 `yaml:"halfHeight"`
	Speed      float32 `yaml:"speed"`
	MaxHealth  int     `yaml:"maxHealth"`
	Iframes    float32 `yaml:"iframes"`
}

type EnemyConfig struct {
	HalfWidth     float32 `yaml:"halfWidth"`
	HalfHeight    float32 `yaml:"halfHeight"`
	Speed         float32 `yaml:"speed"`
	MaxHealth     int     `yaml:"maxHealth"`
	ContactDamage int     `yaml:"contactDamage"`
	// DetectRadius acquires the player as target, DisengageRadius drops it
	DetectRadius    float32 `yaml:"detectRadius"`
	DisengageRadius float32 `yaml:"disengageRadius"`
	SpawnInterval   float32 `yaml:"spawnInterval"`
	MaxAlive        int     `yaml:"maxAlive"`
}

type ProjectileConfig struct {
	HalfWidth        float32 `yaml:"halfWidth"`
	HalfHeight       float32 `yaml:"halfHeight"`
	LaunchSpeed      float32 `yaml:"launchSpeed"`
	DropoffIncrement float32 `yaml:"dropoffIncrement"`
	Cooldown         float32 `yaml:"cooldown"`
	Damage           int     `yaml:"damage"`
}

type WorldConfig struct {
	// ConfinementTolerance lets a box stick out past the arena edge
	ConfinementTolerance float32 `yaml:"confinementTolerance"`
}

type DebugConfig struct {
	Outlines bool `yaml:"outlines"`
	Grid     bool `yaml:"grid"`
}
