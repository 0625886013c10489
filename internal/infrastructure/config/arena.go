package config

// ArenaConfig is the root config for arenas/<name>.yaml
type ArenaConfig struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Grid        GridConfig       `yaml:"grid"`
	PlayerSpawn PositionConfig   `yaml:"playerSpawn"`
	Obstacles   []ObstacleConfig `yaml:"obstacles"`
	EnemySpawns []PositionConfig `yaml:"enemySpawns"`
}

type GridConfig struct {
	Rows        int     `yaml:"rows"`
	Columns     int     `yaml:"columns"`
	FieldWidth  float32 `yaml:"fieldWidth"`
	FieldHeight float32 `yaml:"fieldHeight"`
}

type PositionConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

type ObstacleConfig struct {
	X          float32 `yaml:"x"`
	Y          float32 `yaml:"y"`
	HalfWidth  float32 `yaml:"halfWidth"`
	HalfHeight float32 `yaml:"halfHeight"`
}
