package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Equal(t, float32(400), cfg.Player.Speed)
	assert.Equal(t, 100, cfg.Player.MaxHealth)
	assert.Equal(t, float32(6000), cfg.Projectile.LaunchSpeed)
	assert.InDelta(t, 0.05, cfg.Projectile.DropoffIncrement, 1e-6)
	assert.InDelta(t, 0.1, cfg.Projectile.Cooldown, 1e-6)
	assert.Equal(t, float32(5), cfg.Enemy.SpawnInterval)
	assert.True(t, cfg.Debug.Outlines)
}

func TestLoader_LoadArena(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadArena("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 9, cfg.Grid.Rows)
	assert.Equal(t, 16, cfg.Grid.Columns)
	assert.Equal(t, float32(75), cfg.Grid.FieldWidth)
	assert.Equal(t, float32(-200), cfg.PlayerSpawn.Y)
	assert.Len(t, cfg.Obstacles, 3)
	assert.Len(t, cfg.EnemySpawns, 4)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	game, arena, err := loader.LoadAll("demo")
	require.NoError(t, err)

	assert.NotNil(t, game)
	assert.NotNil(t, arena)
}

func TestLoader_MissingFiles(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "")

	_, err := loader.LoadGame()
	assert.ErrorContains(t, err, "failed to read game.yaml")

	_, err = loader.LoadArena("nowhere")
	assert.ErrorContains(t, err, "failed to read arena nowhere")

	_, _, err = loader.LoadAll("nowhere")
	assert.Error(t, err)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("player:\n  speed: 250\n")},
	}

	cfg, err := NewFSLoader(fsys, "").LoadGame()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, float32(250), cfg.Player.Speed)
	assert.Equal(t, def.Player.MaxHealth, cfg.Player.MaxHealth)
	assert.Equal(t, def.Projectile, cfg.Projectile)
	assert.Equal(t, def.Display, cfg.Display)
}

func TestLoader_EmptyFileIsDefault(t *testing.T) {
	fsys := fstest.MapFS{"game.yaml": {Data: []byte{}}}

	cfg, err := NewFSLoader(fsys, "").LoadGame()
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoader_RejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		load    func(*Loader) error
		wantErr string
	}{
		{
			name:    "unknown key",
			file:    "game.yaml",
			content: "player:\n  sped: 250\n",
			load:    func(l *Loader) error { _, err := l.LoadGame(); return err },
			wantErr: "failed to parse game.yaml",
		},
		{
			name:    "malformed yaml",
			file:    "game.yaml",
			content: "player: [",
			load:    func(l *Loader) error { _, err := l.LoadGame(); return err },
			wantErr: "failed to parse game.yaml",
		},
		{
			name:    "invalid values",
			file:    "game.yaml",
			content: "display:\n  tps: 0\n",
			load:    func(l *Loader) error { _, err := l.LoadGame(); return err },
			wantErr: "invalid game.yaml",
		},
		{
			name:    "arena without id",
			file:    "arenas/bad.yaml",
			content: "name: Bad\n",
			load:    func(l *Loader) error { _, err := l.LoadArena("bad"); return err },
			wantErr: "invalid arena bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{tt.file: {Data: []byte(tt.content)}}
			err := tt.load(NewFSLoader(fsys, ""))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr string
	}{
		{"defaults are valid", func(*GameConfig) {}, ""},
		{"negative extent", func(c *GameConfig) { c.Enemy.HalfWidth = -1 }, "enemy: half extents"},
		{"no screen", func(c *GameConfig) { c.Display.ScreenWidth = 0 }, "screen size"},
		{"dead player", func(c *GameConfig) { c.Player.MaxHealth = 0 }, "maxHealth"},
		{"disengage inside detect", func(c *GameConfig) { c.Enemy.DisengageRadius = 10 }, "disengageRadius"},
		{"negative cooldown", func(c *GameConfig) { c.Projectile.Cooldown = -1 }, "durations"},
		{"negative tolerance", func(c *GameConfig) { c.World.ConfinementTolerance = -2 }, "confinementTolerance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestArenaConfig_Validate(t *testing.T) {
	ok := ArenaConfig{ID: "a", Obstacles: []ObstacleConfig{{HalfWidth: 1, HalfHeight: 1}}}
	assert.NoError(t, ok.Validate())

	flat := ArenaConfig{ID: "a", Obstacles: []ObstacleConfig{{HalfWidth: 1}}}
	assert.ErrorContains(t, flat.Validate(), "obstacle 0 has no extent")

	neg := ArenaConfig{ID: "a", Grid: GridConfig{Rows: -1}}
	assert.ErrorContains(t, neg.Validate(), "grid values")
}

func TestDisplayConfig_DT(t *testing.T) {
	assert.InDelta(t, 1.0/60.0, DisplayConfig{TPS: 60}.DT(), 1e-7)
	assert.InDelta(t, 1.0/30.0, DisplayConfig{TPS: 30}.DT(), 1e-7)
	assert.InDelta(t, 1.0/60.0, DisplayConfig{}.DT(), 1e-7)
}
