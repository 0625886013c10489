package replay_test

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/ranger/internal/application/replay"
	"github.com/younwookim/ranger/internal/application/system"
	"github.com/younwookim/ranger/internal/domain/arena"
	"github.com/younwookim/ranger/internal/domain/physics"
	"github.com/younwookim/ranger/internal/ecs"
	"github.com/younwookim/ranger/internal/infrastructure/config"
)

func newSim(seed int64) *system.Simulation {
	cfg := config.Default()
	cfg.Enemy.SpawnInterval = 0.5

	a := arena.New("test", "Test", arena.Grid{Rows: 8, Columns: 16, FieldWidth: 75, FieldHeight: 75}, 0, 0, 0)
	a.AddObstacle(physics.NewBox(mgl32.Vec3{0, 100, 0}, 37.5, 37.5))
	a.AddEnemySpawn(mgl32.Vec3{500, 250, 0})
	a.AddEnemySpawn(mgl32.Vec3{-500, -250, 0})

	return system.NewSimulation(&cfg, a, seed, log.New(io.Discard))
}

// record plays scripted input into a fresh simulation and records it
func record(seed int64, ticks int) (replay.ReplayData, *system.Simulation) {
	sim := newSim(seed)
	rec := replay.NewRecorder(seed, "test", 60)

	for i := range ticks {
		input := ecs.InputState{
			Left:   i%50 < 25,
			Right:  i%50 >= 25,
			Down:   i%80 < 10,
			Shoot:  i%2 == 0,
			Cursor: mgl32.Vec3{float32(i%9)*60 - 240, 180, 0},
		}
		rec.RecordFrame(input)
		sim.Step(input)
	}
	return rec.GetData(), sim
}

func TestReplay_ReproducesRecordedRun(t *testing.T) {
	data, live := record(2024, 300)

	replayed := newSim(data.Seed)
	replayed.Run(replay.NewReplayer(data), 0)

	assert.Equal(t, live.Tick(), replayed.Tick())
	assert.Equal(t, live.World.Position, replayed.World.Position)
	assert.Equal(t, live.World.Health, replayed.World.Health)
	assert.Equal(t, live.Stats(), replayed.Stats())
}

func TestReplay_IdleInputIsStable(t *testing.T) {
	cfg := config.Default()
	cfg.Enemy.SpawnInterval = 0
	sim := system.NewSimulation(&cfg, arena.New("empty", "", arena.Grid{}, 640, 360, 0), 1, log.New(io.Discard))
	start := sim.World.GetPlayerPosition()

	sim.Run(replay.NewReplayer(replay.CreateTestReplayData(120, 300, 0)), 0)

	assert.Equal(t, 120, sim.Tick())
	assert.Equal(t, start, sim.World.GetPlayerPosition(), "idle player must not drift")
}
