package system

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/ranger/internal/domain/arena"
	"github.com/younwookim/ranger/internal/ecs"
	"github.com/younwookim/ranger/internal/infrastructure/config"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// createTestGameConfig returns the defaults with spawning switched off
func createTestGameConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Enemy.SpawnInterval = 0
	return &cfg
}

// createTestArena returns an open 1200x600 arena without obstacles
func createTestArena() *arena.Arena {
	return arena.New("test", "Test", arena.Grid{}, 600, 300, 0)
}

// inputSlice replays a fixed list of inputs
type inputSlice []ecs.InputState

func (s *inputSlice) Next() (ecs.InputState, bool) {
	if len(*s) == 0 {
		return ecs.InputState{}, false
	}
	input := (*s)[0]
	*s = (*s)[1:]
	return input, true
}

func repeatInput(input ecs.InputState, n int) *inputSlice {
	s := make(inputSlice, n)
	for i := range s {
		s[i] = input
	}
	return &s
}
