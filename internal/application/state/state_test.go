package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{StateReplayEnded, "ReplayEnded"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Running(t *testing.T) {
	assert.True(t, StatePlaying.Running())
	assert.False(t, StatePaused.Running())
	assert.False(t, StateGameOver.Running())
	assert.False(t, StateReplayEnded.Running())
}

func TestGameState_Transition(t *testing.T) {
	tests := []struct {
		name     string
		from     GameState
		event    Event
		expected GameState
	}{
		{"pause", StatePlaying, EventTogglePause, StatePaused},
		{"resume", StatePaused, EventTogglePause, StatePlaying},
		{"death", StatePlaying, EventPlayerDied, StateGameOver},
		{"replay runs out", StatePlaying, EventInputExhausted, StateReplayEnded},
		{"restart after death", StateGameOver, EventRestart, StatePlaying},
		{"restart after replay", StateReplayEnded, EventRestart, StatePlaying},
		{"no pause on game over", StateGameOver, EventTogglePause, StateGameOver},
		{"no death while paused", StatePaused, EventPlayerDied, StatePaused},
		{"no restart while playing", StatePlaying, EventRestart, StatePlaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.Transition(tt.event))
		})
	}
}
