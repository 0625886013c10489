// Package state holds the states of a running game session.
package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	// StateReplayEnded is reached when a replay runs out of recorded input
	StateReplayEnded
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateReplayEnded:
		return "ReplayEnded"
	default:
		return "Unknown"
	}
}

// Running reports whether the simulation advances in this state
func (s GameState) Running() bool {
	return s == StatePlaying
}

// Transition returns the state after an event. Unknown events leave the
// state unchanged.
func (s GameState) Transition(e Event) GameState {
	switch {
	case e == EventTogglePause && s == StatePlaying:
		return StatePaused
	case e == EventTogglePause && s == StatePaused:
		return StatePlaying
	case e == EventPlayerDied && s == StatePlaying:
		return StateGameOver
	case e == EventInputExhausted && s == StatePlaying:
		return StateReplayEnded
	case e == EventRestart && (s == StateGameOver || s == StateReplayEnded):
		return StatePlaying
	}
	return s
}

// Event drives state transitions
type Event int

const (
	EventTogglePause Event = iota
	EventPlayerDied
	EventInputExhausted
	EventRestart
)
