package system

import (
	"github.com/chewxy/math32"

	"github.com/younwookim/ranger/internal/ecs"
)

// AutoPilot stands still and shoots at the nearest enemy. The headless sim
// command plays with it when no replay is given.
type AutoPilot struct {
	sim *Simulation
}

// NewAutoPilot creates an autopilot for sim
func NewAutoPilot(sim *Simulation) *AutoPilot {
	return &AutoPilot{sim: sim}
}

// Next implements InputSource. It runs out once the player is gone.
func (a *AutoPilot) Next() (ecs.InputState, bool) {
	w := a.sim.World
	if w.PlayerID == 0 {
		return ecs.InputState{}, false
	}

	player := w.GetPlayerPosition()
	input := ecs.InputState{Cursor: player}
	best := math32.Inf(1)
	for _, id := range w.Enemies() {
		pos := w.Position[id]
		if d := pos.Sub(player).Len(); d < best {
			best = d
			input.Cursor = pos
			input.Shoot = true
		}
	}
	return input, true
}
