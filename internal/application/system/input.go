package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ranger/internal/ecs"
)

// InputSystem reads keyboard and mouse into an ecs.InputState
type InputSystem struct {
	screenW int
	screenH int
}

// NewInputSystem creates an input system for a screen of the given size
func NewInputSystem(screenW, screenH int) *InputSystem {
	return &InputSystem{screenW: screenW, screenH: screenH}
}

// GetInput reads the current input state.
// WASD moves, the left mouse button shoots.
func (s *InputSystem) GetInput() ecs.InputState {
	mx, my := ebiten.CursorPosition()
	return ecs.InputState{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD),
		Up:     ebiten.IsKeyPressed(ebiten.KeyW),
		Down:   ebiten.IsKeyPressed(ebiten.KeyS),
		Shoot:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Cursor: s.ScreenToWorld(mx, my),
	}
}

// Next implements InputSource; live input never runs out
func (s *InputSystem) Next() (ecs.InputState, bool) {
	return s.GetInput(), true
}

// ScreenToWorld converts a screen pixel to world coordinates.
// The world origin is the screen center and y points up.
func (s *InputSystem) ScreenToWorld(x, y int) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(x) - float32(s.screenW)/2,
		float32(s.screenH)/2 - float32(y),
		0,
	}
}

// WorldToScreen converts world coordinates to a screen pixel position
func WorldToScreen(p mgl32.Vec3, screenW, screenH int) (float64, float64) {
	return float64(p.X()) + float64(screenW)/2, float64(screenH)/2 - float64(p.Y())
}

// InputSource yields one input state per tick. ok is false once the source
// is exhausted.
type InputSource interface {
	Next() (input ecs.InputState, ok bool)
}
