// Package scene defines what the game loop runs: one Scene at a time, ticked
// at a fixed rate and drawn every frame.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The playing scene is the only one today;
// a title or results screen would hand over by returning itself from Update.
type Scene interface {
	// Update advances one fixed tick of dt seconds. A non-nil next replaces
	// this scene; an error stops the loop (game.ErrQuit stops it cleanly).
	Update(dt float32) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter and OnExit bracket the time the scene is current. OnExit also
	// runs when the game quits.
	OnEnter()
	OnExit()
}
