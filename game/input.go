package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is the per-frame control sample. Held flags reflect key state;
// the fields marked as edges fire once per press.
type InputState struct {
	Thrust    bool
	TurnLeft  bool
	TurnRight bool
	Fire      bool
	Shoot     bool // boss-scene ranged attack

	// Boss-scene movement
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool

	ZoomIn  bool
	ZoomOut bool

	// Edge events
	TogglePause bool
	ToggleMap   bool
	Restart     bool
	EnterBoss   bool
}

// readKeyboard samples the keyboard into an InputState. This is the only
// place the simulation touches ebiten's input APIs; tests inject their own
// input function instead.
func readKeyboard() InputState {
	return InputState{
		Thrust:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Shoot:     ebiten.IsKeyPressed(ebiten.KeyF) || ebiten.IsKeyPressed(ebiten.KeyJ),

		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		MoveUp:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		MoveDown:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),

		ZoomIn:  ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyEqual),
		ZoomOut: ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyMinus),

		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		ToggleMap:   inpututil.IsKeyJustPressed(ebiten.KeyM),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		EnterBoss:   inpututil.IsKeyJustPressed(ebiten.KeyB),
	}
}
