package systems

import (
	"github.com/brackenfell/tidelands/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and mouse into the Input singleton.
// Must run before every system that reads intent.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	input.Horizontal = 0
	input.Vertical = 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		input.Horizontal -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		input.Horizontal += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		input.Vertical -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		input.Vertical += 1
	}

	// Cursor coordinates arrive already mapped to the virtual screen.
	mx, my := ebiten.CursorPosition()
	input.MouseX = float64(mx)
	input.MouseY = float64(my)

	_, wheelY := ebiten.Wheel()
	input.Wheel = wheelY

	input.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	input.MouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.RightDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	input.Enter = ebiten.IsKeyPressed(ebiten.KeyEnter)
	input.ToggleEditor = inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
