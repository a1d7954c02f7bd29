package systems

import (
	"math"

	"github.com/brackenfell/tidelands/components"
	"github.com/brackenfell/tidelands/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns polled intent into a velocity and keeps the walk cycle
// in step with it. Movement freezes while the editor panel is open so the
// player does not wander during edits.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if editor, ok := currentEditor(e); ok && editor.Open {
		physics.VelX = 0
		physics.VelY = 0
		anim.TimeMoving = 0
		return
	}

	dx, dy := input.Horizontal, input.Vertical
	if dx != 0 && dy != 0 {
		// Diagonals move at the same speed as the axes.
		inv := 1 / math.Sqrt2
		dx *= inv
		dy *= inv
	}
	physics.VelX = dx * physics.Speed
	physics.VelY = dy * physics.Speed

	if dx == 0 && dy == 0 {
		anim.TimeMoving = 0
		return
	}
	anim.TimeMoving += frameTime()

	// The side animation wins on perfect diagonals.
	switch {
	case math.Abs(dx) >= math.Abs(dy) && dx > 0:
		anim.Facing = components.FacingRight
	case math.Abs(dx) >= math.Abs(dy) && dx < 0:
		anim.Facing = components.FacingLeft
	case dy > 0:
		anim.Facing = components.FacingDown
	default:
		anim.Facing = components.FacingUp
	}
}
