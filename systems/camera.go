package systems

import (
	"math"

	"github.com/brackenfell/tidelands/components"
	"github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/tags"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view toward the player and clamps it to the level.
// Positions snap to sub-pixel steps so tile seams stay stable while the
// camera drifts.
func UpdateCamera(e *ecs.ECS) {
	camera, ok := currentCamera(e)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(level.Level.Cols()) * tilemap.TileSize
	levelHeight := float64(level.Level.Rows()) * tilemap.TileSize

	targetX := playerObj.Box.CenterX() - screenWidth/2
	targetY := playerObj.Box.CenterY() - screenHeight/2

	targetX = math.Max(0, math.Min(levelWidth-screenWidth, targetX))
	targetY = math.Max(0, math.Min(levelHeight-screenHeight, targetY))

	blend := math.Min(1, config.Camera.FollowSmoothing*frameTime())
	camera.Position.X += (targetX - camera.Position.X) * blend
	camera.Position.Y += (targetY - camera.Position.Y) * blend

	sub := config.Camera.SubPixelLevel
	camera.Position.X = math.Round(camera.Position.X*sub) / sub
	camera.Position.Y = math.Round(camera.Position.Y*sub) / sub
}
