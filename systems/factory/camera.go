package factory

import (
	"github.com/brackenfell/tidelands/archetypes"
	"github.com/brackenfell/tidelands/components"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera at the given world position.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(entry, components.CameraData{
		Position: dmath.Vec2{X: x, Y: y},
	})
	return entry
}
