package systems

import (
	"github.com/brackenfell/tidelands/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances every moving entity through the level grid and
// mirrors the settled boxes into the overlap space.
func UpdatePhysics(e *ecs.ECS) {
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return
	}
	dt := frameTime()

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		level.Level.MoveBox(&obj.Box, physics.VelX, physics.VelY, dt)
		obj.SyncFootprint()
	})
}
