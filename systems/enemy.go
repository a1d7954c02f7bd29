package systems

import (
	"github.com/brackenfell/tidelands/components"
	"github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies walks each enemy along its patrol line, turning around at the
// patrol bounds or when the grid stopped it last step.
func UpdateEnemies(e *ecs.ECS) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		typeCfg, ok := config.Enemy.Types[enemy.Type]
		if !ok {
			return
		}

		if obj.Box.X <= enemy.MinX {
			enemy.Dir = 1
		} else if obj.Box.X >= enemy.MaxX {
			enemy.Dir = -1
		} else if physics.VelX != 0 && obj.Box.X == enemy.LastX {
			// A wall clamped the previous step.
			enemy.Dir = -enemy.Dir
		}

		physics.VelX = enemy.Dir * typeCfg.Speed
		physics.VelY = 0
		enemy.LastX = obj.Box.X
	})
}
