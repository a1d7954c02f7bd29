package factory

import (
	"fmt"

	"github.com/brackenfell/tidelands/archetypes"
	"github.com/brackenfell/tidelands/components"
	"github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/tags"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a patrolling enemy of the given type at (x, y). The
// patrol bounds extend the type's range to each side of the spawn point.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyType string) *donburi.Entry {
	typeCfg, ok := config.Enemy.Types[enemyType]
	if !ok {
		panic(fmt.Sprintf("unknown enemy type %q", enemyType))
	}

	e := archetypes.Enemy.Spawn(ecs)

	box := tilemap.Box{X: x, Y: y, W: typeCfg.Width, H: typeCfg.Height}
	footprint := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvEnemy)
	footprint.Data = e

	components.Object.Set(e, &components.ObjectData{
		Box:       box,
		Footprint: footprint,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Speed: typeCfg.Speed,
	})
	components.Enemy.SetValue(e, components.EnemyData{
		Type: enemyType,
		Dir:  1,
		MinX: x - typeCfg.PatrolRange,
		MaxX: x + typeCfg.PatrolRange,
	})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(footprint)
	return e
}
