package factory

import (
	"github.com/brackenfell/tidelands/archetypes"
	"github.com/brackenfell/tidelands/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the entity overlap space sized to the level.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(entry, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return entry
}
