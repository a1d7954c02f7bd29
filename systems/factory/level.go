package factory

import (
	"github.com/brackenfell/tidelands/archetypes"
	"github.com/brackenfell/tidelands/assets"
	"github.com/brackenfell/tidelands/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named level and spawns its singleton entity.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level, err := assets.LoadLevel(name)
	if err != nil {
		panic("failed to load level " + name + ": " + err.Error())
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Level: level,
		Name:  name,
	})
	return entry
}
