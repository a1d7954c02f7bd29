package factory

import (
	"github.com/brackenfell/tidelands/archetypes"
	"github.com/brackenfell/tidelands/components"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEditor spawns the editor singleton, closed, with every layer visible.
func CreateEditor(ecs *ecs.ECS, defaultTileset string) *donburi.Entry {
	entry := archetypes.Editor.Spawn(ecs)
	components.Editor.SetValue(entry, components.EditorData{
		SelectedTileset: defaultTileset,
		SelectedTile:    -1,
		ShowBackground:  true,
		ShowObject:      true,
		ShowOverlay:     true,
		Zoom:            2 * tilemap.TileSize,
	})
	return entry
}
