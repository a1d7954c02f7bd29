package systems

import (
	"github.com/brackenfell/tidelands/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// frameTime is the fixed simulation step, derived from the tick rate.
func frameTime() float64 {
	return 1.0 / float64(ebiten.TPS())
}

func currentLevel(e *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

func currentCamera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

func currentEditor(e *ecs.ECS) (*components.EditorData, bool) {
	entry, ok := components.Editor.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Editor.Get(entry), true
}
