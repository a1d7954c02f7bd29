package systems

import (
	"image/color"

	"github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var collisionOverlayColor = color.RGBA{R: 255, G: 0, B: 0, A: 90}

// DrawDebug overlays the solid sub-cells of the object layer when collision
// debugging is switched on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.ShowCollision {
		return
	}
	camera, ok := currentCamera(e)
	if !ok {
		return
	}
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return
	}

	l := level.Level
	row0, row1, col0, col1 := visibleCells(l, camera.Position.X, camera.Position.Y, screen)

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			def := l.TileDef(tilemap.LayerObject, row, col)
			if def == nil || def.Collision == nil {
				continue
			}
			for sr := 0; sr < tilemap.Sections; sr++ {
				for sc := 0; sc < tilemap.Sections; sc++ {
					if !def.Collision[sr][sc] {
						continue
					}
					vector.DrawFilledRect(screen,
						float32(float64(col)*tilemap.TileSize+float64(sc)*tilemap.SectionSize-camera.Position.X),
						float32(float64(row)*tilemap.TileSize+float64(sr)*tilemap.SectionSize-camera.Position.Y),
						float32(tilemap.SectionSize), float32(tilemap.SectionSize),
						collisionOverlayColor, false)
				}
			}
		}
	}
}
