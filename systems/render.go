package systems

import (
	"image"
	"math"

	"github.com/brackenfell/tidelands/assets"
	"github.com/brackenfell/tidelands/components"
	cfg "github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/tags"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawLevel renders the three tile layers back to front, culled to the
// visible cell range. Empty background cells get a filler color so holes in
// the map read as holes instead of leftover frame contents.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := currentCamera(e)
	if !ok {
		return
	}
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return
	}

	showBackground, showObject, showOverlay := true, true, true
	if editor, ok := currentEditor(e); ok {
		showBackground = editor.ShowBackground
		showObject = editor.ShowObject
		showOverlay = editor.ShowOverlay
	}

	l := level.Level
	row0, row1, col0, col1 := visibleCells(l, camera.Position.X, camera.Position.Y, screen)

	if showBackground {
		for row := row0; row <= row1; row++ {
			for col := col0; col <= col1; col++ {
				if l.At(tilemap.LayerBackground, row, col) == nil {
					vector.DrawFilledRect(screen,
						float32(float64(col)*tilemap.TileSize-camera.Position.X),
						float32(float64(row)*tilemap.TileSize-camera.Position.Y),
						tilemap.TileSize, tilemap.TileSize,
						cfg.Editor.FillerColor, false)
				}
			}
		}
		drawLayer(screen, l, tilemap.LayerBackground, camera.Position.X, camera.Position.Y, row0, row1, col0, col1)
	}
	if showObject {
		drawLayer(screen, l, tilemap.LayerObject, camera.Position.X, camera.Position.Y, row0, row1, col0, col1)
	}
	if showOverlay {
		drawLayer(screen, l, tilemap.LayerOverlay, camera.Position.X, camera.Position.Y, row0, row1, col0, col1)
	}
}

// visibleCells clamps the camera rect to the level extent in cell units.
func visibleCells(l *tilemap.Level, camX, camY float64, screen *ebiten.Image) (row0, row1, col0, col1 int) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	row0 = int(math.Floor(camY / tilemap.TileSize))
	col0 = int(math.Floor(camX / tilemap.TileSize))
	row1 = int(math.Floor((camY + float64(height)) / tilemap.TileSize))
	col1 = int(math.Floor((camX + float64(width)) / tilemap.TileSize))

	row0 = max(row0, 0)
	col0 = max(col0, 0)
	row1 = min(row1, l.Rows()-1)
	col1 = min(col1, l.Cols()-1)
	return
}

func drawLayer(screen *ebiten.Image, l *tilemap.Level, tag tilemap.Layer, camX, camY float64, row0, row1, col0, col1 int) {
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			ptr := l.At(tag, row, col)
			if ptr == nil {
				continue
			}
			def := l.Registry().Tile(*ptr)

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(
				float64(col)*tilemap.TileSize-camX,
				float64(row)*tilemap.TileSize-camY,
			)
			screen.DrawImage(tileImage(ptr.Tileset, def), drawOp)
		}
	}
}

// tileImage slices a tile's source rect out of its tileset image.
func tileImage(tilesetID string, def *tilemap.TileDef) *ebiten.Image {
	x, y := int(def.X), int(def.Y)
	rect := image.Rect(x, y, x+tilemap.TileSize, y+tilemap.TileSize)
	return assets.TilesetImage(tilesetID).SubImage(rect).(*ebiten.Image)
}

// DrawSprites renders the player's walk cycle and each enemy's tinted box.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := currentCamera(e)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Culling bounds
	padding := 32.0
	minX := camera.Position.X - padding
	maxX := camera.Position.X + float64(width) + padding
	minY := camera.Position.Y - padding
	maxY := camera.Position.Y + float64(height) + padding

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		enemy := components.Enemy.Get(entry)
		if obj.Box.Right() < minX || obj.Box.X > maxX || obj.Box.Bottom() < minY || obj.Box.Y > maxY {
			return
		}

		typeCfg, ok := cfg.Enemy.Types[enemy.Type]
		if !ok {
			return
		}
		vector.DrawFilledRect(screen,
			float32(obj.Box.X-camera.Position.X),
			float32(obj.Box.Y-camera.Position.Y),
			float32(obj.Box.W), float32(obj.Box.H),
			typeCfg.TintColor, false)
	})

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Box.Right() < minX || obj.Box.X > maxX || obj.Box.Bottom() < minY || obj.Box.Y > maxY {
			return
		}

		anim := components.Animation.Get(entry)
		sprite := anim.Sprite
		if sprite == nil {
			return
		}

		frame := currentFrame(sprite, anim)
		fx, fy := int(sprite.Frames[frame][0]), int(sprite.Frames[frame][1])
		src := image.Rect(fx, fy, fx+int(sprite.FrameW), fy+int(sprite.FrameH))
		img := sprite.Sheet.SubImage(src).(*ebiten.Image)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Feet line up with the bottom of the collision box.
		drawOp.GeoM.Translate(-sprite.FrameW/2, -sprite.FrameH)
		if anim.Facing == components.FacingLeft {
			// The side sheet faces right.
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(obj.Box.CenterX(), obj.Box.Bottom())
		drawOp.GeoM.Translate(-camera.Position.X, -camera.Position.Y)

		screen.DrawImage(img, drawOp)
	})
}

// currentFrame picks the sheet frame for the entity's facing and walk timer.
// A zero timer is the idle pose, the span's first frame.
func currentFrame(sprite *assets.Sprite, anim *components.AnimationData) int {
	var span assets.FrameSpan
	switch anim.Facing {
	case components.FacingUp:
		span = sprite.Up
	case components.FacingDown:
		span = sprite.Down
	default:
		span = sprite.Side
	}

	if anim.TimeMoving == 0 || span.NumberOfFrames <= 1 || span.DurationSeconds <= 0 {
		return span.StartFrame
	}

	cycle := math.Mod(anim.TimeMoving, span.DurationSeconds) / span.DurationSeconds
	step := int(cycle * float64(span.NumberOfFrames))
	if step >= span.NumberOfFrames {
		step = span.NumberOfFrames - 1
	}
	return span.StartFrame + step
}
