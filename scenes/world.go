package scenes

import (
	"image/color"
	"sync"

	"github.com/brackenfell/tidelands/assets"
	"github.com/brackenfell/tidelands/components"
	cfg "github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/systems"
	"github.com/brackenfell/tidelands/systems/factory"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one loaded level: simulation, rendering and the in-game
// editor.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, levelName string) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelName: levelName}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateEditor)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateSeparation)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawEditor)

	ws.ecs = e

	// The level first: everything else is sized and positioned from it.
	levelEntry := factory.CreateLevel(ws.ecs, ws.levelName)
	levelData := components.Level.Get(levelEntry)
	level := levelData.Level

	factory.CreateSpace(ws.ecs,
		level.Cols()*tilemap.TileSize,
		level.Rows()*tilemap.TileSize,
		tilemap.TileSize, tilemap.TileSize,
	)

	defaultTileset := ""
	if ids := level.Registry().IDs(); len(ids) > 0 {
		defaultTileset = ids[0]
	}
	editorEntry := factory.CreateEditor(ws.ecs, defaultTileset)
	if saved, err := systems.LoadEditorSettings(); err == nil && saved != nil {
		systems.ApplySavedEditorSettings(components.Editor.Get(editorEntry), saved, level.Registry().IDs())
	}

	playerX := float64(level.Cols()) * tilemap.TileSize / 2
	playerY := float64(level.Rows()) * tilemap.TileSize / 2

	listings, err := assets.LevelObjects(ws.levelName)
	if err != nil {
		panic("failed to load level objects: " + err.Error())
	}
	for _, listing := range listings {
		x := float64(listing.Col) * tilemap.TileSize
		y := float64(listing.Row) * tilemap.TileSize
		if listing.Type == "Player" {
			playerX = x + (tilemap.TileSize-cfg.Player.Width)/2
			playerY = y + tilemap.TileSize - cfg.Player.Height
			continue
		}
		factory.CreateEnemy(ws.ecs, x, y, listing.Type)
	}

	playerEntry := factory.CreatePlayer(ws.ecs, playerX, playerY)
	playerObj := components.Object.Get(playerEntry)

	// Snap the camera onto the player so the first frames do not pan in
	// from the level origin.
	factory.CreateCamera(ws.ecs,
		playerObj.Box.CenterX()-float64(cfg.C.Width)/2,
		playerObj.Box.CenterY()-float64(cfg.C.Height)/2,
	)
}
