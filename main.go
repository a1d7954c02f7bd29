package main

import (
	_ "embed"
	"flag"
	"image"
	"log"

	"github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/fonts"
	"github.com/brackenfell/tidelands/scenes"
	"github.com/brackenfell/tidelands/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets/fonts/boardwalk.ttf
var boardwalkFont []byte

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelName string) *Game {
	fonts.LoadFont(fonts.Boardwalk, boardwalkFont)
	fonts.LoadFontWithSize(fonts.BoardwalkTitle, boardwalkFont, 16)
	fonts.LoadFontWithSize(fonts.BoardwalkSmall, boardwalkFont, 8)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, levelName)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "beach", "level to load from the assets directory")
	showCollision := flag.Bool("collision", false, "overlay the collision grid")
	flag.Parse()
	config.Debug.ShowCollision = *showCollision

	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*levelName)); err != nil {
		log.Fatal(err)
	}
}
