package components

import (
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *tilemap.Level
	Name  string
}

var Level = donburi.NewComponentType[LevelData]()
