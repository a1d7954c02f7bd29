package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // top-left corner of the visible world rect
}

var Camera = donburi.NewComponentType[CameraData]()
