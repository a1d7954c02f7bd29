package components

import (
	"github.com/brackenfell/tidelands/assets"
	"github.com/yohamta/donburi"
)

// Facing is the four-way sprite direction.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// AnimationData drives a directional walk cycle: facing follows the dominant
// movement axis and TimeMoving accumulates while the entity moves, resetting
// to the idle frame on stop.
type AnimationData struct {
	Sprite     *assets.Sprite
	Facing     Facing
	TimeMoving float64
}

var Animation = donburi.NewComponentType[AnimationData]()
