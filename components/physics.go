package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	VelX  float64
	VelY  float64
	Speed float64 // world units per second for a full intent vector
}

var Physics = donburi.NewComponentType[PhysicsData]()
