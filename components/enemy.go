package components

import "github.com/yohamta/donburi"

// EnemyData holds a patrolling enemy's type key and its walk bounds, derived
// from the spawn cell and the type's patrol range.
type EnemyData struct {
	Type  string
	Dir   float64 // -1 or 1, current patrol direction
	MinX  float64
	MaxX  float64
	LastX float64 // position after the previous step, for stuck detection
}

var Enemy = donburi.NewComponentType[EnemyData]()
