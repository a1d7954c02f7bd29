package components

import (
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's world-space footprint: the box the grid mover
// advances, mirrored into a resolv object for entity-vs-entity overlap.
type ObjectData struct {
	Box       tilemap.Box
	Footprint *resolv.Object
}

// SyncFootprint pushes the box position into the resolv space after the
// mover has settled it.
func (o *ObjectData) SyncFootprint() {
	if o.Footprint == nil {
		return
	}
	o.Footprint.X = o.Box.X
	o.Footprint.Y = o.Box.Y
	o.Footprint.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
