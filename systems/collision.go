package systems

import (
	"math"

	"github.com/brackenfell/tidelands/components"
	"github.com/brackenfell/tidelands/tags"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSeparation pushes the player out of any enemy footprint they ended
// the step inside, along the axis of least overlap. Runs after UpdatePhysics
// so it sees settled positions.
func UpdateSeparation(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	if playerObj.Footprint == nil {
		return
	}

	collision := playerObj.Footprint.Check(0, 0, tags.ResolvEnemy)
	if collision == nil {
		return
	}

	for _, other := range collision.Objects {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		separate(&playerObj.Box, &components.Object.Get(entry).Box)
	}
	playerObj.SyncFootprint()
}

// separate moves box a the minimum distance that ends its overlap with b.
func separate(a, b *tilemap.Box) {
	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}

	if overlapX < overlapY {
		if a.CenterX() < b.CenterX() {
			a.X -= overlapX
		} else {
			a.X += overlapX
		}
	} else {
		if a.CenterY() < b.CenterY() {
			a.Y -= overlapY
		} else {
			a.Y += overlapY
		}
	}
}
