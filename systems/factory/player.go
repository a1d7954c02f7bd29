package factory

import (
	"github.com/brackenfell/tidelands/archetypes"
	"github.com/brackenfell/tidelands/assets"
	"github.com/brackenfell/tidelands/components"
	"github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/tags"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with their feet box anchored at (x, y) and
// registers their footprint in the overlap space.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	p := archetypes.Player.Spawn(ecs)

	box := tilemap.Box{X: x, Y: y, W: config.Player.Width, H: config.Player.Height}
	footprint := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvPlayer)
	footprint.Data = p

	components.Object.Set(p, &components.ObjectData{
		Box:       box,
		Footprint: footprint,
	})
	components.Physics.SetValue(p, components.PhysicsData{
		Speed: config.Player.Speed,
	})
	components.Animation.SetValue(p, components.AnimationData{
		Sprite: assets.MustLoadSprite("player"),
		Facing: components.FacingDown,
	})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(footprint)
	return p
}
