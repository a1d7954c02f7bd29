package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for entity footprint overlap
const (
	ResolvPlayer = "player"
	ResolvEnemy  = "enemy"
)
