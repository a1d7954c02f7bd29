package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ECS layer all renderers are registered on.
const Default = ecs.LayerDefault
