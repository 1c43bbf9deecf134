package config

import "github.com/yohamta/donburi/ecs"

const (
	// Default is the only ECS draw layer; sprite ordering is handled by the render list.
	Default ecs.LayerID = iota
	Overlay
)
