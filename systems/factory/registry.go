package factory

import (
	"github.com/automoto/bunnyhop/archetypes"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRegistry installs the entity registry and its broadphase space.
func CreateRegistry(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Registry.Spawn(ecs)
	registry.Setup(ecs.World, cfg.World.Width, cfg.World.Height)
	return entry
}
