package archetypes

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Entity,
		components.Bounds,
		components.Object,
		components.Sprite,
		components.Player,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Entity,
		components.Bounds,
		components.Object,
		components.Sprite,
		components.Platform,
	)
	Mob = newArchetype(
		tags.Mob,
		components.Entity,
		components.Bounds,
		components.Object,
		components.Sprite,
		components.Mob,
	)
	Powerup = newArchetype(
		tags.Powerup,
		components.Entity,
		components.Bounds,
		components.Object,
		components.Sprite,
		components.Powerup,
	)
	Registry = newArchetype(
		components.Registry,
	)
	Session = newArchetype(
		components.Session,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Menu = newArchetype(
		components.Menu,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
