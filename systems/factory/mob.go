package factory

import (
	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMob spawns a mob centered horizontally on centerX with its top at y.
func CreateMob(ecs *ecs.ECS, centerX, y, vx float64) *donburi.Entry {
	mob := archetypes.Mob.Spawn(ecs)

	w, h := cfg.FrameSize(cfg.SpriteMobUp)
	registry.Add(ecs.World, mob, cfg.KindMob, cfg.Layers.Mob, gamemath.Rect{X: centerX - w/2, Y: y, W: w, H: h})

	components.Mob.SetValue(mob, components.MobData{
		VX:     vx,
		DY:     cfg.Mob.BobStep,
		Facing: cfg.FacingUp,
	})
	components.Sprite.SetValue(mob, components.SpriteData{ID: cfg.SpriteMobUp})

	return mob
}
