package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMobs moves every mob: constant horizontal speed plus a bounded
// vertical bob. Mobs that leave the world sideways are destroyed.
func UpdateMobs(ecs *ecs.ECS) {
	width := float64(cfg.World.Width)

	registry.EachOfKind(ecs.World, cfg.KindMob, func(entry *donburi.Entry) {
		mob := components.Mob.Get(entry)
		sprite := components.Sprite.Get(entry)

		r := components.Bounds.Get(entry).Translate(mob.VX, 0)

		mob.VY, mob.DY = gamemath.Oscillate(mob.VY, mob.DY, cfg.Mob.BobLimit)
		if mob.DY < 0 {
			mob.Facing = cfg.FacingUp
			sprite.ID = cfg.SpriteMobUp
		} else {
			mob.Facing = cfg.FacingDown
			sprite.ID = cfg.SpriteMobDown
		}
		w, h := cfg.FrameSize(sprite.ID)
		r = r.Recenter(w, h).Translate(0, mob.VY)

		registry.SetBounds(ecs.World, entry, r)

		if r.Left() > width+cfg.Mob.ExitMargin || r.Right() < -cfg.Mob.ExitMargin {
			registry.MarkDead(entry)
		}
	})
}
