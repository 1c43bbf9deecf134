package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerups keeps each power-up riding on its platform and destroys
// power-ups whose platform is gone.
func UpdatePowerups(ecs *ecs.ECS) {
	registry.EachOfKind(ecs.World, cfg.KindPowerup, func(entry *donburi.Entry) {
		pow := components.Powerup.Get(entry)
		if !registry.IsLive(ecs.World, pow.Platform, cfg.KindPlatform) {
			registry.MarkDead(entry)
			return
		}
		platform := ecs.World.Entry(pow.Platform)
		r := components.Bounds.Get(entry)
		anchored := factory.PowerupBounds(platform)
		anchored.X = r.X // only the height follows the platform
		registry.SetBounds(ecs.World, entry, anchored)
	})
}

// DestroyPlatform marks a platform dead together with the power-up it owns.
func DestroyPlatform(ecs *ecs.ECS, platform *donburi.Entry) {
	plat := components.Platform.Get(platform)
	if plat.HasPowerup && registry.IsLive(ecs.World, plat.Powerup, cfg.KindPowerup) {
		registry.MarkDead(ecs.World.Entry(plat.Powerup))
	}
	plat.HasPowerup = false
	registry.MarkDead(platform)
}

// ApplyPowerup consumes a power-up touched by the player.
func ApplyPowerup(ecs *ecs.ECS, player *donburi.Entry, powerup *donburi.Entry) {
	pow := components.Powerup.Get(powerup)
	registry.MarkDead(powerup)

	if registry.IsLive(ecs.World, pow.Platform, cfg.KindPlatform) {
		components.Platform.Get(ecs.World.Entry(pow.Platform)).HasPowerup = false
	}

	switch pow.Kind {
	case cfg.PowerupBoost:
		PlaySFX(ecs, cfg.SoundBoost)
		p := components.Player.Get(player)
		p.Velocity.Y = -cfg.Powerup.BoostPower
		p.Jumping = false
	}
}
