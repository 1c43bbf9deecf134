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

// CreatePowerup attaches a power-up to platform, centered just above its top.
func CreatePowerup(ecs *ecs.ECS, platform *donburi.Entry, kind cfg.PowerupKind) *donburi.Entry {
	powerup := archetypes.Powerup.Spawn(ecs)

	registry.Add(ecs.World, powerup, cfg.KindPowerup, cfg.Layers.Powerup, PowerupBounds(platform))

	components.Powerup.SetValue(powerup, components.PowerupData{
		Kind:     kind,
		Platform: platform.Entity(),
	})
	components.Sprite.SetValue(powerup, components.SpriteData{ID: cfg.SpritePowerupBoost})

	plat := components.Platform.Get(platform)
	plat.Powerup = powerup.Entity()
	plat.HasPowerup = true

	return powerup
}

// PowerupBounds anchors a power-up rect to its platform.
func PowerupBounds(platform *donburi.Entry) gamemath.Rect {
	pr := components.Bounds.Get(platform)
	w, h := cfg.FrameSize(cfg.SpritePowerupBoost)
	return gamemath.RectFromMidBottom(pr.CenterX(), pr.Top()-cfg.Powerup.Offset, w, h)
}
