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

// CreatePlatform spawns a platform with its top-left corner at (x, y).
// The variant picks the image, which also fixes the platform size.
func CreatePlatform(ecs *ecs.ECS, x, y float64, variant int) *donburi.Entry {
	if variant < 0 || variant >= len(cfg.PlatformVariants) {
		variant = 0
	}
	platform := archetypes.Platform.Spawn(ecs)

	sprite := cfg.PlatformVariants[variant]
	w, h := cfg.FrameSize(sprite)
	registry.Add(ecs.World, platform, cfg.KindPlatform, cfg.Layers.Platform, gamemath.Rect{X: x, Y: y, W: w, H: h})

	components.Platform.SetValue(platform, components.PlatformData{Variant: variant})
	components.Sprite.SetValue(platform, components.SpriteData{ID: sprite})

	return platform
}
