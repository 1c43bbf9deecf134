package systems

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner spawns mobs on a jittered timer and tops the platform count
// back up to the configured floor.
func UpdateSpawner(ecs *ecs.ECS) {
	session := GetSession(ecs)
	rng := session.Rand

	jitter := cfg.Mob.Jitter[rng.IntN(len(cfg.Mob.Jitter))]
	if session.Now-session.MobTimer > cfg.Mob.BaseInterval+jitter {
		session.MobTimer = session.Now
		SpawnMob(ecs)
	}

	width := cfg.World.Width
	for registry.Count(ecs.World, cfg.KindPlatform) < cfg.Spawner.MinPlatforms {
		pw := cfg.Spawner.MinWidth + rng.IntN(cfg.Spawner.MaxWidth-cfg.Spawner.MinWidth)
		x := rng.IntN(width - pw)
		y := cfg.Spawner.MinY + rng.IntN(cfg.Spawner.MaxY-cfg.Spawner.MinY)

		if _, placed := SpawnPlatform(ecs, float64(x), float64(y), -1); !placed {
			// Try again next tick.
			break
		}
	}
}

// SpawnPlatform creates a platform, rolling its variant when variant is -1
// and attaching a power-up with the configured probability. A platform that
// overlaps an existing one is discarded and placed is false.
func SpawnPlatform(ecs *ecs.ECS, x, y float64, variant int) (entry *donburi.Entry, placed bool) {
	platform := newPlatform(ecs, x, y, variant)
	if len(registry.Overlapping(ecs.World, platform, cfg.KindPlatform, 0, 0)) > 0 {
		DestroyPlatform(ecs, platform)
		return platform, false
	}
	return platform, true
}

func newPlatform(ecs *ecs.ECS, x, y float64, variant int) *donburi.Entry {
	rng := GetSession(ecs).Rand
	if variant < 0 {
		variant = rng.IntN(len(cfg.PlatformVariants))
	}

	platform := factory.CreatePlatform(ecs, x, y, variant)
	if rng.IntN(100) < cfg.Powerup.SpawnPct {
		factory.CreatePowerup(ecs, platform, cfg.PowerupBoost)
	}
	return platform
}

// SpawnMob launches a mob from a random side of the screen toward the other.
func SpawnMob(ecs *ecs.ECS) *donburi.Entry {
	rng := GetSession(ecs).Rand
	width := float64(cfg.World.Width)

	centerX := -cfg.Mob.EdgeOffset
	if rng.IntN(2) == 1 {
		centerX = width + cfg.Mob.EdgeOffset
	}
	vx := float64(cfg.Mob.MinSpeed + rng.IntN(cfg.Mob.MaxSpeed-cfg.Mob.MinSpeed))
	if centerX > width {
		vx = -vx
	}
	y := float64(rng.IntN(cfg.World.Height / 2))

	return factory.CreateMob(ecs, centerX, y, vx)
}
