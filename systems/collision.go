package systems

import (
	"math"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the player's interactions with the world in a
// fixed order: mob contact, landing, world scroll, power-up pickup, the
// fall sweep and finally the no-platforms loss check.
func UpdateCollisions(ecs *ecs.ECS) {
	player, ok := PlayerEntry(ecs)
	if !ok {
		return
	}

	if len(registry.Overlapping(ecs.World, player, cfg.KindMob, 0, 0)) > 0 {
		EndSession(ecs, cfg.EndMobContact)
		return
	}

	resolveLanding(ecs, player)
	scrollWorld(ecs, player)

	for _, pow := range registry.Overlapping(ecs.World, player, cfg.KindPowerup, 0, 0) {
		ApplyPowerup(ecs, player, pow)
	}

	sweepFall(ecs, player)

	if registry.Count(ecs.World, cfg.KindPlatform) == 0 {
		EndSession(ecs, cfg.EndNoPlatforms)
	}
}

// resolveLanding snaps a falling player onto the lowest platform it overlaps,
// provided its feet are horizontally over the platform and above its middle.
func resolveLanding(ecs *ecs.ECS, player *donburi.Entry) {
	p := components.Player.Get(player)
	if p.Velocity.Y <= 0 {
		return
	}
	hits := registry.Overlapping(ecs.World, player, cfg.KindPlatform, 0, 0)
	if len(hits) == 0 {
		return
	}

	lowest := components.Bounds.Get(hits[0])
	for _, hit := range hits[1:] {
		if r := components.Bounds.Get(hit); r.Bottom() > lowest.Bottom() {
			lowest = r
		}
	}

	tol := cfg.Player.LandingTolerance
	if p.Position.X >= lowest.Right()+tol || p.Position.X <= lowest.Left()-tol {
		return
	}
	if p.Position.Y >= lowest.CenterY() {
		return
	}
	p.Position.Y = lowest.Top()
	p.Velocity.Y = 0
	p.Jumping = false
}

// scrollWorld keeps the player below the top quarter of the screen by moving
// everything else down. Platforms that leave the bottom score points.
func scrollWorld(ecs *ecs.ECS, player *donburi.Entry) {
	threshold := float64(cfg.World.Height) * cfg.Scroll.Threshold
	if components.Bounds.Get(player).Top() > threshold {
		return
	}

	session := GetSession(ecs)
	p := components.Player.Get(player)
	rise := math.Abs(p.Velocity.Y)
	shift := math.Max(rise, cfg.Scroll.MinShift)

	p.Position.Y += shift
	registry.EachOfKind(ecs.World, cfg.KindMob, func(entry *donburi.Entry) {
		registry.Move(ecs.World, entry, 0, shift)
	})
	registry.EachOfKind(ecs.World, cfg.KindPlatform, func(entry *donburi.Entry) {
		registry.Move(ecs.World, entry, 0, rise)
		if components.Bounds.Get(entry).Top() >= float64(cfg.World.Height) {
			DestroyPlatform(ecs, entry)
			session.Score += cfg.Scroll.PlatformScore
		}
	})
}

// sweepFall fast-forwards the world upward once the player has dropped off
// the bottom, destroying whatever leaves through the top. Only rects move;
// the player's position is left alone.
func sweepFall(ecs *ecs.ECS, player *donburi.Entry) {
	if components.Bounds.Get(player).Bottom() <= float64(cfg.World.Height) {
		return
	}

	shift := math.Max(components.Player.Get(player).Velocity.Y, cfg.Scroll.FallMinShift)
	for _, entry := range registry.All(ecs.World) {
		if !components.Entity.Get(entry).Alive {
			continue
		}
		registry.Move(ecs.World, entry, 0, -shift)
		if entry.Entity() == player.Entity() {
			continue
		}
		if components.Bounds.Get(entry).Bottom() < 0 {
			if entry.HasComponent(components.Platform) {
				DestroyPlatform(ecs, entry)
			} else {
				registry.MarkDead(entry)
			}
		}
	}
}
