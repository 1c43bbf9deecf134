package headless

import (
	"math"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Autopilot plays by steering under the nearest platform above and jumping
// whenever it lands. It dodges mobs that come within DodgeRange.
type Autopilot struct {
	Reach      float64 // how far above the player a platform may be targeted
	Deadband   float64 // horizontal slack before steering
	DodgeRange float64

	jumpHeld bool
}

func NewAutopilot() *Autopilot {
	return &Autopilot{
		Reach:      220,
		Deadband:   8,
		DodgeRange: 90,
	}
}

// Input implements InputSource.
func (a *Autopilot) Input(e *ecs.ECS) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	player, ok := systems.PlayerEntry(e)
	if !ok {
		return held
	}
	p := components.Player.Get(player)
	pb := components.Bounds.Get(player)

	// Release for one tick after landing so the next press is a fresh edge.
	held[cfg.ActionJump] = p.Jumping || !a.jumpHeld
	a.jumpHeld = held[cfg.ActionJump]

	targetX, found := 0.0, false
	bestTop := math.Inf(-1)
	registry.EachOfKind(e.World, cfg.KindPlatform, func(entry *donburi.Entry) {
		b := components.Bounds.Get(entry)
		if b.Top() >= pb.Bottom()-1 || b.Top() < pb.Bottom()-a.Reach {
			return
		}
		if b.Top() > bestTop {
			bestTop = b.Top()
			targetX = b.CenterX()
			found = true
		}
	})

	registry.EachOfKind(e.World, cfg.KindMob, func(entry *donburi.Entry) {
		b := components.Bounds.Get(entry)
		dx := b.CenterX() - pb.CenterX()
		if math.Abs(dx) < a.DodgeRange && math.Abs(b.CenterY()-pb.CenterY()) < a.DodgeRange {
			targetX = pb.CenterX() - math.Copysign(a.DodgeRange, dx)
			found = true
		}
	})

	if !found {
		return held
	}
	switch dx := targetX - pb.CenterX(); {
	case dx > a.Deadband:
		held[cfg.ActionMoveRight] = true
	case dx < -a.Deadband:
		held[cfg.ActionMoveLeft] = true
	}
	return held
}
