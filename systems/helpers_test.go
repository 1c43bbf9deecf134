package systems

import (
	"testing"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// newRunningECS builds an empty running session; tests place entities by hand.
func newRunningECS(t *testing.T, seed uint64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRegistry(e)
	factory.CreateSession(e, seed, 0)
	GetSession(e).State = cfg.SessionRunning
	return e
}

func placePlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	player := factory.CreatePlayer(e, x, y)
	GetSession(e).Player = player.Entity()
	return player
}

func setPlayerMotion(e *ecs.ECS, player *donburi.Entry, vx, vy float64, jumping bool) {
	p := components.Player.Get(player)
	p.Velocity = dmath.NewVec2(vx, vy)
	p.Jumping = jumping
}

func countKind(e *ecs.ECS, kind cfg.EntityKind) int {
	return registry.Count(e.World, kind)
}
