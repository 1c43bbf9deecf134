package factory

import (
	"math/rand/v2"

	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session root in the Idle state.
// The seed makes every random roll of the session reproducible.
func CreateSession(ecs *ecs.ECS, seed uint64, highScore int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		State:     cfg.SessionIdle,
		HighScore: highScore,
		Step:      cfg.TickDuration(),
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	return session
}
