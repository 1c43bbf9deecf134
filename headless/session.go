package headless

import (
	"errors"
	"fmt"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/shared/leveldata"
	"github.com/automoto/bunnyhop/systems"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Result summarizes one finished session.
type Result struct {
	Seed         uint64
	Score        int
	HighScore    int
	NewHighScore bool
	Ticks        uint64
	Reason       cfg.EndReason
}

func (r Result) String() string {
	return fmt.Sprintf("seed=%d score=%d ticks=%d reason=%s", r.Seed, r.Score, r.Ticks, r.Reason)
}

// NewSession builds a world with a running session. A nil layout uses the
// built-in one.
func NewSession(seed uint64, highScore int, layout *leveldata.Layout) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRegistry(e)
	factory.CreateSession(e, seed, highScore)
	systems.StartSession(e, layout)
	return e
}

// RunSession plays one session unpaced until it ends or maxTicks pass. A
// session cut off by the tick limit ends as a quit. The high score is read
// from and written back to store.
func RunSession(seed uint64, maxTicks int, layout *leveldata.Layout, input InputSource, store systems.HighScoreStore) (Result, error) {
	e := NewSession(seed, systems.LoadHighScore(store), layout)
	loop := NewLoop(e, input, components.InputScripted, cfg.World.TickRate)

	for ticks := 0; ticks < maxTicks; ticks++ {
		if !loop.Step() {
			break
		}
	}
	systems.EndSession(e, cfg.EndQuit)

	_, err := systems.FinishSession(e, store)
	session := systems.GetSession(e)
	return Result{
		Seed:         seed,
		Score:        session.Score,
		HighScore:    session.HighScore,
		NewHighScore: session.NewHighScore,
		Ticks:        session.Tick,
		Reason:       session.EndReason,
	}, err
}

// RunBatch plays n autopilot sessions with consecutive seeds starting at
// firstSeed, one after another. donburi worlds share package-level query
// caches, so sessions in one process never run concurrently. Every session
// keeps its own high score record.
func RunBatch(firstSeed uint64, n, maxTicks int, layout *leveldata.Layout) ([]Result, error) {
	results := make([]Result, 0, n)
	var errs []error
	for i := 0; i < n; i++ {
		seed := firstSeed + uint64(i)
		res, err := RunSession(seed, maxTicks, layout, NewAutopilot().Input, &systems.MemoryStore{})
		if err != nil {
			errs = append(errs, fmt.Errorf("seed %d: %w", seed, err))
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}
