package headless

import (
	"testing"
	"time"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/yohamta/donburi/ecs"
)

func TestRunSessionIsDeterministic(t *testing.T) {
	first, err := RunSession(7, 3000, nil, NewAutopilot().Input, &systems.MemoryStore{})
	if err != nil {
		t.Fatalf("RunSession: %v", err)
	}
	second, err := RunSession(7, 3000, nil, NewAutopilot().Input, &systems.MemoryStore{})
	if err != nil {
		t.Fatalf("RunSession: %v", err)
	}
	if first != second {
		t.Fatalf("same seed gave %v then %v", first, second)
	}
	if first.Score%cfg.Scroll.PlatformScore != 0 {
		t.Errorf("score %d is not a multiple of %d", first.Score, cfg.Scroll.PlatformScore)
	}
	if first.Ticks > 3000 {
		t.Errorf("ran %d ticks past the limit", first.Ticks)
	}
}

func TestRunSessionTickLimitEndsAsQuit(t *testing.T) {
	res, err := RunSession(1, 5, nil, nil, nil)
	if err != nil {
		t.Fatalf("RunSession: %v", err)
	}
	if res.Ticks != 5 || res.Reason != cfg.EndQuit {
		t.Fatalf("got %v, want 5 ticks ending in quit", res)
	}
}

func TestRunSessionSavesHighScore(t *testing.T) {
	store := &systems.MemoryStore{}
	var best int
	for seed := uint64(1); seed <= 3; seed++ {
		res, err := RunSession(seed, 2000, nil, NewAutopilot().Input, store)
		if err != nil {
			t.Fatalf("RunSession: %v", err)
		}
		best = max(best, res.Score)
	}
	if got := systems.LoadHighScore(store); got != best {
		t.Fatalf("stored high score = %d, want %d", got, best)
	}
}

func TestLoopStop(t *testing.T) {
	e := NewSession(1, 0, nil)
	loop := NewLoop(e, nil, 0, 1000)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestStepAfterEnd(t *testing.T) {
	e := NewSession(1, 0, nil)
	loop := NewLoop(e, nil, 0, 60)
	ticks := 0
	loop.OnTick(func(_ *ecs.ECS) { ticks++ })

	if !loop.Step() {
		t.Fatal("first step reported the session over")
	}
	systems.EndSession(e, cfg.EndQuit)
	if loop.Step() {
		t.Fatal("step ran on an ended session")
	}
	if ticks != 1 {
		t.Fatalf("OnTick ran %d times, want 1", ticks)
	}
}

func TestRunBatchMatchesSingleSessions(t *testing.T) {
	results, err := RunBatch(11, 4, 1500, nil)
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i, got := range results {
		seed := uint64(11 + i)
		want, err := RunSession(seed, 1500, nil, NewAutopilot().Input, &systems.MemoryStore{})
		if err != nil {
			t.Fatalf("RunSession(%d): %v", seed, err)
		}
		if got != want {
			t.Errorf("batch seed %d = %v, alone = %v", seed, got, want)
		}
	}
}
