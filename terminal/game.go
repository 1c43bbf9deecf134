package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/headless"
	"github.com/automoto/bunnyhop/shared/leveldata"
	"github.com/automoto/bunnyhop/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi/ecs"
)

// Game runs sessions back to back on a tcell screen until the player quits.
type Game struct {
	screen tcell.Screen
	store  systems.HighScoreStore
	layout *leveldata.Layout
	seed   uint64
	keys   *KeyHold
	audio  *Beeper
}

func NewGame(screen tcell.Screen, store systems.HighScoreStore, layout *leveldata.Layout, seed uint64) *Game {
	return &Game{
		screen: screen,
		store:  store,
		layout: layout,
		seed:   seed,
		keys:   NewKeyHold(cfg.Input.KeyHoldTicks),
		audio:  NewBeeper(),
	}
}

// Run plays until quit. The screen must already be initialized; Run does
// not finalize it.
func (g *Game) Run() {
	if err := g.audio.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer g.audio.Close()

	eventChan := make(chan tcell.Event, 100)
	go pumpEvents(g.screen, eventChan)

	for {
		res, quit := g.playOnce(eventChan)
		if quit {
			return
		}
		if !g.waitForRestart(eventChan, res) {
			return
		}
		g.seed++
	}
}

// eventSource is the event half of tcell.Screen.
type eventSource interface {
	PollEvent() tcell.Event
}

// pumpEvents forwards events to out until the source is finalized, then
// closes out.
func pumpEvents(src eventSource, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}

// playOnce runs one session. quit reports an explicit quit.
func (g *Game) playOnce(events <-chan tcell.Event) (headless.Result, bool) {
	seed := g.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	e := headless.NewSession(seed, systems.LoadHighScore(g.store), g.layout)
	g.keys.Reset()
	loop := headless.NewLoop(e, func(*ecs.ECS) [cfg.ActionCount]bool { return g.keys.Tick() }, components.InputTerminal, cfg.World.TickRate)
	loop.OnTick(g.present)

	ticker := time.NewTicker(cfg.TickDuration())
	defer ticker.Stop()

	running := true
	for running {
		select {
		case ev, ok := <-events:
			if !ok {
				// Screen finalized underneath us.
				systems.EndSession(e, cfg.EndQuit)
				running = false
				break
			}
			g.handleEvent(ev)
		case <-ticker.C:
			running = loop.Step()
		}
	}

	if _, err := systems.FinishSession(e, g.store); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
	}
	session := systems.GetSession(e)
	return headless.Result{
		Seed:         seed,
		Score:        session.Score,
		HighScore:    session.HighScore,
		NewHighScore: session.NewHighScore,
		Ticks:        session.Tick,
		Reason:       session.EndReason,
	}, session.EndReason == cfg.EndQuit
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		id := ActionFor(ev)
		if id == cfg.ActionToggleMute {
			g.audio.Muted = !g.audio.Muted
			return
		}
		g.keys.Press(id)
	}
}

func (g *Game) present(e *ecs.ECS) {
	for _, id := range systems.DrainSFX(e) {
		g.audio.Play(id)
	}
	session := systems.GetSession(e)
	Draw(g.screen, session.RenderList, Status(session.Score, session.HighScore, g.audio.Muted))
	g.screen.Show()
}

// waitForRestart shows the result and blocks until a key. Returns false on quit.
func (g *Game) waitForRestart(events <-chan tcell.Event, res headless.Result) bool {
	best := fmt.Sprintf("high score %d", res.HighScore)
	if res.NewHighScore {
		best = "NEW HIGH SCORE!"
	}
	lines := []string{cfg.GameOver.Title, fmt.Sprintf("score %d", res.Score), best, "r to play again, q to quit"}

	cols, rows := g.screen.Size()
	g.screen.Clear()
	for i, line := range lines {
		drawText(g.screen, (cols-len(line))/2, rows/2-len(lines)+i*2, line, tcell.StyleDefault)
	}
	g.screen.Show()

	for ev := range events {
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if ActionFor(key) == cfg.ActionQuit {
			return false
		}
		if key.Key() == tcell.KeyRune && key.Rune() == 'r' || key.Key() == tcell.KeyEnter {
			return true
		}
	}
	return false
}
