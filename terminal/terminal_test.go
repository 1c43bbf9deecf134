package terminal

import (
	"testing"
	"time"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/headless"
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

// MockCanvas records drawn cells.
type MockCanvas struct {
	w, h  int
	cells map[[2]int]rune
}

func newMockCanvas(w, h int) *MockCanvas {
	return &MockCanvas{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (m *MockCanvas) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *MockCanvas) Size() (int, int) { return m.w, m.h }

func TestKeyHoldDecays(t *testing.T) {
	k := NewKeyHold(3)
	k.Press(cfg.ActionJump)

	for i := 0; i < 3; i++ {
		if !k.Tick()[cfg.ActionJump] {
			t.Fatalf("tick %d: jump released early", i)
		}
	}
	if k.Tick()[cfg.ActionJump] {
		t.Fatal("jump still held after the hold expired")
	}
}

func TestKeyHoldOppositeDirections(t *testing.T) {
	k := NewKeyHold(5)
	k.Press(cfg.ActionMoveLeft)
	k.Press(cfg.ActionMoveRight)

	held := k.Tick()
	if held[cfg.ActionMoveLeft] || !held[cfg.ActionMoveRight] {
		t.Fatalf("held = left %v right %v, want right only", held[cfg.ActionMoveLeft], held[cfg.ActionMoveRight])
	}
	k.Press(cfg.ActionNone)
	if k.Tick()[cfg.ActionNone] {
		t.Fatal("none should never be held")
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want cfg.ActionID
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), cfg.ActionMoveLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), cfg.ActionMoveRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), cfg.ActionJump},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), cfg.ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), cfg.ActionToggleMute},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), cfg.ActionNone},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.ev); got != tt.want {
			t.Errorf("ActionFor(%v) = %s, want %s", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestProject(t *testing.T) {
	// 48x61 grid: one status row plus 60 play rows, 10 world px per cell.
	tests := []struct {
		name           string
		r              gamemath.Rect
		x0, y0, x1, y1 int
	}{
		{"aligned", gamemath.Rect{X: 0, Y: 0, W: 100, H: 50}, 0, 1, 10, 6},
		{"clipped left", gamemath.Rect{X: -50, Y: 100, W: 100, H: 10}, 0, 11, 5, 12},
		{"off right", gamemath.Rect{X: 500, Y: 100, W: 50, H: 10}, 50, 11, 48, 12},
		{"above screen", gamemath.Rect{X: 0, Y: -60, W: 50, H: 40}, 0, 1, 5, 0},
	}
	for _, tt := range tests {
		x0, y0, x1, y1 := Project(tt.r, 48, 61)
		if x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1 {
			t.Errorf("%s: got (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
				tt.name, x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
		}
	}
}

func TestDrawLayersAndStatus(t *testing.T) {
	c := newMockCanvas(48, 61)
	list := []components.RenderItem{
		{Kind: cfg.KindPlatform, Dest: gamemath.Rect{X: 0, Y: 100, W: 100, H: 20}},
		{Kind: cfg.KindPlayer, Dest: gamemath.Rect{X: 20, Y: 100, W: 20, H: 10}},
	}
	Draw(c, list, "score 10")

	if r := c.cells[[2]int{0, 11}]; r != '=' {
		t.Errorf("platform cell = %q, want '='", r)
	}
	if r := c.cells[[2]int{2, 11}]; r != '@' {
		t.Errorf("player cell = %q, want '@' drawn over the platform", r)
	}
	if r := c.cells[[2]int{0, 0}]; r != 's' {
		t.Errorf("status cell = %q, want 's'", r)
	}
	if r := c.cells[[2]int{40, 40}]; r != ' ' {
		t.Errorf("empty cell = %q, want blank", r)
	}
}

func TestPumpEventsClosesWhenScreenFinishes(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	events := make(chan tcell.Event, 4)
	go pumpEvents(screen, events)

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	select {
	case ev := <-events:
		if key, ok := ev.(*tcell.EventKey); !ok || key.Rune() != 'r' {
			t.Fatalf("got %#v, want the injected key", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("injected key never arrived")
	}

	screen.Fini()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel still open after Fini")
		}
	}
}

func TestWaitForRestartQuitsOnClosedEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	g := NewGame(screen, nil, nil, 1)
	events := make(chan tcell.Event)
	close(events)

	done := make(chan bool, 1)
	go func() { done <- g.waitForRestart(events, headless.Result{Score: 30}) }()
	select {
	case restart := <-done:
		if restart {
			t.Fatal("closed events asked for a restart")
		}
	case <-time.After(time.Second):
		t.Fatal("waitForRestart blocked on closed events")
	}
}
