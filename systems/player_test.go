package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
)

func TestStepPlayerFromRest(t *testing.T) {
	p := &components.PlayerData{}
	StepPlayer(p, 1)

	if p.Velocity.X != cfg.Player.Acceleration || p.Velocity.Y != cfg.Player.Gravity {
		t.Fatalf("velocity = %+v, want (%v, %v)", p.Velocity, cfg.Player.Acceleration, cfg.Player.Gravity)
	}
	wantX := cfg.Player.Acceleration * 1.5
	wantY := cfg.Player.Gravity * 1.5
	if math.Abs(p.Position.X-wantX) > 1e-9 || math.Abs(p.Position.Y-wantY) > 1e-9 {
		t.Fatalf("position = %+v, want (%v, %v)", p.Position, wantX, wantY)
	}
}

func TestStepPlayerFrictionSettles(t *testing.T) {
	p := &components.PlayerData{}
	for i := 0; i < 120; i++ {
		StepPlayer(p, 1)
	}
	// Terminal speed is where input and friction cancel: a / -friction.
	terminal := cfg.Player.Acceleration / -cfg.Player.Friction
	if math.Abs(p.Velocity.X-terminal) > 0.01 {
		t.Fatalf("vx after a long run = %v, want about %v", p.Velocity.X, terminal)
	}

	for i := 0; i < 200 && p.Velocity.X != 0; i++ {
		StepPlayer(p, 0)
	}
	if p.Velocity.X != 0 {
		t.Fatalf("vx never snapped to zero: %v", p.Velocity.X)
	}
}

func TestPlayerWrapsHorizontally(t *testing.T) {
	e := newRunningECS(t, 1)
	w, _ := cfg.FrameSize(cfg.PlayerStandingFrames[0])
	half := w / 2
	width := float64(cfg.World.Width)

	player := placePlayer(e, width+half+1, 300)
	UpdatePlayer(e)
	if x := components.Player.Get(player).Position.X; x != -half {
		t.Fatalf("x after leaving right = %v, want %v", x, -half)
	}
	if left := components.Bounds.Get(player).Left(); left != -w {
		t.Fatalf("bounds left = %v, want %v", left, -w)
	}

	components.Player.Get(player).Position.X = -half - 1
	UpdatePlayer(e)
	if x := components.Player.Get(player).Position.X; x != width+half {
		t.Fatalf("x after leaving left = %v, want %v", x, width+half)
	}
}

func TestPlayerAnimation(t *testing.T) {
	e := newRunningECS(t, 1)
	player := placePlayer(e, 200, 300)
	session := GetSession(e)
	p := components.Player.Get(player)
	sprite := components.Sprite.Get(player)

	// Idle: cycles standing frames once the interval has passed.
	session.Now = cfg.Player.FrameInterval + time.Millisecond
	animatePlayer(p, sprite, session.Now)
	if sprite.ID != cfg.PlayerStandingFrames[1] {
		t.Fatalf("idle frame = %s, want %s", sprite.ID, cfg.PlayerStandingFrames[1])
	}

	// Walking left: walk frames, mirrored.
	p.Velocity.X = -2
	session.Now += cfg.Player.FrameInterval + time.Millisecond
	animatePlayer(p, sprite, session.Now)
	if sprite.ID != cfg.PlayerWalkFrames[0] || !sprite.FlipX || !p.Walking {
		t.Fatalf("walking left = %s flip=%v walking=%v", sprite.ID, sprite.FlipX, p.Walking)
	}

	// Jumping in place keeps the current frame.
	p.Velocity.X = 0
	p.Jumping = true
	session.Now += cfg.Player.FrameInterval + time.Millisecond
	animatePlayer(p, sprite, session.Now)
	if sprite.ID != cfg.PlayerWalkFrames[0] {
		t.Fatalf("jumping frame = %s, want it unchanged", sprite.ID)
	}
}
