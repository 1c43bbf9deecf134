package systems

import (
	"testing"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/systems/factory"
)

func TestLandingSnapsToPlatformTop(t *testing.T) {
	e := newRunningECS(t, 1)
	factory.CreatePlatform(e, 100, 300, 0) // 190x47, center y 323.5
	player := placePlayer(e, 150, 305)
	setPlayerMotion(e, player, 0, 5, true)

	UpdateCollisions(e)

	p := components.Player.Get(player)
	if p.Velocity.Y != 0 {
		t.Errorf("vy = %v, want 0", p.Velocity.Y)
	}
	if p.Jumping {
		t.Error("still jumping after landing")
	}
	if p.Position.Y != 300 {
		t.Errorf("y = %v, want platform top 300", p.Position.Y)
	}
}

func TestLandingRejected(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vy     float64
		noSnap bool
	}{
		{"rising through", 150, 305, -5, true},
		{"feet below center", 150, 330, 5, true},
		{"center past right edge", 300, 305, 5, true},
		{"center within tolerance", 295, 305, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRunningECS(t, 1)
			factory.CreatePlatform(e, 100, 300, 0)
			player := placePlayer(e, tt.x, tt.y)
			setPlayerMotion(e, player, 0, tt.vy, true)

			UpdateCollisions(e)

			p := components.Player.Get(player)
			snapped := p.Velocity.Y == 0 && p.Position.Y == 300
			if snapped == tt.noSnap {
				t.Fatalf("snapped = %v, want %v (y=%v vy=%v)", snapped, !tt.noSnap, p.Position.Y, p.Velocity.Y)
			}
		})
	}
}

func TestLandingPicksLowestPlatform(t *testing.T) {
	e := newRunningECS(t, 1)
	factory.CreatePlatform(e, 100, 280, 1) // 100x50, bottom 330
	factory.CreatePlatform(e, 100, 300, 0) // 190x47, bottom 347, center 323.5
	player := placePlayer(e, 150, 320)
	setPlayerMotion(e, player, 0, 5, true)

	UpdateCollisions(e)

	if y := components.Player.Get(player).Position.Y; y != 300 {
		t.Fatalf("y = %v, want top of the lower platform 300", y)
	}
}

func TestPowerupPickupBoosts(t *testing.T) {
	e := newRunningECS(t, 1)
	platform := factory.CreatePlatform(e, 100, 300, 0)
	pow := factory.CreatePowerup(e, platform, cfg.PowerupBoost)
	player := placePlayer(e, 195, 310)
	setPlayerMotion(e, player, 0, -5, true)

	UpdateCollisions(e)
	registry.PurgeDead(e.World)

	p := components.Player.Get(player)
	if p.Velocity.Y != -cfg.Powerup.BoostPower {
		t.Errorf("vy = %v, want %v", p.Velocity.Y, -cfg.Powerup.BoostPower)
	}
	if p.Jumping {
		t.Error("jumping not cleared by boost")
	}
	if pow.Valid() || countKind(e, cfg.KindPowerup) != 0 {
		t.Error("power-up still registered after pickup")
	}
	if components.Platform.Get(platform).HasPowerup {
		t.Error("platform still claims its power-up")
	}
	if sfx := DrainSFX(e); len(sfx) != 1 || sfx[0] != cfg.SoundBoost {
		t.Errorf("queued sfx = %v, want [boost]", sfx)
	}
}

func TestMobContactEndsSession(t *testing.T) {
	e := newRunningECS(t, 1)
	factory.CreatePlatform(e, 100, 500, 0)
	player := placePlayer(e, 200, 300)
	factory.CreateMob(e, 200, 250, 2)
	setPlayerMotion(e, player, 0, 5, true)

	UpdateCollisions(e)

	session := GetSession(e)
	if session.State != cfg.SessionEnded || session.EndReason != cfg.EndMobContact {
		t.Fatalf("state = %s/%s, want ended/mob-contact", session.State, session.EndReason)
	}
}

func TestNoPlatformsEndsSession(t *testing.T) {
	e := newRunningECS(t, 1)
	placePlayer(e, 200, 400)

	UpdateCollisions(e)

	session := GetSession(e)
	if session.State != cfg.SessionEnded || session.EndReason != cfg.EndNoPlatforms {
		t.Fatalf("state = %s/%s, want ended/no-platforms", session.State, session.EndReason)
	}
}

func TestScrollMovesWorldDown(t *testing.T) {
	e := newRunningECS(t, 1)
	low := factory.CreatePlatform(e, 0, 590, 0)
	high := factory.CreatePlatform(e, 200, 100, 0)
	mob := factory.CreateMob(e, 300, 200, 1)
	player := placePlayer(e, 100, 200) // top at 105, inside the scroll band
	setPlayerMotion(e, player, 0, -12, true)

	UpdateCollisions(e)

	if y := components.Player.Get(player).Position.Y; y != 212 {
		t.Errorf("player y = %v, want 212", y)
	}
	if top := components.Bounds.Get(high).Top(); top != 112 {
		t.Errorf("platform top = %v, want 112", top)
	}
	if top := components.Bounds.Get(mob).Top(); top != 212 {
		t.Errorf("mob top = %v, want 212", top)
	}
	if components.Entity.Get(low).Alive {
		t.Error("platform pushed off the bottom is still alive")
	}
	if score := GetSession(e).Score; score != cfg.Scroll.PlatformScore {
		t.Errorf("score = %d, want %d", score, cfg.Scroll.PlatformScore)
	}
}

func TestScrollUsesMinimumShift(t *testing.T) {
	e := newRunningECS(t, 1)
	plat := factory.CreatePlatform(e, 200, 400, 0)
	player := placePlayer(e, 100, 200)
	setPlayerMotion(e, player, 0, 0, false)

	UpdateCollisions(e)

	if y := components.Player.Get(player).Position.Y; y != 200+cfg.Scroll.MinShift {
		t.Errorf("player y = %v, want %v", y, 200+cfg.Scroll.MinShift)
	}
	// Platforms only move by the player's speed.
	if top := components.Bounds.Get(plat).Top(); top != 400 {
		t.Errorf("platform top = %v, want 400", top)
	}
}

func TestFallSweepShiftsWorldUp(t *testing.T) {
	e := newRunningECS(t, 1)
	doomed := factory.CreatePlatform(e, 0, -40, 0) // bottom 7
	kept := factory.CreatePlatform(e, 200, 300, 0)
	pow := factory.CreatePowerup(e, doomed, cfg.PowerupBoost)
	player := placePlayer(e, 100, 650)
	setPlayerMotion(e, player, 0, 15, false)

	UpdateCollisions(e)

	if top := components.Bounds.Get(kept).Top(); top != 285 {
		t.Errorf("kept platform top = %v, want 285", top)
	}
	if components.Entity.Get(doomed).Alive {
		t.Error("platform swept above the top is still alive")
	}
	if components.Entity.Get(pow).Alive {
		t.Error("power-up outlived its swept platform")
	}
	if !components.Entity.Get(player).Alive {
		t.Error("player was destroyed by the sweep")
	}
	// The sweep lifts the player's rect only; the next player step rebuilds
	// the rect from the unchanged position.
	if bottom := components.Bounds.Get(player).Bottom(); bottom != 635 {
		t.Errorf("player rect bottom = %v, want 635", bottom)
	}
	if y := components.Player.Get(player).Position.Y; y != 650 {
		t.Errorf("player position y = %v, want 650", y)
	}
	if GetSession(e).State != cfg.SessionRunning {
		t.Error("session ended while a platform remains")
	}
}

func TestFallSweepMinimumShift(t *testing.T) {
	e := newRunningECS(t, 1)
	kept := factory.CreatePlatform(e, 200, 300, 0)
	player := placePlayer(e, 100, 650)
	setPlayerMotion(e, player, 0, -4, false)

	UpdateCollisions(e)

	if top := components.Bounds.Get(kept).Top(); top != 300-cfg.Scroll.FallMinShift {
		t.Errorf("platform top = %v, want %v", top, 300-cfg.Scroll.FallMinShift)
	}
}
