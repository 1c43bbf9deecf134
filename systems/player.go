package systems

import (
	"time"

	"github.com/automoto/bunnyhop/assets/animations"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// PlayerEntry returns the session's player while it is registered.
func PlayerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	session := GetSession(ecs)
	if session == nil || !registry.IsLive(ecs.World, session.Player, cfg.KindPlayer) {
		return nil, false
	}
	return ecs.World.Entry(session.Player), true
}

// UpdatePlayer advances the player one tick: animation, then acceleration,
// friction, velocity and position, then the horizontal wrap.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := PlayerEntry(ecs)
	if !ok {
		return
	}
	session := GetSession(ecs)
	p := components.Player.Get(entry)
	sprite := components.Sprite.Get(entry)

	animatePlayer(p, sprite, session.Now)

	intent := HorizontalIntent(GetOrCreateInput(ecs), cfg.Player.BothHeld)
	StepPlayer(p, intent)

	w, h := cfg.FrameSize(sprite.ID)
	p.Position.X = gamemath.WrapHorizontal(p.Position.X, w/2, float64(cfg.World.Width))

	registry.SetBounds(ecs.World, entry, gamemath.RectFromMidBottom(p.Position.X, p.Position.Y, w, h))
}

// StepPlayer integrates the player's kinematics for one tick given a
// horizontal intent of -1, 0 or +1.
func StepPlayer(p *components.PlayerData, intent float64) {
	p.Acceleration = dmath.NewVec2(intent*cfg.Player.Acceleration, cfg.Player.Gravity)
	p.Acceleration.X = gamemath.ApplyFriction(p.Acceleration.X, p.Velocity.X, cfg.Player.Friction)

	p.Velocity = p.Velocity.Add(p.Acceleration)
	p.Velocity.X = gamemath.SnapToZero(p.Velocity.X, cfg.Player.IdleSpeedThreshold)

	p.Position.X = gamemath.Integrate(p.Position.X, p.Velocity.X, p.Acceleration.X)
	p.Position.Y = gamemath.Integrate(p.Position.Y, p.Velocity.Y, p.Acceleration.Y)
}

// animatePlayer picks the frame for this tick. Walking and standing share one
// frame counter; a jumping player that is not walking keeps its last frame.
func animatePlayer(p *components.PlayerData, sprite *components.SpriteData, now time.Duration) {
	p.Walking = p.Velocity.X != 0

	if p.Walking {
		anim := animations.NewAnimation(len(cfg.PlayerWalkFrames), cfg.Player.FrameInterval)
		if frame, changed, ok := anim.Advance(p.CurrentFrame, p.LastFrameChange, now); ok {
			p.CurrentFrame, p.LastFrameChange = frame, changed
			sprite.ID = cfg.PlayerWalkFrames[frame]
			sprite.FlipX = p.Velocity.X < 0
		}
	}

	if !p.Jumping && !p.Walking {
		anim := animations.NewAnimation(len(cfg.PlayerStandingFrames), cfg.Player.FrameInterval)
		if frame, changed, ok := anim.Advance(p.CurrentFrame, p.LastFrameChange, now); ok {
			p.CurrentFrame, p.LastFrameChange = frame, changed
			sprite.ID = cfg.PlayerStandingFrames[frame]
			sprite.FlipX = false
		}
	}
}
