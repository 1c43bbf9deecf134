package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls applies the edge-triggered actions: quit, jump and jump-cut.
// Must run after input sampling and before UpdatePlayer.
func UpdateControls(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		EndSession(ecs, cfg.EndQuit)
		return
	}

	player, ok := PlayerEntry(ecs)
	if !ok {
		return
	}
	jump := GetAction(input, cfg.ActionJump)
	if jump.JustPressed {
		Jump(ecs, player)
	}
	if jump.JustReleased {
		JumpCut(components.Player.Get(player))
	}
}

// Jump launches the player if it stands on a platform and is not already
// jumping. Standing is approximated by probing the player's rect a couple of
// pixels to the right. Returns whether the jump happened.
func Jump(ecs *ecs.ECS, player *donburi.Entry) bool {
	p := components.Player.Get(player)
	if p.Jumping {
		return false
	}
	if len(registry.Overlapping(ecs.World, player, cfg.KindPlatform, cfg.Player.GroundProbeX, 0)) == 0 {
		return false
	}

	PlaySFX(ecs, cfg.SoundJump)
	p.Jumping = true
	p.Velocity.Y = -cfg.Player.JumpPower
	return true
}

// JumpCut shortens a jump in progress: a player still rising faster than the
// cut speed is slowed to it.
func JumpCut(p *components.PlayerData) {
	if !p.Jumping {
		return
	}
	if p.Velocity.Y < -cfg.Player.JumpCutSpeed {
		p.Velocity.Y = -cfg.Player.JumpCutSpeed
	}
}
