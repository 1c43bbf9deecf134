package factory

import (
	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	frame := cfg.PlayerStandingFrames[0]
	w, h := cfg.FrameSize(frame)
	registry.Add(ecs.World, player, cfg.KindPlayer, cfg.Layers.Player, gamemath.RectFromMidBottom(x, y, w, h))

	components.Player.SetValue(player, components.PlayerData{
		Position: dmath.NewVec2(x, y),
	})
	components.Sprite.SetValue(player, components.SpriteData{ID: frame})

	return player
}
