package frontend

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hitboxColors = map[cfg.EntityKind]color.RGBA{
	cfg.KindPlayer:   {0, 0, 255, 255},
	cfg.KindPlatform: {100, 100, 100, 255},
	cfg.KindMob:      {255, 0, 0, 255},
	cfg.KindPowerup:  {0, 255, 0, 255},
}

// UpdateDebug toggles the hitbox overlay.
func UpdateDebug(ecs *ecs.ECS) {
	input := systems.GetOrCreateInput(ecs)
	if systems.GetAction(input, cfg.ActionToggleHitboxes).JustPressed {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}
}

// DrawDebug outlines every entity's bounds and prints the tick counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	session := systems.GetSession(ecs)
	if session == nil {
		return
	}

	for _, item := range session.RenderList {
		c := hitboxColors[item.Kind]
		x, y := float32(item.Dest.X), float32(item.Dest.Y)
		w, h := float32(item.Dest.W), float32(item.Dest.H)

		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  entities %d  tps %.0f",
		session.Tick, len(session.RenderList), ebiten.ActualTPS()), 4, screen.Bounds().Dy()-16)
}
