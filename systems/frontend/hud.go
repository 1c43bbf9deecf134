package frontend

import (
	"fmt"

	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/fonts"
	"github.com/automoto/bunnyhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// UpdateHUD pulses the score readout whenever the score goes up.
func UpdateHUD(ecs *ecs.ECS) {
	session := systems.GetSession(ecs)
	if session == nil {
		return
	}
	hud := GetOrCreateHUD(ecs)

	if session.Score > hud.LastScore {
		hud.Pulse = gween.New(float32(cfg.HUD.PulseScale), 1, float32(cfg.HUD.PulseTime.Seconds()), ease.OutQuad)
	}
	hud.LastScore = session.Score

	if hud.Pulse != nil {
		scale, done := hud.Pulse.Update(float32(cfg.TickDuration().Seconds()))
		hud.Scale = scale
		if done {
			hud.Pulse = nil
			hud.Scale = 1
		}
	}
}

// DrawHUD renders the score centered at the top of the screen and the high
// score in the corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetSession(ecs)
	if session == nil {
		return
	}
	hud := GetOrCreateHUD(ecs)
	width := float64(screen.Bounds().Dx())

	score := fmt.Sprint(session.Score)
	scale := float64(hud.Scale)
	textWidth := float64(fonts.Width(fonts.Bold, score)) * scale

	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate((width-textWidth)/2, cfg.HUD.ScoreY)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
	text.DrawWithOptions(screen, score, fonts.Bold.Get(), hudDrawOp)

	best := fmt.Sprintf("best %d", max(session.HighScore, session.Score))
	text.Draw(screen, best, fonts.Small.Get(), 8, 18, cfg.HUD.TextColor)
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = archetypes.HUD.Spawn(ecs)
		components.HUD.SetValue(entry, components.HUDData{Scale: 1})
	}
	return components.HUD.Get(entry)
}
