package frontend

import (
	"github.com/automoto/bunnyhop/assets"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground clears the screen to the world color.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.BackgroundColor)
}

// DrawSprites draws the session's render list in order. Items are already
// sorted by layer, so later items land on top.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetSession(ecs)
	if session == nil {
		return
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, item := range session.RenderList {
		d := item.Dest
		// Cull anything fully off-screen (spawn bands and exiting mobs)
		if d.Right() < 0 || d.Left() > width || d.Bottom() < 0 || d.Top() > height {
			continue
		}

		img := assets.GetFrame(item.Sprite)
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		if item.FlipX {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
		drawOp.GeoM.Translate(d.X, d.Y)
		screen.DrawImage(img, drawOp)
	}
}
