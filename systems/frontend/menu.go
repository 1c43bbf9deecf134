package frontend

import (
	"fmt"
	"image/color"

	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/fonts"
	"github.com/automoto/bunnyhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// blinkTicks is the half period of the prompt blink.
const blinkTicks = 30

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// Releasing any key starts a session; quit calls the supplied exit hook.
func NewUpdateMenu(sceneChanger SceneChanger, createPlayScene func() interface{}, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := systems.GetOrCreateInput(e)
		menu.Ticks++

		if systems.GetAction(input, cfg.ActionQuit).JustPressed {
			quit()
			return
		}
		if systems.GetAction(input, cfg.ActionToggleMute).JustPressed {
			ToggleMute()
			return
		}
		if systems.GetAction(input, cfg.ActionToggleHitboxes).JustReleased ||
			systems.GetAction(input, cfg.ActionToggleMute).JustReleased {
			return
		}

		if systems.AnyJustReleased(input) {
			FadeOutMusic()
			sceneChanger.ChangeScene(createPlayScene())
		}
	}
}

// DrawMenu renders the start screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.World.Title, fonts.Title, cfg.Menu.TitleY, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Hint, fonts.Regular, cfg.Menu.HintY, cfg.Menu.TextColor)
	if (menu.Ticks/blinkTicks)%2 == 0 {
		drawCentered(screen, cfg.Menu.Prompt, fonts.Regular, cfg.Menu.PromptY, cfg.Menu.TextColor)
	}
	drawCentered(screen, fmt.Sprintf("High Score: %d", menu.HighScore), fonts.Regular, cfg.Menu.HighScoreY, cfg.Menu.TextColor)
}

// drawCentered draws s horizontally centered with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y float64, clr color.Color) {
	width := screen.Bounds().Dx()
	x := (width - fonts.Width(name, s)) / 2
	text.Draw(screen, s, name.Get(), x, int(y), clr)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = archetypes.Menu.Spawn(e)
	}
	return components.Menu.Get(entry)
}
