package frontend

import (
	"fmt"

	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/fonts"
	"github.com/automoto/bunnyhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// graceTicks ignores key releases left over from play.
const graceTicks = 20

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability.
// Releasing any key plays again; quit goes back to the start screen.
func NewUpdateGameOver(sceneChanger SceneChanger, createPlayScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := systems.GetOrCreateInput(e)
		gameOver.Ticks++
		if gameOver.Ticks < graceTicks {
			return
		}

		if systems.GetAction(input, cfg.ActionQuit).JustReleased {
			sceneChanger.ChangeScene(createMenuScene())
			return
		}
		if systems.AnyJustReleased(input) {
			sceneChanger.ChangeScene(createPlayScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	drawCentered(screen, cfg.GameOver.Title, fonts.Title, cfg.GameOver.TitleY, cfg.GameOver.TitleColor)
	drawCentered(screen, fmt.Sprintf("Score: %d", gameOver.Score), fonts.Bold, cfg.GameOver.ScoreY, cfg.GameOver.TextColor)

	best := fmt.Sprintf("High Score: %d", gameOver.HighScore)
	if gameOver.NewHighScore {
		best = "NEW HIGH SCORE!"
	}
	drawCentered(screen, best, fonts.Regular, cfg.GameOver.HighScoreY, cfg.GameOver.TextColor)
	drawCentered(screen, cfg.GameOver.Prompt, fonts.Regular, cfg.GameOver.PromptY, cfg.GameOver.TextColor)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = archetypes.GameOver.Spawn(e)
	}
	return components.GameOver.Get(entry)
}
