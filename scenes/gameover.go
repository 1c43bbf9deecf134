package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems/frontend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	result       components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a new game over scene showing result
func NewGameOverScene(sc SceneChanger, opts Options, result components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createPlayScene := func() interface{} {
		return NewPlayScene(gs.sceneChanger, gs.opts)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger, gs.opts)
	}

	gs.ecs.AddSystem(frontend.UpdateAudio)
	gs.ecs.AddSystem(frontend.UpdateInput)
	gs.ecs.AddSystem(frontend.NewUpdateGameOver(gs.sceneChanger, createPlayScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, frontend.DrawGameOver)

	*frontend.GetOrCreateGameOver(gs.ecs) = gs.result

	frontend.PlayMusic(cfg.Sound.MenuMusic)
}
