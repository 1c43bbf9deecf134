package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/automoto/bunnyhop/systems/frontend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the start screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, opts Options) *MenuScene {
	return &MenuScene{sceneChanger: sc, opts: opts}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createPlayScene := func() interface{} {
		return NewPlayScene(ms.sceneChanger, ms.opts)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(frontend.UpdateAudio)
	ms.ecs.AddSystem(frontend.UpdateInput)
	ms.ecs.AddSystem(frontend.NewUpdateMenu(ms.sceneChanger, createPlayScene, ms.opts.Quit))

	ms.ecs.AddRenderer(cfg.Default, frontend.DrawMenu)

	frontend.GetOrCreateMenu(ms.ecs).HighScore = systems.LoadHighScore(ms.opts.Store)

	frontend.PlayMusic(cfg.Sound.MenuMusic)
}
