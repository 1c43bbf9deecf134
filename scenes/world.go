package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/automoto/bunnyhop/systems/frontend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayScene runs one session from start to end.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
}

func NewPlayScene(sc SceneChanger, opts Options) *PlayScene {
	return &PlayScene{sceneChanger: sc, opts: opts}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	session := systems.GetSession(ps.ecs)
	if session.State != cfg.SessionEnded {
		return
	}

	if _, err := systems.FinishSession(ps.ecs, ps.opts.Store); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
	}
	ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.opts, components.GameOverData{
		Score:        session.Score,
		HighScore:    session.HighScore,
		NewHighScore: session.NewHighScore,
		Reason:       session.EndReason,
	}))
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	frontend.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(frontend.UpdateAudio)
	ecs.AddSystem(frontend.UpdateInput)
	ecs.AddSystem(frontend.UpdateDebug)
	ecs.AddSystem(systems.UpdateSimulation)
	ecs.AddSystem(frontend.UpdateHUD)

	ecs.AddRenderer(cfg.Default, frontend.DrawBackground)
	ecs.AddRenderer(cfg.Default, frontend.DrawSprites)
	ecs.AddRenderer(cfg.Default, frontend.DrawHUD)
	ecs.AddRenderer(cfg.Default, frontend.DrawDebug)

	ps.ecs = ecs

	seed := ps.opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	factory.CreateRegistry(ecs)
	factory.CreateSession(ecs, seed, systems.LoadHighScore(ps.opts.Store))
	systems.StartSession(ecs, ps.opts.Layout)

	frontend.PlayMusic(cfg.Sound.LevelMusic)
}
