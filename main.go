package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/bunnyhop/assets"
	"github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/fonts"
	"github.com/automoto/bunnyhop/scenes"
	"github.com/automoto/bunnyhop/shared/leveldata"
	"github.com/automoto/bunnyhop/systems"
	"github.com/automoto/bunnyhop/systems/frontend"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	quitting bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	opts.Quit = func() { g.quitting = true }

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlayScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g, opts)
	}

	return g
}

func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.World.Width, config.World.Height)
	return config.World.Width, config.World.Height
}

func main() {
	assetDir := flag.String("assets", "", "directory holding img/ and snd/ (placeholders and tones when empty)")
	layoutPath := flag.String("layout", "", "TMX file for the starting layout (default: built-in)")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks a new one per session")
	skipMenu := flag.Bool("skipmenu", false, "start playing immediately")
	debug := flag.Bool("debug", false, "show hitboxes")
	tps := flag.Int("tps", config.World.TickRate, "simulation ticks per second")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowHitboxes = *debug
	config.World.TickRate = *tps
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var assetFS fs.FS
	if *assetDir != "" {
		assetFS = os.DirFS(*assetDir)
	}
	assets.UseSprites(assetFS)
	frontend.UseAudioFS(assetFS)

	opts := scenes.Options{
		Layout: loadLayout(*layoutPath),
		Seed:   *seed,
	}

	// Initialize persistence and load saved settings
	store, err := systems.OpenGdataStore("bunnyhop")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		opts.Store = &systems.MemoryStore{}
	} else {
		opts.Store = store
		if saved, err := store.LoadSettings(); err != nil {
			log.Printf("Warning: Could not load settings: %v", err)
		} else {
			frontend.ApplySavedSettings(saved)
		}
	}

	ebiten.SetWindowSize(config.World.Width, config.World.Height)
	ebiten.SetWindowTitle(config.World.Title)
	ebiten.SetTPS(config.World.TickRate)

	err = ebiten.RunGame(NewGame(opts))
	if store != nil {
		if serr := store.SaveSettings(frontend.CurrentSettings()); serr != nil {
			log.Printf("Warning: Could not save settings: %v", serr)
		}
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// loadLayout reads a TMX layout from disk, falling back to the bundled one.
func loadLayout(path string) *leveldata.Layout {
	if path == "" {
		return leveldata.Default()
	}
	layout, err := leveldata.LoadLayout(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		log.Printf("Warning: %v; using the default layout", err)
		return leveldata.Default()
	}
	return layout
}
