package scenes

import (
	"github.com/automoto/bunnyhop/shared/leveldata"
	"github.com/automoto/bunnyhop/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options carries what every scene needs from the command line.
type Options struct {
	Store  systems.HighScoreStore
	Layout *leveldata.Layout // nil uses the built-in layout
	Seed   uint64            // 0 picks a fresh seed per session
	Quit   func()
}
