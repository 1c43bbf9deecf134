package components

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
)

// GameOverData stores the result shown on the game over screen
type GameOverData struct {
	Score        int
	HighScore    int
	NewHighScore bool
	Reason       cfg.EndReason
	Ticks        int
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
