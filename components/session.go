package components

import (
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/yohamta/donburi"
)

// RenderItem is one positioned visual handed to a renderer.
type RenderItem struct {
	Kind   cfg.EntityKind
	Sprite cfg.SpriteID
	FlipX  bool
	Dest   gamemath.Rect
	Layer  int
}

// SessionData is the aggregate root of one play session.
type SessionData struct {
	State     cfg.SessionState
	EndReason cfg.EndReason

	Score        int
	HighScore    int
	NewHighScore bool

	Tick     uint64
	Now      time.Duration // simulated time since the session started
	Step     time.Duration
	MobTimer time.Duration // Now at the last mob spawn

	Rand *rand.Rand

	Player     donburi.Entity
	RenderList []RenderItem
}

var Session = donburi.NewComponentType[SessionData]()
