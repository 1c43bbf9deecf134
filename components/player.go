package components

import (
	"time"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	// Mid-bottom anchor; Bounds is derived from it every tick.
	Position     dmath.Vec2
	Velocity     dmath.Vec2
	Acceleration dmath.Vec2

	Jumping bool
	Walking bool

	CurrentFrame    int
	LastFrameChange time.Duration
}

var Player = donburi.NewComponentType[PlayerData]()
