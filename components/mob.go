package components

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
)

type MobData struct {
	VX     float64 // constant horizontal speed
	VY     float64
	DY     float64 // bob increment, flips sign at the limit
	Facing cfg.Facing
}

var Mob = donburi.NewComponentType[MobData]()
