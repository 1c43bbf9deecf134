package components

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
)

type PowerupData struct {
	Kind cfg.PowerupKind
	// Platform is a non-owning reference, re-checked against the registry each tick.
	Platform donburi.Entity
}

var Powerup = donburi.NewComponentType[PowerupData]()
