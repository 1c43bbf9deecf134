package components

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
)

// EntityData is shared by everything the registry owns.
type EntityData struct {
	Kind  cfg.EntityKind
	Layer int
	Seq   uint64 // insertion order, breaks draw ties within a layer
	Alive bool
}

var Entity = donburi.NewComponentType[EntityData]()
