package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData animates the score readout.
type HUDData struct {
	LastScore int
	Scale     float32
	Pulse     *gween.Tween // nil when idle
}

var HUD = donburi.NewComponentType[HUDData]()
