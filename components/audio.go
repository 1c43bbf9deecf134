package components

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
)

// AudioData queues one-shot sound requests raised by the simulation (singleton component).
// A front end drains PendingSFX; the simulation never owns playback state.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
