package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound effect to be played by whichever front end is attached
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// DrainSFX returns and clears the queued sound effects.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	audioData := GetOrCreateAudio(e)
	pending := append([]cfg.SoundID(nil), audioData.PendingSFX...)
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return pending
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 4),
		})
	}
	return components.Audio.Get(entry)
}
