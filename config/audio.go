package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundBoost
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicFade       time.Duration
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MenuMusic         string
	LevelMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	// Tone frequencies used when no sample playback is available
	ToneHz  map[SoundID]float64
	ToneLen time.Duration
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.25,
		DefaultSFXVol:   1.0,
		MusicFade:       500 * time.Millisecond,
	}

	Sound = SoundConfig{
		MenuMusic:  "snd/Yippee.ogg",
		LevelMusic: "snd/happytune.ogg",
		SFXPaths: map[SoundID]string{
			SoundJump:  "snd/jump.wav",
			SoundBoost: "snd/cartoon-jump.ogg",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundJump:  0.3,
			SoundBoost: 0.35,
		},
		ToneHz: map[SoundID]float64{
			SoundJump:  660,
			SoundBoost: 990,
		},
		ToneLen: 80 * time.Millisecond,
	}
}
