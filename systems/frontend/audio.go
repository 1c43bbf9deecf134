package frontend

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/bunnyhop/assets"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalAudioFS      fs.FS
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	globalFade         *gween.Tween
	audioInitOnce      sync.Once
)

// UseAudioFS sets where sound files are read from. Call before the first
// audio system runs.
func UseAudioFS(fsys fs.FS) {
	globalAudioFS = fsys
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, globalAudioFS)
	})
}

// PreloadAllSFX decodes all sound effects up front. Any effect whose file is
// missing gets a synthesized tone instead.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: %v; using a tone for %s", err, path)
			globalAudioLoader.CacheSFX(path, assets.ToneBytes(cfg.Audio.SampleRate, cfg.Sound.ToneHz[id], cfg.Sound.ToneLen))
		}
	}
}

// UpdateAudio plays queued SFX and advances the music fade.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFade != nil {
		vol, done := globalFade.Update(float32(cfg.TickDuration().Seconds()))
		if globalMusicPlayer != nil {
			globalMusicPlayer.SetVolume(float64(vol))
		}
		if done {
			StopMusic()
		}
	}

	for _, soundID := range systems.DrainSFX(e) {
		playSFX(soundID)
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts playing music with the given path (looping)
func PlayMusic(musicPath string) {
	initGlobalAudio()

	// Already playing this music
	if globalMusicKey == musicPath && globalFade == nil {
		return
	}
	StopMusic()

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		return
	}

	player.SetVolume(musicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic() {
	if globalMusicPlayer == nil || globalFade != nil {
		return
	}
	globalFade = gween.New(float32(globalMusicPlayer.Volume()), 0, float32(cfg.Audio.MusicFade.Seconds()), ease.Linear)
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFade = nil
}

func musicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

// ToggleMute flips the mute flag and returns the new state.
func ToggleMute() bool {
	globalMuted = !globalMuted
	if globalMusicPlayer != nil && globalFade == nil {
		globalMusicPlayer.SetVolume(musicVolume())
	}
	return globalMuted
}

// ApplySavedSettings restores volumes from disk.
func ApplySavedSettings(s *systems.SavedSettings) {
	if s == nil {
		return
	}
	globalMusicVolume = s.MusicVolume
	globalSFXVolume = s.SFXVolume
	globalMuted = s.Muted
}

// CurrentSettings snapshots the volumes for saving.
func CurrentSettings() *systems.SavedSettings {
	return &systems.SavedSettings{
		MusicVolume: globalMusicVolume,
		SFXVolume:   globalSFXVolume,
		Muted:       globalMuted,
	}
}
