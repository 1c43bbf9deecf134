package terminal

import (
	"sync"
	"time"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Beeper plays each sound effect as a short sine tone.
type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	Muted       bool
}

func NewBeeper() *Beeper {
	return &Beeper{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure is not fatal; the game runs silent.
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play queues the tone for a sound.
func (b *Beeper) Play(id cfg.SoundID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.Muted {
		return
	}
	tone, err := toneStreamer(id)
	if err != nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(tone)
	speaker.Unlock()
}

// toneStreamer builds the finite, volume-scaled tone for a sound.
func toneStreamer(id cfg.SoundID) (beep.Streamer, error) {
	hz, ok := cfg.Sound.ToneHz[id]
	if !ok {
		hz = 440
	}
	sine, err := generators.SineTone(sampleRate, hz)
	if err != nil {
		return nil, err
	}
	mult := cfg.Sound.VolumeMultipliers[id]
	if mult == 0 {
		mult = 1
	}
	return &effects.Gain{
		Streamer: beep.Take(sampleRate.N(cfg.Sound.ToneLen), sine),
		Gain:     mult*cfg.Audio.DefaultSFXVol - 1,
	}, nil
}

// Close silences anything still playing.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}
