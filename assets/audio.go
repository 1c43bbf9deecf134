package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader reading from fsys. A nil fsys
// makes every load fail, which callers treat as "no file".
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

func (l *AudioLoader) read(path string) ([]byte, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("no asset directory for %s", path)
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	return data, nil
}

// decode turns an ogg or wav file into raw PCM at the context's sample rate.
func (l *AudioLoader) decode(path string) ([]byte, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}
	decoded, err := l.decode(path)
	if err != nil {
		return err
	}
	l.sfxCache[path] = decoded
	return nil
}

// CacheSFX stores already decoded PCM under path, replacing any file.
func (l *AudioLoader) CacheSFX(path string, pcm []byte) {
	l.sfxCache[path] = pcm
}

// LoadSFX returns a new player each time.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[path]), nil
}

// LoadMusic returns a streaming player for music with looping.
// Music is not cached.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	// Music files are always OGG
	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", path, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

// ToneBytes synthesizes a short sine blip as 16-bit little-endian stereo PCM,
// the format ebiten's audio players consume. The tail fades linearly to
// avoid a click.
func ToneBytes(sampleRate int, hz float64, d time.Duration) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*hz*float64(i)/float64(sampleRate)) * env * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
