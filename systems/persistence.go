package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata"
)

const (
	highScoreKey = "highscore"
	settingsKey  = "settings"
)

// HighScoreStore persists the best score between sessions.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

// ParseHighScore reads the plain-text score format. Empty data is a score of 0.
func ParseHighScore(data []byte) (int, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("parse high score %q: %w", text, err)
	}
	return score, nil
}

// LoadHighScore reads the stored high score, falling back to 0 on any failure.
func LoadHighScore(store HighScoreStore) int {
	if store == nil {
		return 0
	}
	score, err := store.Load()
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return 0
	}
	return score
}

// GdataStore keeps the high score and settings in the per-user data directory.
type GdataStore struct {
	manager *gdata.Manager
}

// OpenGdataStore opens the data directory for appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open data dir for %s: %w", appName, err)
	}
	return &GdataStore{manager: m}, nil
}

func (s *GdataStore) Load() (int, error) {
	data, err := s.manager.LoadItem(highScoreKey)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", highScoreKey, err)
	}
	return ParseHighScore(data)
}

func (s *GdataStore) Save(score int) error {
	if err := s.manager.SaveItem(highScoreKey, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("save %s: %w", highScoreKey, err)
	}
	return nil
}

// LoadSettings loads settings from disk. A nil result means none are saved yet.
func (s *GdataStore) LoadSettings() (*SavedSettings, error) {
	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", settingsKey, err)
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func (s *GdataStore) SaveSettings(settings *SavedSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save %s: %w", settingsKey, err)
	}
	return nil
}

// MemoryStore holds the high score in plain-text form without touching disk.
type MemoryStore struct {
	mu   sync.Mutex
	Data []byte
}

func (s *MemoryStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ParseHighScore(s.Data)
}

func (s *MemoryStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data = []byte(strconv.Itoa(score))
	return nil
}
