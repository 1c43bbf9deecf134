package systems

import (
	"errors"
	"testing"
)

type failingStore struct{ err error }

func (s failingStore) Load() (int, error) { return 0, s.err }
func (s failingStore) Save(int) error     { return s.err }

func TestParseHighScore(t *testing.T) {
	tests := []struct {
		data    string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"  \n", 0, false},
		{"120", 120, false},
		{"340\n", 340, false},
		{"lots", 0, true},
		{"12.5", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHighScore([]byte(tt.data))
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHighScore(%q) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHighScore(%q) = %d, want %d", tt.data, got, tt.want)
		}
	}
}

func TestLoadHighScoreFallsBackToZero(t *testing.T) {
	if got := LoadHighScore(nil); got != 0 {
		t.Errorf("nil store: got %d", got)
	}
	if got := LoadHighScore(failingStore{err: errors.New("disk gone")}); got != 0 {
		t.Errorf("failing store: got %d", got)
	}
	if got := LoadHighScore(&MemoryStore{Data: []byte("not a number")}); got != 0 {
		t.Errorf("corrupt data: got %d", got)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := &MemoryStore{}
	if err := store.Save(250); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := LoadHighScore(store); got != 250 {
		t.Fatalf("LoadHighScore = %d, want 250", got)
	}
}

func TestFinishSessionReportsSaveError(t *testing.T) {
	e := newRunningECS(t, 1)
	session := GetSession(e)
	session.Score = 30

	isNew, err := FinishSession(e, failingStore{err: errors.New("read-only")})
	if !isNew || err == nil {
		t.Fatalf("new=%v err=%v, want a new record and an error", isNew, err)
	}
	if session.HighScore != 30 {
		t.Fatalf("in-memory high score = %d, want 30", session.HighScore)
	}
}
