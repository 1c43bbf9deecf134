package animations

import (
	"testing"
	"time"
)

func TestAdvance(t *testing.T) {
	anim := NewAnimation(2, 200*time.Millisecond)

	tests := []struct {
		name      string
		frame     int
		last, now time.Duration
		want      int
		wantOK    bool
	}{
		{"too soon", 0, 0, 150 * time.Millisecond, 0, false},
		{"exactly interval", 0, 0, 200 * time.Millisecond, 0, false},
		{"past interval", 0, 0, 201 * time.Millisecond, 1, true},
		{"wraps", 1, 0, time.Second, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed, ok := anim.Advance(tt.frame, tt.last, tt.now)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("Advance = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
			if ok && changed != tt.now {
				t.Fatalf("changed = %v, want %v", changed, tt.now)
			}
			if !ok && changed != tt.last {
				t.Fatalf("changed = %v, want unchanged %v", changed, tt.last)
			}
		})
	}
}
