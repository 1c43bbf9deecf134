package gamemath

import (
	"math"
	"testing"
)

func TestWrapHorizontal(t *testing.T) {
	const width, halfW = 480.0, 30.0
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", 200, 200},
		{"right edge exact", width + halfW, width + halfW},
		{"past right edge", width + halfW + 1, -halfW},
		{"left edge exact", -halfW, -halfW},
		{"past left edge", -halfW - 1, width + halfW},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapHorizontal(tt.x, halfW, width); got != tt.want {
				t.Errorf("WrapHorizontal(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestSnapToZero(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.05, 0},
		{-0.09, 0},
		{0.1, 0.1},
		{-0.1, -0.1},
		{2.5, 2.5},
	}
	for _, tt := range tests {
		if got := SnapToZero(tt.in, 0.1); got != tt.want {
			t.Errorf("SnapToZero(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApplyFrictionOpposesVelocity(t *testing.T) {
	if got := ApplyFriction(0, 4, -0.12); got >= 0 {
		t.Fatalf("friction on positive velocity = %v, want negative", got)
	}
	if got := ApplyFriction(0.5, -4, -0.12); math.Abs(got-0.98) > 1e-9 {
		t.Fatalf("ApplyFriction(0.5, -4) = %v, want 0.98", got)
	}
}

func TestIntegrateHalfStep(t *testing.T) {
	if got := Integrate(10, 2, 0.8); math.Abs(got-12.4) > 1e-9 {
		t.Fatalf("Integrate = %v, want 12.4", got)
	}
}

func TestOscillateStaysBounded(t *testing.T) {
	v, step := 0.0, 0.5
	for i := 0; i < 500; i++ {
		v, step = Oscillate(v, step, 3)
		if math.Abs(v) > 3.5 {
			t.Fatalf("tick %d: |v| = %v escaped the bob range", i, v)
		}
	}
}

func TestOscillateFlipsPastLimit(t *testing.T) {
	v, step := Oscillate(3, 0.5, 3)
	if v != 3.5 || step != -0.5 {
		t.Fatalf("Oscillate(3, 0.5) = (%v, %v), want (3.5, -0.5)", v, step)
	}
}
