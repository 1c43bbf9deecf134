package assets

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func TestColorKey(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.Black)
	src.Set(1, 0, color.RGBA{R: 200, G: 10, B: 10, A: 255})

	out := ColorKey(src, color.Black)
	if _, _, _, a := out.At(0, 0).RGBA(); a != 0 {
		t.Errorf("black pixel alpha = %d, want 0", a)
	}
	if r, _, _, a := out.At(1, 0).RGBA(); a == 0 || r>>8 != 200 {
		t.Errorf("colored pixel lost: r=%d a=%d", r>>8, a)
	}
}

func TestCutRegionScales(t *testing.T) {
	sheet := image.NewRGBA(image.Rect(0, 0, 400, 400))
	tests := []struct {
		r     image.Rectangle
		scale int
		w, h  int
	}{
		{image.Rect(0, 0, 120, 191), 2, 60, 95},
		{image.Rect(10, 10, 81, 80), 2, 35, 35},
		{image.Rect(0, 0, 50, 40), 1, 50, 40},
		{image.Rect(0, 0, 50, 40), 0, 50, 40},
	}
	for _, tt := range tests {
		got := CutRegion(sheet, tt.r, tt.scale).Bounds()
		if got.Dx() != tt.w || got.Dy() != tt.h {
			t.Errorf("CutRegion(%v, %d) = %dx%d, want %dx%d", tt.r, tt.scale, got.Dx(), got.Dy(), tt.w, tt.h)
		}
	}
}

func TestToneBytes(t *testing.T) {
	pcm := ToneBytes(44100, 660, 100*time.Millisecond)
	if len(pcm) != 4410*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 4410*4)
	}
	// Left and right channels carry the same sample.
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

