package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/automoto/bunnyhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// SpriteLoader cuts the spritesheet into scaled frames and caches them.
// Frames missing from the sheet are drawn as flat placeholder rectangles.
type SpriteLoader struct {
	fsys   fs.FS
	sheet  *image.RGBA
	frames map[config.SpriteID]*ebiten.Image
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:   fsys,
		frames: make(map[config.SpriteID]*ebiten.Image),
	}
}

// Load decodes the sheet. A nil filesystem or a missing sheet is not fatal;
// every frame then falls back to its placeholder color.
func (l *SpriteLoader) Load() error {
	if l.fsys == nil {
		return nil
	}
	f, err := l.fsys.Open(config.Sprites.Sheet)
	if err != nil {
		return fmt.Errorf("open spritesheet %s: %w", config.Sprites.Sheet, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode spritesheet %s: %w", config.Sprites.Sheet, err)
	}
	l.sheet = ColorKey(img, color.Black)
	return nil
}

// Frame returns the cached image for a sprite, building it on first use.
func (l *SpriteLoader) Frame(id config.SpriteID) *ebiten.Image {
	if img, ok := l.frames[id]; ok {
		return img
	}

	var img *ebiten.Image
	if l.sheet != nil {
		img = ebiten.NewImageFromImage(CutRegion(l.sheet, config.Sprites.Regions[id], config.Sprites.Scale))
	} else {
		w, h := config.FrameSize(id)
		img = ebiten.NewImage(max(int(w), 1), max(int(h), 1))
		img.Fill(config.Sprites.Fallback[id])
	}
	l.frames[id] = img
	return img
}

// ColorKey copies img into an RGBA image with every pixel matching key made
// fully transparent.
func ColorKey(img image.Image, key color.Color) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	kr, kg, kb, _ := key.RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			r, g, bl, _ := c.RGBA()
			if r == kr && g == kg && bl == kb {
				continue
			}
			out.Set(x, y, c)
		}
	}
	return out
}

// CutRegion copies r out of the sheet and shrinks it by an integer divisor.
func CutRegion(sheet image.Image, r image.Rectangle, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()/scale, r.Dy()/scale))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), sheet, r, draw.Over, nil)
	return dst
}

var spriteLoader = NewSpriteLoader(nil)

// UseSprites points the shared loader at a directory of art. Loading errors
// are logged and leave the placeholders in place.
func UseSprites(fsys fs.FS) {
	spriteLoader = NewSpriteLoader(fsys)
	if err := spriteLoader.Load(); err != nil {
		log.Printf("Warning: %v; drawing placeholders", err)
	}
}

// GetFrame returns the shared loader's image for a sprite.
func GetFrame(id config.SpriteID) *ebiten.Image {
	return spriteLoader.Frame(id)
}
