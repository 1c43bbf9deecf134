package config

import (
	"image"
	"image/color"
)

// SpriteID names a region of the spritesheet.
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpritePlayerReady
	SpritePlayerStand
	SpritePlayerWalk1
	SpritePlayerWalk2
	SpritePlatformWide
	SpritePlatformSmall
	SpritePowerupBoost
	SpriteMobUp
	SpriteMobDown
	SpriteCount
)

var spriteNames = [SpriteCount]string{
	SpriteNone:          "none",
	SpritePlayerReady:   "bunny-ready",
	SpritePlayerStand:   "bunny-stand",
	SpritePlayerWalk1:   "bunny-walk1",
	SpritePlayerWalk2:   "bunny-walk2",
	SpritePlatformWide:  "ground-wide",
	SpritePlatformSmall: "ground-small",
	SpritePowerupBoost:  "powerup-boost",
	SpriteMobUp:         "flyman-up",
	SpriteMobDown:       "flyman-down",
}

func (s SpriteID) String() string {
	if s < 0 || s >= SpriteCount {
		return "invalid"
	}
	return spriteNames[s]
}

// SpriteConfig describes the spritesheet and the regions cut from it.
type SpriteConfig struct {
	Sheet   string
	Scale   int // regions are shrunk by this integer divisor
	Regions [SpriteCount]image.Rectangle
	// Placeholder colors drawn when the sheet is unavailable
	Fallback [SpriteCount]color.RGBA
}

var Sprites SpriteConfig

// Animation frame sequences
var (
	PlayerStandingFrames = []SpriteID{SpritePlayerReady, SpritePlayerStand}
	PlayerWalkFrames     = []SpriteID{SpritePlayerWalk1, SpritePlayerWalk2}
	PlatformVariants     = []SpriteID{SpritePlatformWide, SpritePlatformSmall}
)

func region(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

func init() {
	Sprites = SpriteConfig{
		Sheet: "img/spritesheet_jumper.png",
		Scale: 2,
		Regions: [SpriteCount]image.Rectangle{
			SpritePlayerReady:   region(614, 1063, 120, 191),
			SpritePlayerStand:   region(690, 406, 120, 201),
			SpritePlayerWalk1:   region(678, 860, 120, 201),
			SpritePlayerWalk2:   region(692, 1458, 120, 207),
			SpritePlatformWide:  region(0, 288, 380, 94),
			SpritePlatformSmall: region(213, 1662, 201, 100),
			SpritePowerupBoost:  region(820, 1805, 71, 70),
			SpriteMobUp:         region(566, 510, 122, 139),
			SpriteMobDown:       region(568, 1534, 122, 135),
		},
		Fallback: [SpriteCount]color.RGBA{
			SpritePlayerReady:   {R: 255, G: 255, B: 255, A: 255},
			SpritePlayerStand:   {R: 255, G: 255, B: 255, A: 255},
			SpritePlayerWalk1:   {R: 240, G: 240, B: 240, A: 255},
			SpritePlayerWalk2:   {R: 240, G: 240, B: 240, A: 255},
			SpritePlatformWide:  {R: 140, G: 90, B: 40, A: 255},
			SpritePlatformSmall: {R: 120, G: 180, B: 60, A: 255},
			SpritePowerupBoost:  {R: 255, G: 255, B: 0, A: 255},
			SpriteMobUp:         {R: 200, G: 40, B: 40, A: 255},
			SpriteMobDown:       {R: 160, G: 30, B: 30, A: 255},
		},
	}
}

// FrameSize is the on-screen size of a sprite after scaling.
func FrameSize(id SpriteID) (w, h float64) {
	r := Sprites.Regions[id]
	return float64(r.Dx() / Sprites.Scale), float64(r.Dy() / Sprites.Scale)
}
