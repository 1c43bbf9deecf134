package components

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	ID    cfg.SpriteID
	FlipX bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
