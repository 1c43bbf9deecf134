package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Mob      = donburi.NewTag().SetName("Mob")
	Powerup  = donburi.NewTag().SetName("Powerup")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer   = "player"
	ResolvPlatform = "platform"
	ResolvMob      = "mob"
	ResolvPowerup  = "powerup"
)
