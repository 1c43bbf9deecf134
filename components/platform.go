package components

import "github.com/yohamta/donburi"

type PlatformData struct {
	Variant int
	// Powerup is owned by the platform; HasPowerup guards the zero entity.
	Powerup    donburi.Entity
	HasPowerup bool
}

var Platform = donburi.NewComponentType[PlatformData]()
