// Package leveldata parses the starting layout of a session from a TMX map.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Layout is the fixed arrangement installed when a session starts.
type Layout struct {
	Platforms   []PlatformPoint
	PlayerSpawn SpawnPoint
	MapWidth    int
	MapHeight   int
}

// PlatformPoint is the top-left corner of an initial platform.
// Variant selects the platform image; -1 lets the spawner pick one.
type PlatformPoint struct {
	X, Y    float64
	Variant int
}

// SpawnPoint is the player's mid-bottom start position.
type SpawnPoint struct {
	X, Y float64
}
