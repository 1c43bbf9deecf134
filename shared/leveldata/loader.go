package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the map.
const (
	GroupPlatforms   = "Platforms"
	GroupPlayerSpawn = "PlayerSpawn"
)

// ErrNoPlatforms is returned for maps whose Platforms group is missing or empty.
var ErrNoPlatforms = errors.New("layout has no platforms")

// LoadLayout parses a TMX file and returns the starting layout. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			// Document order is insertion order, which is draw order within a layer.
			for _, o := range og.Objects {
				variant := -1
				if o.Properties.GetString("variant") != "" {
					variant = o.Properties.GetInt("variant")
				}
				layout.Platforms = append(layout.Platforms, PlatformPoint{
					X:       o.X,
					Y:       o.Y,
					Variant: variant,
				})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 && !spawnFound {
				layout.PlayerSpawn = SpawnPoint{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawnFound = true
			}
		}
	}

	if len(layout.Platforms) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlatforms)
	}
	if !spawnFound {
		return nil, fmt.Errorf("%s: missing %s object", tmxPath, GroupPlayerSpawn)
	}

	return layout, nil
}
