package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="30" height="38" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="540"/>
  <object id="2" x="190" y="450">
   <properties>
    <property name="variant" type="int" value="1"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="40" y="500"/>
 </objectgroup>
</map>
`

const emptyMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="30" height="38" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="40" y="500"/>
 </objectgroup>
</map>
`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testMap)}}

	layout, err := LoadLayout(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if layout.MapWidth != 480 || layout.MapHeight != 608 {
		t.Errorf("map size = %dx%d, want 480x608", layout.MapWidth, layout.MapHeight)
	}
	if len(layout.Platforms) != 2 {
		t.Fatalf("got %d platforms, want 2", len(layout.Platforms))
	}
	if p := layout.Platforms[0]; p.X != 0 || p.Y != 540 || p.Variant != -1 {
		t.Errorf("first platform = %+v, want {0 540 -1}", p)
	}
	if p := layout.Platforms[1]; p.X != 190 || p.Y != 450 || p.Variant != 1 {
		t.Errorf("second platform = %+v, want {190 450 1}", p)
	}
	if layout.PlayerSpawn != (SpawnPoint{X: 40, Y: 500}) {
		t.Errorf("spawn = %+v, want {40 500}", layout.PlayerSpawn)
	}
}

func TestLoadLayoutWithoutPlatforms(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(emptyMap)}}

	_, err := LoadLayout(fsys, "empty.tmx")
	if !errors.Is(err, ErrNoPlatforms) {
		t.Fatalf("err = %v, want ErrNoPlatforms", err)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := LoadLayout(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatal("expected an error for a missing map")
	}
}

func TestDefaultLayout(t *testing.T) {
	layout := Default()
	if len(layout.Platforms) != 5 {
		t.Errorf("platforms = %d, want 5", len(layout.Platforms))
	}
	if layout.Platforms[0].Variant != 0 {
		t.Errorf("ground platform variant = %d, want 0", layout.Platforms[0].Variant)
	}
	if layout.MapWidth != 480 || layout.MapHeight != 600 {
		t.Errorf("map = %dx%d, want 480x600", layout.MapWidth, layout.MapHeight)
	}
	if layout.PlayerSpawn.X != 40 || layout.PlayerSpawn.Y != 500 {
		t.Errorf("spawn = %+v", layout.PlayerSpawn)
	}
	if Default() != layout {
		t.Error("default layout parsed twice")
	}
}
