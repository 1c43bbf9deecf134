package leveldata

import (
	"embed"
	"fmt"
	"sync"
)

// DefaultPath is the bundled starting layout.
const DefaultPath = "levels/start.tmx"

//go:embed levels
var levelFS embed.FS

var defaultLayout = sync.OnceValues(func() (*Layout, error) {
	return LoadEmbedded(DefaultPath)
})

// LoadEmbedded parses a layout bundled with the binary.
func LoadEmbedded(path string) (*Layout, error) {
	return LoadLayout(levelFS, path)
}

// Default returns the bundled starting layout, parsed once. Callers must not
// modify it.
func Default() *Layout {
	layout, err := defaultLayout()
	if err != nil {
		panic(fmt.Sprintf("bundled layout: %v", err))
	}
	return layout
}
