package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// RegistryData is the singleton backing the entity registry.
type RegistryData struct {
	Space   *resolv.Space
	Margin  float64
	NextSeq uint64
}

var Registry = donburi.NewComponentType[RegistryData]()
