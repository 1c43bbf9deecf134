package components

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputTerminal
	InputScripted
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing ticks.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
