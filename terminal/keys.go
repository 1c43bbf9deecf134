// Package terminal plays sessions in a text terminal through tcell.
package terminal

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/gdamore/tcell/v2"
)

// KeyHold turns key-repeat events into held actions. Terminals report no
// key releases, so an action stays held for a fixed number of ticks after
// its last event.
type KeyHold struct {
	ticks     int
	remaining [cfg.ActionCount]int
}

func NewKeyHold(ticks int) *KeyHold {
	return &KeyHold{ticks: max(ticks, 1)}
}

// ActionFor maps a key event to an action, or ActionNone.
func ActionFor(ev *tcell.EventKey) cfg.ActionID {
	switch ev.Key() {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft
	case tcell.KeyRight:
		return cfg.ActionMoveRight
	case tcell.KeyUp:
		return cfg.ActionJump
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cfg.ActionQuit
	case tcell.KeyEnter:
		return cfg.ActionMenuSelect
	case tcell.KeyF1:
		return cfg.ActionToggleHitboxes
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return cfg.ActionMoveLeft
		case 'd', 'l':
			return cfg.ActionMoveRight
		case ' ', 'w', 'k':
			return cfg.ActionJump
		case 'q':
			return cfg.ActionQuit
		case 'm':
			return cfg.ActionToggleMute
		}
	}
	return cfg.ActionNone
}

// Press marks an action held. Opposite directions cancel each other, as a
// terminal only repeats the most recent key.
func (k *KeyHold) Press(id cfg.ActionID) {
	if id == cfg.ActionNone {
		return
	}
	switch id {
	case cfg.ActionMoveLeft:
		k.remaining[cfg.ActionMoveRight] = 0
	case cfg.ActionMoveRight:
		k.remaining[cfg.ActionMoveLeft] = 0
	}
	k.remaining[id] = k.ticks
}

// Tick returns the held actions for this tick and ages every hold by one.
func (k *KeyHold) Tick() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for id, n := range k.remaining {
		if n > 0 {
			held[id] = true
			k.remaining[id] = n - 1
		}
	}
	return held
}

// Reset releases everything.
func (k *KeyHold) Reset() {
	k.remaining = [cfg.ActionCount]int{}
}
