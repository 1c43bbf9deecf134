package frontend

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding maps one action to the keys and buttons that trigger it.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the default keyboard and gamepad layout.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionQuit: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuSelect: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionToggleHitboxes: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
	cfg.ActionToggleMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads and records the held actions.
// Must run BEFORE the simulation in the system order.
func UpdateInput(ecs *ecs.ECS) {
	var pressed [cfg.ActionCount]bool
	var gamepadUsed bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if left, right := analogStick(gamepadIDs); left || right {
		pressed[cfg.ActionMoveLeft] = pressed[cfg.ActionMoveLeft] || left
		pressed[cfg.ActionMoveRight] = pressed[cfg.ActionMoveRight] || right
		gamepadUsed = true
	}

	// Gamepad takes priority if both used
	method := components.InputKeyboard
	if gamepadUsed {
		method = components.InputGamepad
	}
	systems.SampleInput(ecs, pressed, method)
}

// analogStick reads the left stick of every gamepad against the deadzone.
func analogStick(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}
