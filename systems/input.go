package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// SampleInput records one tick of held actions. The previous tick's state is
// kept so edges can be derived with GetAction.
func SampleInput(ecs *ecs.ECS, pressed [cfg.ActionCount]bool, method components.InputMethod) {
	input := GetOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = pressed
	for _, p := range pressed {
		if p {
			input.LastInputMethod = method
			break
		}
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous tick.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// AnyJustReleased reports whether any action was let go this tick.
func AnyJustReleased(input *components.InputData) bool {
	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		if GetAction(input, id).JustReleased {
			return true
		}
	}
	return false
}

// HorizontalIntent resolves the held direction keys into -1, 0 or +1.
func HorizontalIntent(input *components.InputData, policy cfg.MovePolicy) float64 {
	left := input.Current[cfg.ActionMoveLeft]
	right := input.Current[cfg.ActionMoveRight]
	switch {
	case left && right:
		if policy == cfg.MoveCancel {
			return 0
		}
		return 1
	case left:
		return -1
	case right:
		return 1
	}
	return 0
}
