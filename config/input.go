package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionQuit
	ActionMenuSelect
	ActionToggleHitboxes
	ActionToggleMute
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionJump:
		return "jump"
	case ActionQuit:
		return "quit"
	case ActionMenuSelect:
		return "menu-select"
	case ActionToggleHitboxes:
		return "toggle-hitboxes"
	case ActionToggleMute:
		return "toggle-mute"
	}
	return "none"
}

// MovePolicy decides the horizontal intent when left and right are both held.
type MovePolicy int

const (
	// MoveLastWins lets right override left, matching the order the keys are read.
	MoveLastWins MovePolicy = iota
	// MoveCancel treats opposing keys as no horizontal intent.
	MoveCancel
)

// InputConfig holds input tuning shared by every front end
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Ticks a terminal key stays held after its last repeat event
	KeyHoldTicks int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		KeyHoldTicks:   8,
	}
}
