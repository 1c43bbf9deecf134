package config

// SessionState is the lifecycle of one play session.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionRunning
	SessionEnded
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionRunning:
		return "running"
	case SessionEnded:
		return "ended"
	}
	return "unknown"
}

// EndReason records why a session left the running state.
type EndReason int

const (
	EndNone EndReason = iota
	EndMobContact
	EndNoPlatforms
	EndQuit
)

func (r EndReason) String() string {
	switch r {
	case EndMobContact:
		return "mob-contact"
	case EndNoPlatforms:
		return "no-platforms"
	case EndQuit:
		return "quit"
	}
	return "none"
}

// Facing is the vertical pose of a mob.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
)

// PowerupKind enumerates power-up effects.
type PowerupKind int

const (
	PowerupBoost PowerupKind = iota
)

func (k PowerupKind) String() string {
	if k == PowerupBoost {
		return "boost"
	}
	return "unknown"
}

// EntityKind partitions the registry.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindPlatform
	KindMob
	KindPowerup
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindMob:
		return "mob"
	case KindPowerup:
		return "powerup"
	}
	return "unknown"
}
