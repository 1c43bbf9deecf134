package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// WorldConfig describes the visible world the simulation runs in.
type WorldConfig struct {
	Title    string
	Width    int
	Height   int
	TickRate int // ticks per second

	BackgroundColor color.RGBA
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration       float64
	Friction           float64 // negative: decay proportional to speed
	Gravity            float64
	JumpPower          float64
	JumpCutSpeed       float64 // upward speed a released jump is clamped to
	IdleSpeedThreshold float64 // |vx| below this snaps to zero
	BothHeld           MovePolicy

	// Spawn point (mid-bottom anchor)
	SpawnX float64
	SpawnY float64

	// Collision
	GroundProbeX     float64 // lateral offset of the grounded probe
	LandingTolerance float64 // horizontal slack when accepting a landing

	// Animation
	FrameInterval time.Duration
}

// MobConfig contains enemy spawning and motion configuration
type MobConfig struct {
	BaseInterval time.Duration
	Jitter       []time.Duration

	EdgeOffset float64 // spawn distance outside the screen edge
	ExitMargin float64 // destroyed once this far past an edge
	MinSpeed   int     // horizontal speed range [MinSpeed, MaxSpeed)
	MaxSpeed   int

	BobStep  float64 // vertical velocity increment per tick
	BobLimit float64 // |vy| above this flips the increment
}

// SpawnerConfig controls platform replenishment
type SpawnerConfig struct {
	MinPlatforms int
	MinWidth     int // platform width range [MinWidth, MaxWidth)
	MaxWidth     int
	MinY         int // spawn height range [MinY, MaxY)
	MaxY         int
}

// PowerupConfig contains power-up configuration values
type PowerupConfig struct {
	SpawnPct   int     // percent chance a new platform carries a power-up
	BoostPower float64 // upward velocity set by a boost pickup
	Offset     float64 // gap between the power-up bottom and the platform top
}

// ScrollConfig controls the world-scroll illusion and the fall sweep
type ScrollConfig struct {
	Threshold     float64 // fraction of the height the player top must reach
	MinShift      float64
	FallMinShift  float64
	PlatformScore int
}

// CollisionConfig sizes the broadphase space
type CollisionConfig struct {
	CellSize int
	Margin   float64 // padding around the world so off-screen entities still register
}

// LayerConfig defines draw order across entity kinds
type LayerConfig struct {
	Platform int
	Powerup  int
	Player   int
	Mob      int
}

// MenuConfig contains start screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	HintY           float64
	PromptY         float64
	HighScoreY      float64
	Hint            string
	Prompt          string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	ScoreY          float64
	HighScoreY      float64
	PromptY         float64
	Title           string
	Prompt          string
}

// HUDConfig contains in-game overlay configuration values
type HUDConfig struct {
	TextColor  color.RGBA
	ScoreY     float64
	PulseScale float64       // peak scale of the score text on a new high score
	PulseTime  time.Duration // duration of one pulse
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	ShowHitboxes bool
}

// Global configuration instances
var World WorldConfig
var Player PlayerConfig
var Mob MobConfig
var Spawner SpawnerConfig
var Powerup PowerupConfig
var Scroll ScrollConfig
var Collision CollisionConfig
var Layers LayerConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 0, G: 155, B: 155, A: 255}
	Brown     = color.RGBA{R: 140, G: 90, B: 40, A: 255}
	Pink      = color.RGBA{R: 255, G: 170, B: 200, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

func init() {
	World = WorldConfig{
		Title:           "Bunny Hop",
		Width:           480,
		Height:          600,
		TickRate:        60,
		BackgroundColor: LightBlue,
	}

	Player = PlayerConfig{
		Acceleration:       0.5,
		Friction:           -0.12,
		Gravity:            0.8,
		JumpPower:          20,
		JumpCutSpeed:       3,
		IdleSpeedThreshold: 0.1,
		BothHeld:           MoveLastWins,

		SpawnX: 40,
		SpawnY: 500, // Height - 100

		GroundProbeX:     2,
		LandingTolerance: 10,

		FrameInterval: 200 * time.Millisecond,
	}

	Mob = MobConfig{
		BaseInterval: 5000 * time.Millisecond,
		Jitter: []time.Duration{
			-1000 * time.Millisecond,
			-500 * time.Millisecond,
			0,
			500 * time.Millisecond,
			1000 * time.Millisecond,
		},
		EdgeOffset: 100,
		ExitMargin: 100,
		MinSpeed:   1,
		MaxSpeed:   4,
		BobStep:    0.5,
		BobLimit:   3,
	}

	Spawner = SpawnerConfig{
		MinPlatforms: 6,
		MinWidth:     50,
		MaxWidth:     100,
		MinY:         -75,
		MaxY:         -30,
	}

	Powerup = PowerupConfig{
		SpawnPct:   7,
		BoostPower: 60,
		Offset:     5,
	}

	Scroll = ScrollConfig{
		Threshold:     0.25,
		MinShift:      2,
		FallMinShift:  10,
		PlatformScore: 10,
	}

	Collision = CollisionConfig{
		CellSize: 16,
		Margin:   256,
	}

	Layers = LayerConfig{
		Platform: 1,
		Powerup:  1,
		Player:   2,
		Mob:      2,
	}

	Menu = MenuConfig{
		BackgroundColor: LightBlue,
		TitleColor:      White,
		TextColor:       White,
		TitleY:          150,
		HintY:           300,
		PromptY:         450,
		HighScoreY:      30,
		Hint:            "Arrows to move, Space to jump",
		Prompt:          "Press a key to play",
	}

	GameOver = GameOverConfig{
		BackgroundColor: LightBlue,
		TitleColor:      White,
		TextColor:       White,
		TitleY:          150,
		ScoreY:          300,
		HighScoreY:      340,
		PromptY:         450,
		Title:           "GAME OVER",
		Prompt:          "Press a key to play again",
	}

	HUD = HUDConfig{
		TextColor:  White,
		ScoreY:     30,
		PulseScale: 1.5,
		PulseTime:  400 * time.Millisecond,
	}

	Debug = DebugConfig{
		SkipMenu:     false,
		ShowHitboxes: false,
	}
}

// Validate reports tuning values the simulation cannot run with.
func Validate() error {
	var errs []error
	if World.Width <= 0 || World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", World.Width, World.Height))
	}
	if World.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate %d must be positive", World.TickRate))
	}
	if Spawner.MinPlatforms <= 0 {
		errs = append(errs, fmt.Errorf("min platforms %d must be positive", Spawner.MinPlatforms))
	}
	if Spawner.MinWidth <= 0 || Spawner.MaxWidth <= Spawner.MinWidth || Spawner.MaxWidth >= World.Width {
		errs = append(errs, fmt.Errorf("platform width range [%d,%d) invalid for world width %d",
			Spawner.MinWidth, Spawner.MaxWidth, World.Width))
	}
	if Spawner.MaxY <= Spawner.MinY {
		errs = append(errs, fmt.Errorf("platform spawn height range [%d,%d) is empty", Spawner.MinY, Spawner.MaxY))
	}
	if Mob.MaxSpeed <= Mob.MinSpeed {
		errs = append(errs, fmt.Errorf("mob speed range [%d,%d) is empty", Mob.MinSpeed, Mob.MaxSpeed))
	}
	if len(Mob.Jitter) == 0 {
		errs = append(errs, errors.New("mob jitter list is empty"))
	}
	if Powerup.SpawnPct < 0 || Powerup.SpawnPct > 100 {
		errs = append(errs, fmt.Errorf("power-up spawn percent %d out of range", Powerup.SpawnPct))
	}
	if Collision.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("collision cell size %d must be positive", Collision.CellSize))
	}
	return errors.Join(errs...)
}

// TickDuration is the simulated time covered by one tick.
func TickDuration() time.Duration {
	return time.Second / time.Duration(World.TickRate)
}
