package config

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/features/math"
)

// SimConfig contains fixed-step simulation settings
type SimConfig struct {
	TickRate int `yaml:"tickRate"` // Physics ticks per second
}

// Dt is the duration of one tick in seconds.
func (s SimConfig) Dt() float64 {
	return 1 / float64(s.TickRate)
}

// Controller2DConfig contains all side-view controller tunables.
// Units are world units (pixels) and seconds, y points up.
type Controller2DConfig struct {
	// Collision volume
	HalfExtents   math.Vec2 `yaml:"halfExtents"`
	ProbeSkin     float64   `yaml:"probeSkin"`     // Added to every swept probe distance
	SnapTolerance float64   `yaml:"snapTolerance"` // Deepest overlap a probe still reports

	// Gravity
	Gravity          float64 `yaml:"gravity"`          // Negative, applied while airborne
	FallMultiplier   float64 `yaml:"fallMultiplier"`   // Gravity scale while falling
	TerminalVelocity float64 `yaml:"terminalVelocity"` // Negative floor for v.y
	GroundedBias     float64 `yaml:"groundedBias"`     // v.y while grounded

	// Jumping
	JumpPower        float64 `yaml:"jumpPower"`
	JumpCutFraction  float64 `yaml:"jumpCutFraction"` // v.y scale on early release
	CoyoteTime       float64 `yaml:"coyoteTime"`
	JumpBufferTime   float64 `yaml:"jumpBufferTime"`
	AirJumpWindow    float64 `yaml:"airJumpWindow"` // How long a press stays usable for an air jump
	AirJumpFraction  float64 `yaml:"airJumpFraction"`
	MaxAirMoves      int     `yaml:"maxAirMoves"` // Shared by air jumps and air dashes
	CeilingStickTime float64 `yaml:"ceilingStickTime"`

	// Walls
	WallJumpPower    math.Vec2 `yaml:"wallJumpPower"` // x away from the wall, y up
	WallJumpWindow   float64   `yaml:"wallJumpWindow"`
	WallJumpLockTime float64   `yaml:"wallJumpLockTime"`
	WallSlideFactor  float64   `yaml:"wallSlideFactor"` // Per-tick scale on falling v.y
	ClimbSpeed       float64   `yaml:"climbSpeed"`
	ClimbSmoothing   float64   `yaml:"climbSmoothing"`

	// Running
	MoveSpeed         float64 `yaml:"moveSpeed"`
	MovementSmoothing float64 `yaml:"movementSmoothing"`
	SprintMultiplier  float64 `yaml:"sprintMultiplier"`
	SprintResetTime   float64 `yaml:"sprintResetTime"`

	// Dash
	DashDistance float64 `yaml:"dashDistance"`
	DashSpeed    float64 `yaml:"dashSpeed"`
	DashCooldown float64 `yaml:"dashCooldown"`
}

// Controller3DConfig contains all third-person controller tunables.
// Units are meters and seconds, y points up.
type Controller3DConfig struct {
	HalfExtents   mgl64.Vec3 `yaml:"halfExtents"`
	ProbeSkin     float64    `yaml:"probeSkin"`
	SnapTolerance float64    `yaml:"snapTolerance"`

	Gravity          float64 `yaml:"gravity"`
	FallMultiplier   float64 `yaml:"fallMultiplier"`
	TerminalVelocity float64 `yaml:"terminalVelocity"`
	GroundedBias     float64 `yaml:"groundedBias"`

	JumpPower        float64 `yaml:"jumpPower"`
	JumpCutFraction  float64 `yaml:"jumpCutFraction"`
	CoyoteTime       float64 `yaml:"coyoteTime"`
	JumpBufferTime   float64 `yaml:"jumpBufferTime"`
	AirJumpWindow    float64 `yaml:"airJumpWindow"`
	AirJumpFraction  float64 `yaml:"airJumpFraction"`
	MaxAirMoves      int     `yaml:"maxAirMoves"`
	CeilingStickTime float64 `yaml:"ceilingStickTime"`

	WallJumpHorizontal float64 `yaml:"wallJumpHorizontal"` // Along each contacted wall normal
	WallJumpVertical   float64 `yaml:"wallJumpVertical"`
	WallJumpWindow     float64 `yaml:"wallJumpWindow"`
	WallJumpLockTime   float64 `yaml:"wallJumpLockTime"`

	MoveSpeed         float64 `yaml:"moveSpeed"`
	MovementSmoothing float64 `yaml:"movementSmoothing"`
	SprintMultiplier  float64 `yaml:"sprintMultiplier"`
	SprintResetTime   float64 `yaml:"sprintResetTime"`

	DashDistance float64 `yaml:"dashDistance"`
	DashSpeed    float64 `yaml:"dashSpeed"`
	DashCooldown float64 `yaml:"dashCooldown"`
}

// Camera2DConfig contains side-view camera behavior configuration
type Camera2DConfig struct {
	DeadZone         math.Vec2 `yaml:"deadZone"`         // Half size of the box the player may roam without re-centring
	FollowSmoothTime float64   `yaml:"followSmoothTime"` // Smooth-damp time toward the target
	ShiftDistance    math.Vec2 `yaml:"shiftDistance"`    // Offset at full look input
	ShiftSmoothing   float64   `yaml:"shiftSmoothing"`
}

// Camera3DConfig contains orbit camera behavior configuration
type Camera3DConfig struct {
	DeadZoneRadius   float64    `yaml:"deadZoneRadius"` // Horizontal
	DeadZoneHeight   float64    `yaml:"deadZoneHeight"` // Vertical half band
	FollowSmoothTime float64    `yaml:"followSmoothTime"`
	Offset           mgl64.Vec3 `yaml:"offset"` // Orbit offset at yaw 0
	ShiftDistance    float64    `yaml:"shiftDistance"`
	ShiftSmoothing   float64    `yaml:"shiftSmoothing"`

	// Double tap on the look stick
	TapThreshold    float64 `yaml:"tapThreshold"` // Stick magnitude that counts as a tap
	DoubleTapWindow float64 `yaml:"doubleTapWindow"`
	DoubleTapDot    float64 `yaml:"doubleTapDot"` // Minimum alignment of the two taps

	RotateDuration float64 `yaml:"rotateDuration"`
	RotateCooldown float64 `yaml:"rotateCooldown"`
}

// Config holds the debug view configuration
type Config struct {
	Width  int
	Height int
}

// Tuning groups every tunable section so it can be loaded, validated and
// persisted as one document.
type Tuning struct {
	Sim          SimConfig          `yaml:"sim"`
	Controller2D Controller2DConfig `yaml:"controller2d"`
	Controller3D Controller3DConfig `yaml:"controller3d"`
	Camera2D     Camera2DConfig     `yaml:"camera2d"`
	Camera3D     Camera3DConfig     `yaml:"camera3d"`
}

// Global configuration instances
var C *Config
var Sim SimConfig
var Controller2D Controller2DConfig
var Controller3D Controller3DConfig
var Camera2D Camera2DConfig
var Camera3D Camera3DConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}
	Apply(Defaults())
}

// Defaults returns the built-in tuning.
func Defaults() Tuning {
	return Tuning{
		Sim: SimConfig{
			TickRate: 60,
		},
		Controller2D: Controller2DConfig{
			HalfExtents:   math.Vec2{X: 6, Y: 12},
			ProbeSkin:     0.05,
			SnapTolerance: 2,

			Gravity:          -1400,
			FallMultiplier:   1.6,
			TerminalVelocity: -600,
			GroundedBias:     0,

			JumpPower:        420,
			JumpCutFraction:  0.5,
			CoyoteTime:       0.1,
			JumpBufferTime:   0.1,
			AirJumpWindow:    0.1,
			AirJumpFraction:  0.85,
			MaxAirMoves:      1,
			CeilingStickTime: 0.05,

			WallJumpPower:    math.Vec2{X: 220, Y: 380},
			WallJumpWindow:   0.12,
			WallJumpLockTime: 0.15,
			WallSlideFactor:  0.85,
			ClimbSpeed:       90,
			ClimbSmoothing:   20,

			MoveSpeed:         160,
			MovementSmoothing: 14,
			SprintMultiplier:  1.6,
			SprintResetTime:   0.25,

			DashDistance: 64,
			DashSpeed:    480,
			DashCooldown: 0.4,
		},
		Controller3D: Controller3DConfig{
			HalfExtents:   mgl64.Vec3{0.4, 0.9, 0.4},
			ProbeSkin:     0.01,
			SnapTolerance: 0.1,

			Gravity:          -30,
			FallMultiplier:   1.5,
			TerminalVelocity: -40,
			GroundedBias:     0,

			JumpPower:        11,
			JumpCutFraction:  0.5,
			CoyoteTime:       0.1,
			JumpBufferTime:   0.1,
			AirJumpWindow:    0.1,
			AirJumpFraction:  0.85,
			MaxAirMoves:      1,
			CeilingStickTime: 0.05,

			WallJumpHorizontal: 7,
			WallJumpVertical:   10,
			WallJumpWindow:     0.12,
			WallJumpLockTime:   0.2,

			MoveSpeed:         6,
			MovementSmoothing: 12,
			SprintMultiplier:  1.6,
			SprintResetTime:   0.25,

			DashDistance: 4,
			DashSpeed:    24,
			DashCooldown: 0.5,
		},
		Camera2D: Camera2DConfig{
			DeadZone:         math.Vec2{X: 24, Y: 32},
			FollowSmoothTime: 0.15,
			ShiftDistance:    math.Vec2{X: 48, Y: 32},
			ShiftSmoothing:   4,
		},
		Camera3D: Camera3DConfig{
			DeadZoneRadius:   1.5,
			DeadZoneHeight:   1,
			FollowSmoothTime: 0.2,
			Offset:           mgl64.Vec3{0, 4, -8},
			ShiftDistance:    2.5,
			ShiftSmoothing:   4,

			TapThreshold:    0.6,
			DoubleTapWindow: 0.3,
			DoubleTapDot:    0.7,

			RotateDuration: 0.35,
			RotateCooldown: 0.2,
		},
	}
}

// Current returns the installed tuning.
func Current() Tuning {
	return Tuning{
		Sim:          Sim,
		Controller2D: Controller2D,
		Controller3D: Controller3D,
		Camera2D:     Camera2D,
		Camera3D:     Camera3D,
	}
}

// Apply installs t as the global configuration. Callers validate first.
func Apply(t Tuning) {
	Sim = t.Sim
	Controller2D = t.Controller2D
	Controller3D = t.Controller3D
	Camera2D = t.Camera2D
	Camera3D = t.Camera3D
}
