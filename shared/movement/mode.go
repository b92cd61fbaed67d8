// Package movement implements the fixed-step kinematic platformer
// controllers. Each Tick runs the same ordered pipeline: timers, contact
// probes, wall behavior, gravity, jumps, running, sprint, dash, air budget
// refill and finally integration.
package movement

// Mode is the single behavior an actor is in for a tick.
type Mode int

const (
	ModeAirborne Mode = iota
	ModeGrounded
	ModeOnWall
	ModeClimbing
	ModeDashing
)

func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeOnWall:
		return "onWall"
	case ModeClimbing:
		return "climbing"
	case ModeDashing:
		return "dashing"
	}
	return "airborne"
}

// resolveMode applies the precedence Dashing > Climbing > OnWall >
// Grounded > Airborne.
func resolveMode(dashing, climbing, onWall, grounded bool) Mode {
	switch {
	case dashing:
		return ModeDashing
	case climbing:
		return ModeClimbing
	case onWall:
		return ModeOnWall
	case grounded:
		return ModeGrounded
	}
	return ModeAirborne
}
