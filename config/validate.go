package config

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning marks every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

type checker struct {
	section string
	errs    []error
}

func (c *checker) fail(name string, v any, want string) {
	c.errs = append(c.errs, fmt.Errorf("%w: %s.%s = %v, want %s", ErrInvalidTuning, c.section, name, v, want))
}

func (c *checker) positive(name string, v float64) {
	if !(v > 0) {
		c.fail(name, v, "> 0")
	}
}

func (c *checker) nonNegative(name string, v float64) {
	if !(v >= 0) {
		c.fail(name, v, ">= 0")
	}
}

func (c *checker) nonPositive(name string, v float64) {
	if !(v <= 0) {
		c.fail(name, v, "<= 0")
	}
}

func (c *checker) negative(name string, v float64) {
	if !(v < 0) {
		c.fail(name, v, "< 0")
	}
}

// fraction accepts (0, 1].
func (c *checker) fraction(name string, v float64) {
	if !(v > 0 && v <= 1) {
		c.fail(name, v, "in (0, 1]")
	}
}

func (c *checker) err() error {
	return errors.Join(c.errs...)
}

func (s SimConfig) Validate() error {
	c := checker{section: "sim"}
	if s.TickRate <= 0 {
		c.fail("tickRate", s.TickRate, "> 0")
	}
	return c.err()
}

func (k Controller2DConfig) Validate() error {
	c := checker{section: "controller2d"}
	c.positive("halfExtents.x", k.HalfExtents.X)
	c.positive("halfExtents.y", k.HalfExtents.Y)
	c.positive("probeSkin", k.ProbeSkin)
	c.nonNegative("snapTolerance", k.SnapTolerance)

	c.negative("gravity", k.Gravity)
	c.positive("fallMultiplier", k.FallMultiplier)
	c.negative("terminalVelocity", k.TerminalVelocity)
	c.nonPositive("groundedBias", k.GroundedBias)

	c.positive("jumpPower", k.JumpPower)
	c.fraction("jumpCutFraction", k.JumpCutFraction)
	c.positive("coyoteTime", k.CoyoteTime)
	c.positive("jumpBufferTime", k.JumpBufferTime)
	c.positive("airJumpWindow", k.AirJumpWindow)
	c.positive("airJumpFraction", k.AirJumpFraction)
	if k.MaxAirMoves < 0 {
		c.fail("maxAirMoves", k.MaxAirMoves, ">= 0")
	}
	c.nonNegative("ceilingStickTime", k.CeilingStickTime)

	c.positive("wallJumpPower.x", k.WallJumpPower.X)
	c.positive("wallJumpPower.y", k.WallJumpPower.Y)
	c.positive("wallJumpWindow", k.WallJumpWindow)
	c.nonNegative("wallJumpLockTime", k.WallJumpLockTime)
	c.fraction("wallSlideFactor", k.WallSlideFactor)
	c.positive("climbSpeed", k.ClimbSpeed)
	c.nonNegative("climbSmoothing", k.ClimbSmoothing)

	c.positive("moveSpeed", k.MoveSpeed)
	c.nonNegative("movementSmoothing", k.MovementSmoothing)
	c.positive("sprintMultiplier", k.SprintMultiplier)
	c.positive("sprintResetTime", k.SprintResetTime)

	c.positive("dashDistance", k.DashDistance)
	c.positive("dashSpeed", k.DashSpeed)
	c.nonNegative("dashCooldown", k.DashCooldown)
	return c.err()
}

func (k Controller3DConfig) Validate() error {
	c := checker{section: "controller3d"}
	c.positive("halfExtents.x", k.HalfExtents.X())
	c.positive("halfExtents.y", k.HalfExtents.Y())
	c.positive("halfExtents.z", k.HalfExtents.Z())
	c.positive("probeSkin", k.ProbeSkin)
	c.nonNegative("snapTolerance", k.SnapTolerance)

	c.negative("gravity", k.Gravity)
	c.positive("fallMultiplier", k.FallMultiplier)
	c.negative("terminalVelocity", k.TerminalVelocity)
	c.nonPositive("groundedBias", k.GroundedBias)

	c.positive("jumpPower", k.JumpPower)
	c.fraction("jumpCutFraction", k.JumpCutFraction)
	c.positive("coyoteTime", k.CoyoteTime)
	c.positive("jumpBufferTime", k.JumpBufferTime)
	c.positive("airJumpWindow", k.AirJumpWindow)
	c.positive("airJumpFraction", k.AirJumpFraction)
	if k.MaxAirMoves < 0 {
		c.fail("maxAirMoves", k.MaxAirMoves, ">= 0")
	}
	c.nonNegative("ceilingStickTime", k.CeilingStickTime)

	c.positive("wallJumpHorizontal", k.WallJumpHorizontal)
	c.positive("wallJumpVertical", k.WallJumpVertical)
	c.positive("wallJumpWindow", k.WallJumpWindow)
	c.nonNegative("wallJumpLockTime", k.WallJumpLockTime)

	c.positive("moveSpeed", k.MoveSpeed)
	c.nonNegative("movementSmoothing", k.MovementSmoothing)
	c.positive("sprintMultiplier", k.SprintMultiplier)
	c.positive("sprintResetTime", k.SprintResetTime)

	c.positive("dashDistance", k.DashDistance)
	c.positive("dashSpeed", k.DashSpeed)
	c.nonNegative("dashCooldown", k.DashCooldown)
	return c.err()
}

func (k Camera2DConfig) Validate() error {
	c := checker{section: "camera2d"}
	c.nonNegative("deadZone.x", k.DeadZone.X)
	c.nonNegative("deadZone.y", k.DeadZone.Y)
	c.positive("followSmoothTime", k.FollowSmoothTime)
	c.nonNegative("shiftDistance.x", k.ShiftDistance.X)
	c.nonNegative("shiftDistance.y", k.ShiftDistance.Y)
	c.nonNegative("shiftSmoothing", k.ShiftSmoothing)
	return c.err()
}

func (k Camera3DConfig) Validate() error {
	c := checker{section: "camera3d"}
	c.nonNegative("deadZoneRadius", k.DeadZoneRadius)
	c.nonNegative("deadZoneHeight", k.DeadZoneHeight)
	c.positive("followSmoothTime", k.FollowSmoothTime)
	c.nonNegative("shiftDistance", k.ShiftDistance)
	c.nonNegative("shiftSmoothing", k.ShiftSmoothing)
	c.fraction("tapThreshold", k.TapThreshold)
	c.positive("doubleTapWindow", k.DoubleTapWindow)
	if !(k.DoubleTapDot > -1 && k.DoubleTapDot < 1) {
		c.fail("doubleTapDot", k.DoubleTapDot, "in (-1, 1)")
	}
	c.positive("rotateDuration", k.RotateDuration)
	c.nonNegative("rotateCooldown", k.RotateCooldown)
	return c.err()
}

// Validate reports every degenerate value in t. The result wraps
// ErrInvalidTuning when non-nil.
func Validate(t Tuning) error {
	return errors.Join(
		t.Sim.Validate(),
		t.Controller2D.Validate(),
		t.Controller3D.Validate(),
		t.Camera2D.Validate(),
		t.Camera3D.Validate(),
	)
}
