package movement

import (
	gomath "math"

	"github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/collision"
	"github.com/automoto/kcc/shared/gamemath"
	"github.com/automoto/kcc/shared/input"
	"github.com/automoto/kcc/shared/timer"
	"github.com/yohamta/donburi/features/math"
)

// Actor2D is the state of one side-view character.
type Actor2D struct {
	Position math.Vec2
	Velocity math.Vec2
	Facing   float64 // -1 or 1, never 0

	Grounded bool
	OnWall   bool
	Ceiling  bool
	WallDir  float64 // Side of the contacted wall, valid while OnWall

	AirMoves int // Shared by air jumps and air dashes
	Timers   timer.Bank

	Dashing   bool
	Climbing  bool
	Sprinting bool
	Mode      Mode

	lastWallDir float64
	dashFrom    math.Vec2
	dashTo      math.Vec2
	dashWindow  float64
}

// Controller2D moves one Actor2D through a static level.
type Controller2D struct {
	Actor Actor2D

	body   Body2D
	caster collision.Caster2D
	cfg    config.Controller2DConfig
	moved  bool // dash wrote the position this tick
}

// NewController2D validates cfg and places a resting actor at the body's
// position.
func NewController2D(body Body2D, caster collision.Caster2D, cfg config.Controller2DConfig) (*Controller2D, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller2D{
		Actor: Actor2D{
			Position: body.Position(),
			Facing:   config.DirectionRight,
			AirMoves: cfg.MaxAirMoves,
		},
		body:   body,
		caster: caster,
		cfg:    cfg,
	}, nil
}

func (c *Controller2D) Config() config.Controller2DConfig {
	return c.cfg
}

// SetConfig swaps the tunables between ticks.
func (c *Controller2D) SetConfig(cfg config.Controller2DConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	if c.Actor.AirMoves > cfg.MaxAirMoves {
		c.Actor.AirMoves = cfg.MaxAirMoves
	}
	return nil
}

// Tick advances the actor by one fixed step of dt seconds.
func (c *Controller2D) Tick(in input.Snapshot, dt float64) {
	a := &c.Actor
	a.Position = c.body.Position()
	c.moved = false

	a.Timers.DecrementAll(dt)
	c.latch(in)
	c.probe(dt)
	c.wallSlide(in, dt)
	c.gravity(dt)
	c.jump()
	c.jumpCut(in)
	c.airJump()
	c.wallJump()
	c.run(in, dt)
	c.sprint(in)
	c.dash(in)
	c.refill()
	c.integrate(dt)

	a.Mode = c.mode()
}

func (c *Controller2D) mode() Mode {
	a := &c.Actor
	return resolveMode(a.Dashing, a.Climbing, a.OnWall, a.Grounded)
}

// latch turns this tick's pulses into timers.
func (c *Controller2D) latch(in input.Snapshot) {
	a := &c.Actor
	if in.JumpPressed {
		a.Timers.Set(timer.JumpBuffer, c.cfg.JumpBufferTime)
		a.Timers.Set(timer.AirJumpWindow, c.cfg.AirJumpWindow)
	}
	if in.MoveX != 0 {
		a.Facing = gamemath.Sign(in.MoveX)
	}
}

func sweep(v, dt, skin float64) float64 {
	return gomath.Abs(v*dt) + skin
}

func (c *Controller2D) snapX(x float64) {
	c.Actor.Position.X = x
	c.body.MoveTo(c.Actor.Position)
}

func (c *Controller2D) snapY(y float64) {
	c.Actor.Position.Y = y
	c.body.MoveTo(c.Actor.Position)
}

func (c *Controller2D) probe(dt float64) {
	a := &c.Actor
	half := c.cfg.HalfExtents
	v := a.Velocity

	a.Grounded, a.Ceiling = false, false
	if hit, ok := c.caster.Cast(a.Position, half, collision.Down, sweep(v.Y, dt, c.cfg.ProbeSkin)); ok && v.Y <= 0 {
		a.Grounded = true
		c.snapY(hit.Point.Y + half.Y)
		a.Timers.Set(timer.Coyote, c.cfg.CoyoteTime)
	}
	if !a.Grounded {
		if hit, ok := c.caster.Cast(a.Position, half, collision.Up, sweep(v.Y, dt, c.cfg.ProbeSkin)); ok && v.Y >= 0 {
			a.Ceiling = true
			c.snapY(hit.Point.Y - half.Y)
			if v.Y > 0 {
				a.Velocity.Y = 0
				a.Timers.Set(timer.CeilingStick, c.cfg.CeilingStickTime)
			}
		}
	}

	a.OnWall, a.WallDir = false, 0
	if a.Timers.Active(timer.WallJumpLock) {
		return
	}
	reach := sweep(v.X, dt, c.cfg.ProbeSkin)
	left, okLeft := c.caster.Cast(a.Position, half, collision.Left, reach)
	right, okRight := c.caster.Cast(a.Position, half, collision.Right, reach)

	var hit collision.Contact2D
	var dir float64
	switch {
	case okLeft && okRight:
		if v.X > 0 || (v.X == 0 && right.Distance < left.Distance) {
			hit, dir = right, 1
		} else {
			hit, dir = left, -1
		}
	case okLeft:
		hit, dir = left, -1
	case okRight:
		hit, dir = right, 1
	default:
		return
	}

	if v.X*dir >= 0 {
		c.snapX(hit.Point.X - dir*half.X)
	}
	a.WallDir = dir
	a.OnWall = !a.Grounded
	if a.OnWall {
		a.lastWallDir = dir
		a.Timers.Set(timer.WallJumpWindow, c.cfg.WallJumpWindow)
	}
}

func (c *Controller2D) wallSlide(in input.Snapshot, dt float64) {
	a := &c.Actor
	if !a.OnWall || a.Dashing {
		a.Climbing = false
		return
	}
	if a.Velocity.X*a.WallDir > 0 {
		a.Velocity.X = 0
	}

	a.Climbing = in.ClimbHeld
	if a.Climbing {
		a.Velocity.X = 0
		a.Velocity.Y = gamemath.Damp(a.Velocity.Y, in.MoveY*c.cfg.ClimbSpeed, c.cfg.ClimbSmoothing, dt)
		return
	}
	if a.Velocity.Y < 0 {
		a.Velocity.Y *= c.cfg.WallSlideFactor
	}
}

func (c *Controller2D) gravity(dt float64) {
	a := &c.Actor
	switch c.mode() {
	case ModeDashing:
		a.Velocity.Y = 0
		return
	case ModeClimbing:
		return
	case ModeGrounded:
		if a.Velocity.Y <= 0 {
			a.Velocity.Y = c.cfg.GroundedBias
		}
		return
	}
	if a.Timers.Active(timer.CeilingStick) {
		return
	}
	g := c.cfg.Gravity
	if a.Velocity.Y < 0 {
		g *= c.cfg.FallMultiplier
	}
	a.Velocity.Y = gomath.Max(a.Velocity.Y+g*dt, c.cfg.TerminalVelocity)
}

func (c *Controller2D) consumeJump() {
	t := &c.Actor.Timers
	t.Clear(timer.JumpBuffer)
	t.Clear(timer.Coyote)
	t.Clear(timer.AirJumpWindow)
}

func (c *Controller2D) jump() {
	a := &c.Actor
	if a.Dashing || !a.Timers.Active(timer.JumpBuffer) || !a.Timers.Active(timer.Coyote) {
		return
	}
	a.Velocity.Y = c.cfg.JumpPower
	a.Grounded = false
	c.consumeJump()
}

func (c *Controller2D) jumpCut(in input.Snapshot) {
	a := &c.Actor
	if in.JumpReleased && a.Velocity.Y > 0 {
		a.Velocity.Y *= c.cfg.JumpCutFraction
	}
}

func (c *Controller2D) airJump() {
	a := &c.Actor
	if a.Dashing || a.Grounded || a.AirMoves <= 0 {
		return
	}
	if !a.Timers.Active(timer.AirJumpWindow) || a.Timers.Active(timer.WallJumpWindow) {
		return
	}
	a.Velocity.Y = c.cfg.JumpPower * c.cfg.AirJumpFraction
	a.AirMoves--
	c.consumeJump()
}

func (c *Controller2D) wallJump() {
	a := &c.Actor
	if a.Dashing || a.Grounded {
		return
	}
	if !a.Timers.Active(timer.WallJumpWindow) || !a.Timers.Active(timer.JumpBuffer) {
		return
	}
	a.Velocity.X = -a.lastWallDir * c.cfg.WallJumpPower.X
	a.Velocity.Y = c.cfg.WallJumpPower.Y
	a.Timers.Set(timer.WallJumpLock, c.cfg.WallJumpLockTime)
	a.Timers.Clear(timer.WallJumpWindow)
	a.OnWall, a.Climbing, a.WallDir = false, false, 0
	c.consumeJump()
}

func (c *Controller2D) run(in input.Snapshot, dt float64) {
	a := &c.Actor
	switch c.mode() {
	case ModeDashing, ModeClimbing:
		return
	}
	if a.Timers.Active(timer.WallJumpLock) {
		return
	}
	speed := c.cfg.MoveSpeed
	if a.Sprinting {
		speed *= c.cfg.SprintMultiplier
	}
	a.Velocity.X = gamemath.Damp(a.Velocity.X, in.MoveX*speed, c.cfg.MovementSmoothing, dt)
	if a.OnWall && a.Velocity.X*a.WallDir > 0 {
		a.Velocity.X = 0
	}
}

func (c *Controller2D) sprint(in input.Snapshot) {
	a := &c.Actor
	if in.SprintPressed {
		a.Sprinting = !a.Sprinting
		a.Timers.Set(timer.SprintReset, c.cfg.SprintResetTime)
	}
	if in.MoveX != 0 {
		a.Timers.Set(timer.SprintReset, c.cfg.SprintResetTime)
		return
	}
	if a.Sprinting && !a.Timers.Active(timer.SprintReset) {
		a.Sprinting = false
	}
}

func (c *Controller2D) dash(in input.Snapshot) {
	a := &c.Actor
	if a.Dashing {
		c.advanceDash()
		return
	}
	if !in.DashPressed || a.Timers.Active(timer.DashCooldown) {
		return
	}
	if !a.Grounded && a.AirMoves <= 0 {
		return
	}

	dir := a.Facing
	if in.MoveX*in.MoveX > 0.01 {
		dir = gamemath.Sign(in.MoveX)
	}
	distance := c.cfg.DashDistance
	if hit, ok := c.caster.Cast(a.Position, c.cfg.HalfExtents, collision.DirectionOf(0, dir), distance); ok {
		distance = gomath.Max(0, hit.Distance)
	}

	a.dashFrom = a.Position
	a.dashTo = math.Vec2{X: a.Position.X + dir*distance, Y: a.Position.Y}
	a.dashWindow = 2 * c.cfg.DashDistance / c.cfg.DashSpeed
	a.Timers.Set(timer.Dash, a.dashWindow)
	a.Dashing = true
	a.Climbing = false
	a.Velocity = math.Vec2{}
}

// advanceDash places the actor along an ease-out curve toward the dash end.
func (c *Controller2D) advanceDash() {
	a := &c.Actor
	f := a.Timers.Fraction(timer.Dash, a.dashWindow)
	eased := 1 - (1-f)*(1-f)

	a.Position.X = a.dashFrom.X + (a.dashTo.X-a.dashFrom.X)*eased
	c.body.MoveTo(a.Position)
	c.moved = true

	if !a.Timers.Active(timer.Dash) {
		c.endDash()
	}
}

func (c *Controller2D) endDash() {
	a := &c.Actor
	a.Dashing = false
	a.Velocity.X = 0
	if !a.Grounded && a.AirMoves > 0 {
		a.AirMoves--
	}
	a.Timers.Set(timer.DashCooldown, c.cfg.DashCooldown)
	a.Timers.Clear(timer.Dash)
}

func (c *Controller2D) refill() {
	a := &c.Actor
	if a.Grounded || a.OnWall {
		a.AirMoves = c.cfg.MaxAirMoves
	}
}

// integrate moves by velocity one axis at a time, stopping flush at the
// first solid in the way.
func (c *Controller2D) integrate(dt float64) {
	if c.moved {
		return
	}
	a := &c.Actor
	half := c.cfg.HalfExtents

	if dx := a.Velocity.X * dt; dx != 0 {
		if hit, ok := c.caster.Cast(a.Position, half, collision.DirectionOf(0, dx), gomath.Abs(dx)); ok {
			dx = gamemath.Sign(dx) * gomath.Max(0, hit.Distance)
			a.Velocity.X = 0
		}
		a.Position.X += dx
	}
	// Vertical hits keep their velocity so next tick's probe sees the
	// landing or the head bump.
	if dy := a.Velocity.Y * dt; dy != 0 {
		if hit, ok := c.caster.Cast(a.Position, half, collision.DirectionOf(1, dy), gomath.Abs(dy)); ok {
			dy = gamemath.Sign(dy) * gomath.Max(0, hit.Distance)
		}
		a.Position.Y += dy
	}
	c.body.SetPosition(a.Position)
}
