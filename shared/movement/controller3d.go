package movement

import (
	gomath "math"

	"github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/collision"
	"github.com/automoto/kcc/shared/gamemath"
	"github.com/automoto/kcc/shared/input"
	"github.com/automoto/kcc/shared/timer"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	up      = mgl64.Vec3{0, 1, 0}
	forward = mgl64.Vec3{0, 0, 1}
)

// Horizontal axes probed for walls.
var wallAxes = [2]int{0, 2}

// Actor3D is the state of one third-person character.
type Actor3D struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Facing   mgl64.Vec3 // Horizontal unit vector, never zero
	Yaw      float64    // Radians about +Y, follows the camera

	Grounded bool
	OnWall   bool
	Ceiling  bool
	WallDir  mgl64.Vec3 // Per-axis side of contacted walls on X and Z, valid while OnWall

	AirMoves int
	Timers   timer.Bank

	Dashing   bool
	Sprinting bool
	Rotating  bool
	Mode      Mode

	inputYaw      float64 // Frame for move input while Rotating
	lastWallDir   mgl64.Vec3
	dashDir       mgl64.Vec3
	dashTravelled float64
}

// Controller3D moves one Actor3D through a static box world. Movement input
// is read relative to the actor's yaw.
type Controller3D struct {
	Actor Actor3D

	body   Body3D
	caster collision.Caster3D
	cfg    config.Controller3DConfig
	moved  bool
}

func NewController3D(body Body3D, caster collision.Caster3D, cfg config.Controller3DConfig) (*Controller3D, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller3D{
		Actor: Actor3D{
			Position: body.Position(),
			Yaw:      body.Rotation(),
			Facing:   mgl64.QuatRotate(body.Rotation(), up).Rotate(forward),
			AirMoves: cfg.MaxAirMoves,
		},
		body:   body,
		caster: caster,
		cfg:    cfg,
	}, nil
}

func (c *Controller3D) Config() config.Controller3DConfig {
	return c.cfg
}

func (c *Controller3D) SetConfig(cfg config.Controller3DConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	if c.Actor.AirMoves > cfg.MaxAirMoves {
		c.Actor.AirMoves = cfg.MaxAirMoves
	}
	return nil
}

// Rotate turns the actor and its facing by delta radians about +Y. The
// camera rig calls it while an orbit snap is in progress.
func (c *Controller3D) Rotate(delta float64) {
	a := &c.Actor
	a.Yaw += delta
	c.body.SetRotation(a.Yaw)
	a.Facing = flatten(mgl64.QuatRotate(delta, up).Rotate(a.Facing), a.Facing)
}

// SetRotating marks an orbit snap. While it runs, move input stays in the
// frame of the yaw the snap started from.
func (c *Controller3D) SetRotating(rotating bool) {
	a := &c.Actor
	if rotating && !a.Rotating {
		a.inputYaw = a.Yaw
	}
	a.Rotating = rotating
}

// Tick advances the actor by one fixed step of dt seconds.
func (c *Controller3D) Tick(in input.Snapshot, dt float64) {
	a := &c.Actor
	a.Position = c.body.Position()
	a.Yaw = c.body.Rotation()
	c.moved = false

	// Camera-relative input is fixed for the whole tick.
	move := c.worldDirection(in)

	a.Timers.DecrementAll(dt)
	c.latch(in, move)
	c.probe(dt)
	c.gravity(dt)
	c.jump()
	c.jumpCut(in)
	c.airJump()
	c.wallJump()
	c.run(move, dt)
	c.sprint(in)
	c.dash(in, move, dt)
	c.refill()
	c.integrate(dt)

	a.Mode = c.mode()
}

func (c *Controller3D) mode() Mode {
	a := &c.Actor
	return resolveMode(a.Dashing, false, a.OnWall, a.Grounded)
}

// worldDirection maps the move stick onto the ground plane using the yaw.
func (c *Controller3D) worldDirection(in input.Snapshot) mgl64.Vec3 {
	yaw := c.Actor.Yaw
	if c.Actor.Rotating {
		yaw = c.Actor.inputYaw
	}
	v := mgl64.QuatRotate(yaw, up).Rotate(mgl64.Vec3{in.MoveX, 0, in.MoveY})
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}

// flatten projects v onto the ground plane and normalizes it, falling back
// when nothing is left.
func flatten(v, fallback mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	if v.LenSqr() < 1e-12 {
		return fallback
	}
	return v.Normalize()
}

func (c *Controller3D) latch(in input.Snapshot, move mgl64.Vec3) {
	a := &c.Actor
	if in.JumpPressed {
		a.Timers.Set(timer.JumpBuffer, c.cfg.JumpBufferTime)
		a.Timers.Set(timer.AirJumpWindow, c.cfg.AirJumpWindow)
	}
	if move.LenSqr() > 0.01 {
		a.Facing = flatten(move, a.Facing)
	}
}

func axisVector(axis int, sign float64) mgl64.Vec3 {
	var v mgl64.Vec3
	v[axis] = sign
	return v
}

func (c *Controller3D) snap(axis int, value float64) {
	c.Actor.Position[axis] = value
	c.body.MoveTo(c.Actor.Position)
}

func (c *Controller3D) probe(dt float64) {
	a := &c.Actor
	half := c.cfg.HalfExtents
	v := a.Velocity
	skin := c.cfg.ProbeSkin

	a.Grounded, a.Ceiling = false, false
	if hit, ok := c.caster.CastBox(a.Position, half, axisVector(1, -1), sweep(v.Y(), dt, skin)); ok && v.Y() <= 0 {
		a.Grounded = true
		c.snap(1, hit.Point.Y()+half.Y())
		a.Timers.Set(timer.Coyote, c.cfg.CoyoteTime)
	}
	if !a.Grounded {
		if hit, ok := c.caster.CastBox(a.Position, half, up, sweep(v.Y(), dt, skin)); ok && v.Y() >= 0 {
			a.Ceiling = true
			c.snap(1, hit.Point.Y()-half.Y())
			if v.Y() > 0 {
				a.Velocity[1] = 0
				a.Timers.Set(timer.CeilingStick, c.cfg.CeilingStickTime)
			}
		}
	}

	a.OnWall, a.WallDir = false, mgl64.Vec3{}
	if a.Timers.Active(timer.WallJumpLock) {
		return
	}
	touching := false
	for _, axis := range wallAxes {
		reach := sweep(v[axis], dt, skin)
		neg, okNeg := c.caster.CastBox(a.Position, half, axisVector(axis, -1), reach)
		pos, okPos := c.caster.CastBox(a.Position, half, axisVector(axis, 1), reach)

		var hit collision.Contact3D
		var dir float64
		switch {
		case okNeg && okPos:
			if v[axis] > 0 || (v[axis] == 0 && pos.Distance < neg.Distance) {
				hit, dir = pos, 1
			} else {
				hit, dir = neg, -1
			}
		case okNeg:
			hit, dir = neg, -1
		case okPos:
			hit, dir = pos, 1
		default:
			continue
		}
		if v[axis]*dir >= 0 {
			c.snap(axis, hit.Point[axis]-dir*half[axis])
		}
		a.WallDir[axis] = dir
		touching = true
	}

	a.OnWall = touching && !a.Grounded
	if a.OnWall {
		a.lastWallDir = a.WallDir
		a.Timers.Set(timer.WallJumpWindow, c.cfg.WallJumpWindow)
	}
}

func (c *Controller3D) gravity(dt float64) {
	a := &c.Actor
	switch c.mode() {
	case ModeDashing:
		a.Velocity[1] = 0
		return
	case ModeGrounded:
		if a.Velocity.Y() <= 0 {
			a.Velocity[1] = c.cfg.GroundedBias
		}
		return
	}
	if a.Timers.Active(timer.CeilingStick) {
		return
	}
	g := c.cfg.Gravity
	if a.Velocity.Y() < 0 {
		g *= c.cfg.FallMultiplier
	}
	a.Velocity[1] = gomath.Max(a.Velocity.Y()+g*dt, c.cfg.TerminalVelocity)
}

func (c *Controller3D) consumeJump() {
	t := &c.Actor.Timers
	t.Clear(timer.JumpBuffer)
	t.Clear(timer.Coyote)
	t.Clear(timer.AirJumpWindow)
}

func (c *Controller3D) jump() {
	a := &c.Actor
	if a.Dashing || !a.Timers.Active(timer.JumpBuffer) || !a.Timers.Active(timer.Coyote) {
		return
	}
	a.Velocity[1] = c.cfg.JumpPower
	a.Grounded = false
	c.consumeJump()
}

func (c *Controller3D) jumpCut(in input.Snapshot) {
	a := &c.Actor
	if in.JumpReleased && a.Velocity.Y() > 0 {
		a.Velocity[1] *= c.cfg.JumpCutFraction
	}
}

func (c *Controller3D) airJump() {
	a := &c.Actor
	if a.Dashing || a.Grounded || a.AirMoves <= 0 {
		return
	}
	if !a.Timers.Active(timer.AirJumpWindow) || a.Timers.Active(timer.WallJumpWindow) {
		return
	}
	a.Velocity[1] = c.cfg.JumpPower * c.cfg.AirJumpFraction
	a.AirMoves--
	c.consumeJump()
}

// wallJump pushes away from every wall axis touched, keeping the velocity
// along the wall.
func (c *Controller3D) wallJump() {
	a := &c.Actor
	if a.Dashing || a.Grounded {
		return
	}
	if !a.Timers.Active(timer.WallJumpWindow) || !a.Timers.Active(timer.JumpBuffer) {
		return
	}
	for _, axis := range wallAxes {
		if d := a.lastWallDir[axis]; d != 0 {
			a.Velocity[axis] = -d * c.cfg.WallJumpHorizontal
		}
	}
	a.Velocity[1] = c.cfg.WallJumpVertical
	a.Timers.Set(timer.WallJumpLock, c.cfg.WallJumpLockTime)
	a.Timers.Clear(timer.WallJumpWindow)
	a.OnWall, a.WallDir = false, mgl64.Vec3{}
	c.consumeJump()
}

func (c *Controller3D) run(move mgl64.Vec3, dt float64) {
	a := &c.Actor
	if c.mode() == ModeDashing || a.Timers.Active(timer.WallJumpLock) {
		return
	}
	speed := c.cfg.MoveSpeed
	if a.Sprinting {
		speed *= c.cfg.SprintMultiplier
	}
	for _, axis := range wallAxes {
		a.Velocity[axis] = gamemath.Damp(a.Velocity[axis], move[axis]*speed, c.cfg.MovementSmoothing, dt)
		if a.OnWall && a.Velocity[axis]*a.WallDir[axis] > 0 {
			a.Velocity[axis] = 0
		}
	}
}

func (c *Controller3D) sprint(in input.Snapshot) {
	a := &c.Actor
	if in.SprintPressed {
		a.Sprinting = !a.Sprinting
		a.Timers.Set(timer.SprintReset, c.cfg.SprintResetTime)
	}
	if in.HasMove() {
		a.Timers.Set(timer.SprintReset, c.cfg.SprintResetTime)
		return
	}
	if a.Sprinting && !a.Timers.Active(timer.SprintReset) {
		a.Sprinting = false
	}
}

func (c *Controller3D) dash(in input.Snapshot, move mgl64.Vec3, dt float64) {
	a := &c.Actor
	if a.Dashing {
		c.advanceDash(dt)
		return
	}
	if !in.DashPressed || a.Timers.Active(timer.DashCooldown) {
		return
	}
	if !a.Grounded && a.AirMoves <= 0 {
		return
	}

	a.dashDir = a.Facing
	if move.LenSqr() > 0.01 {
		a.dashDir = flatten(move, a.Facing)
	}
	a.dashTravelled = 0
	a.Dashing = true
	a.Velocity = mgl64.Vec3{}
	c.advanceDash(dt)
}

// advanceDash moves at dash speed until the dash distance is covered or a
// box blocks the way.
func (c *Controller3D) advanceDash(dt float64) {
	a := &c.Actor
	step := gomath.Min(c.cfg.DashSpeed*dt, c.cfg.DashDistance-a.dashTravelled)
	c.moved = true

	if hit, ok := c.caster.CastBox(a.Position, c.cfg.HalfExtents, a.dashDir, step); ok {
		travel := gomath.Max(0, hit.Distance)
		a.Position = a.Position.Add(a.dashDir.Mul(travel))
		a.dashTravelled += travel
		c.body.MoveTo(a.Position)
		c.endDash()
		return
	}

	a.Position = a.Position.Add(a.dashDir.Mul(step))
	a.dashTravelled += step
	c.body.MoveTo(a.Position)
	if a.dashTravelled >= c.cfg.DashDistance-1e-9 {
		c.endDash()
	}
}

func (c *Controller3D) endDash() {
	a := &c.Actor
	a.Dashing = false
	a.Velocity[0], a.Velocity[2] = 0, 0
	if !a.Grounded && a.AirMoves > 0 {
		a.AirMoves--
	}
	a.Timers.Set(timer.DashCooldown, c.cfg.DashCooldown)
}

func (c *Controller3D) refill() {
	a := &c.Actor
	if a.Grounded || a.OnWall || a.Timers.Active(timer.WallJumpLock) {
		a.AirMoves = c.cfg.MaxAirMoves
	}
}

func (c *Controller3D) integrate(dt float64) {
	if c.moved {
		return
	}
	a := &c.Actor
	half := c.cfg.HalfExtents

	for axis := 0; axis < 3; axis++ {
		d := a.Velocity[axis] * dt
		if d == 0 {
			continue
		}
		if hit, ok := c.caster.CastBox(a.Position, half, axisVector(axis, gamemath.Sign(d)), gomath.Abs(d)); ok {
			d = gamemath.Sign(d) * gomath.Max(0, hit.Distance)
			if axis != 1 {
				a.Velocity[axis] = 0
			}
		}
		a.Position[axis] += d
	}
	c.body.SetPosition(a.Position)
}
