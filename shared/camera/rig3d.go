package camera

import (
	"github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/gamemath"
	"github.com/automoto/kcc/shared/timer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var up = mgl64.Vec3{0, 1, 0}

// Screen right for each quarter-turn yaw.
var rightAxes = [4]mgl64.Vec3{
	{1, 0, 0},
	{0, 0, -1},
	{-1, 0, 0},
	{0, 0, 1},
}

// Rotatable is turned in lockstep with the camera during an orbit snap.
type Rotatable interface {
	Rotate(delta float64)
	SetRotating(rotating bool)
}

// Rig3D is a third-person orbit camera. A double tap on the look stick
// swings it a quarter turn around the subject.
type Rig3D struct {
	Focus     mgl64.Vec3 // Smoothed look-at point
	Target    mgl64.Vec3 // Dead zone centre
	Shift     mgl64.Vec3
	Yaw       float64
	TargetYaw float64 // Always a multiple of a quarter turn
	Rotating  bool
	Timers    timer.Bank

	cfg      config.Camera3DConfig
	velocity mgl64.Vec3

	tapHeld bool
	lastTap mgl64.Vec2
	tween   *gween.Tween
	fromYaw float64
}

func NewRig3D(cfg config.Camera3DConfig, start mgl64.Vec3, yaw float64) *Rig3D {
	return &Rig3D{
		Focus:     start,
		Target:    start,
		Yaw:       yaw,
		TargetYaw: gamemath.SnapAngle(yaw, gamemath.QuarterTurn),
		cfg:       cfg,
	}
}

func (r *Rig3D) SetConfig(cfg config.Camera3DConfig) {
	r.cfg = cfg
}

// Eye is the camera position: the focus plus the orbit offset turned by yaw.
func (r *Rig3D) Eye() mgl64.Vec3 {
	return r.Focus.Add(mgl64.QuatRotate(r.Yaw, up).Rotate(r.cfg.Offset))
}

// Update follows the subject at p. look is the secondary stick. subject may
// be nil, in which case the camera turns alone.
func (r *Rig3D) Update(p mgl64.Vec3, look mgl64.Vec2, subject Rotatable, dt float64) {
	r.Timers.DecrementAll(dt)
	r.detectTap(look, subject)
	r.advanceRotation(subject, dt)
	r.follow(p)

	right := rightAxes[gamemath.QuarterIndex(r.TargetYaw)]
	shift := right.Mul(look.X() * r.cfg.ShiftDistance)
	for _, axis := range [2]int{0, 2} {
		r.Shift[axis] = gamemath.Damp(r.Shift[axis], shift[axis], r.cfg.ShiftSmoothing, dt)
	}

	goal := r.Target.Add(r.Shift)
	for i := range goal {
		r.Focus[i] = gamemath.SmoothDamp(r.Focus[i], goal[i], &r.velocity[i], r.cfg.FollowSmoothTime, dt)
	}
}

// detectTap registers a tap each time the stick crosses the threshold. Two
// aligned taps inside the window start a snap toward the side tapped.
func (r *Rig3D) detectTap(look mgl64.Vec2, subject Rotatable) {
	mag := look.Len()
	if mag < r.cfg.TapThreshold {
		r.tapHeld = false
		return
	}
	if r.tapHeld {
		return
	}
	r.tapHeld = true

	dir := look.Mul(1 / mag)
	if r.Timers.Active(timer.DoubleTapWindow) && dir.Dot(r.lastTap) > r.cfg.DoubleTapDot {
		r.Timers.Clear(timer.DoubleTapWindow)
		r.startRotation(gamemath.Sign(dir.X()), subject)
		return
	}
	r.lastTap = dir
	r.Timers.Set(timer.DoubleTapWindow, r.cfg.DoubleTapWindow)
}

func (r *Rig3D) startRotation(sign float64, subject Rotatable) {
	if sign == 0 || r.Rotating || r.Timers.Active(timer.RotateCooldown) {
		return
	}
	r.fromYaw = r.Yaw
	r.TargetYaw = gamemath.SnapAngle(r.Yaw, gamemath.QuarterTurn) + sign*gamemath.QuarterTurn
	r.tween = gween.New(0, 1, float32(r.cfg.RotateDuration), ease.InOutCubic)
	r.Rotating = true
	if subject != nil {
		subject.SetRotating(true)
	}
}

// advanceRotation steps the tween and hands the yaw change to the subject.
// The last step lands exactly on the target yaw.
func (r *Rig3D) advanceRotation(subject Rotatable, dt float64) {
	if !r.Rotating {
		return
	}
	f, done := r.tween.Update(float32(dt))
	yaw := r.fromYaw + float64(f)*(r.TargetYaw-r.fromYaw)
	if done {
		yaw = r.TargetYaw
	}
	delta := yaw - r.Yaw
	r.Yaw = yaw
	if subject != nil {
		subject.Rotate(delta)
	}
	if !done {
		return
	}

	r.Rotating = false
	r.tween = nil
	r.Timers.Set(timer.RotateCooldown, r.cfg.RotateCooldown)
	if subject != nil {
		subject.SetRotating(false)
	}
}

// follow drags the dead zone: a horizontal circle and a vertical band.
func (r *Rig3D) follow(p mgl64.Vec3) {
	d := mgl64.Vec3{p.X() - r.Target.X(), 0, p.Z() - r.Target.Z()}
	if l := d.Len(); l > r.cfg.DeadZoneRadius {
		r.Target = r.Target.Add(d.Mul((l - r.cfg.DeadZoneRadius) / l))
	}
	r.Target[1] = deadZone(r.Target.Y(), p.Y(), r.cfg.DeadZoneHeight)
}
