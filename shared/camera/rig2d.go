// Package camera holds the follow cameras that trail a controller.
package camera

import (
	gomath "math"

	"github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Rig2D is a side-view follow camera with a rectangular dead zone and a
// look-ahead shift.
type Rig2D struct {
	Position math.Vec2 // Camera centre
	Target   math.Vec2 // Dead zone centre
	Shift    math.Vec2

	cfg      config.Camera2DConfig
	velocity math.Vec2

	bounded  bool
	min, max math.Vec2
}

func NewRig2D(cfg config.Camera2DConfig, start math.Vec2) *Rig2D {
	return &Rig2D{
		Position: start,
		Target:   start,
		cfg:      cfg,
	}
}

func (r *Rig2D) SetConfig(cfg config.Camera2DConfig) {
	r.cfg = cfg
}

// SetBounds keeps the view inside a level of the given size. A level smaller
// than the view pins the camera to its centre on that axis.
func (r *Rig2D) SetBounds(levelW, levelH, viewW, viewH float64) {
	r.bounded = true
	r.min = math.Vec2{X: viewW / 2, Y: viewH / 2}
	r.max = math.Vec2{X: levelW - viewW/2, Y: levelH - viewH/2}
	if r.max.X < r.min.X {
		r.min.X, r.max.X = levelW/2, levelW/2
	}
	if r.max.Y < r.min.Y {
		r.min.Y, r.max.Y = levelH/2, levelH/2
	}
}

// Update follows the subject at position p. look is the secondary stick.
func (r *Rig2D) Update(p, look math.Vec2, dt float64) {
	r.Target.X = deadZone(r.Target.X, p.X, r.cfg.DeadZone.X)
	r.Target.Y = deadZone(r.Target.Y, p.Y, r.cfg.DeadZone.Y)

	r.Shift.X = gamemath.Damp(r.Shift.X, look.X*r.cfg.ShiftDistance.X, r.cfg.ShiftSmoothing, dt)
	r.Shift.Y = gamemath.Damp(r.Shift.Y, look.Y*r.cfg.ShiftDistance.Y, r.cfg.ShiftSmoothing, dt)

	goal := math.Vec2{X: r.Target.X + r.Shift.X, Y: r.Target.Y + r.Shift.Y}
	if r.bounded {
		goal.X = gomath.Max(r.min.X, gomath.Min(r.max.X, goal.X))
		goal.Y = gomath.Max(r.min.Y, gomath.Min(r.max.Y, goal.Y))
	}

	r.Position.X = gamemath.SmoothDamp(r.Position.X, goal.X, &r.velocity.X, r.cfg.FollowSmoothTime, dt)
	r.Position.Y = gamemath.SmoothDamp(r.Position.Y, goal.Y, &r.velocity.Y, r.cfg.FollowSmoothTime, dt)
}

// deadZone drags target so that p stays within half of it.
func deadZone(target, p, half float64) float64 {
	switch d := p - target; {
	case d > half:
		return p - half
	case d < -half:
		return p + half
	}
	return target
}
