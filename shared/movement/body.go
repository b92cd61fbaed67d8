package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/features/math"
)

// Body2D is the kinematic body a 2D controller moves. SetPosition is used
// for integrated motion, MoveTo for snaps and dashes.
type Body2D interface {
	Position() math.Vec2
	SetPosition(p math.Vec2)
	MoveTo(p math.Vec2)
}

// Body3D is the kinematic body a 3D controller moves. Rotation is yaw in
// radians about +Y.
type Body3D interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	MoveTo(p mgl64.Vec3)
	Rotation() float64
	SetRotation(yaw float64)
}

// PointBody2D is a Body2D with no engine behind it.
type PointBody2D struct {
	Pos math.Vec2
}

func (b *PointBody2D) Position() math.Vec2     { return b.Pos }
func (b *PointBody2D) SetPosition(p math.Vec2) { b.Pos = p }
func (b *PointBody2D) MoveTo(p math.Vec2)      { b.Pos = p }

// PointBody3D is a Body3D with no engine behind it.
type PointBody3D struct {
	Pos mgl64.Vec3
	Yaw float64
}

func (b *PointBody3D) Position() mgl64.Vec3     { return b.Pos }
func (b *PointBody3D) SetPosition(p mgl64.Vec3) { b.Pos = p }
func (b *PointBody3D) MoveTo(p mgl64.Vec3)      { b.Pos = p }
func (b *PointBody3D) Rotation() float64        { return b.Yaw }
func (b *PointBody3D) SetRotation(yaw float64)  { b.Yaw = yaw }
