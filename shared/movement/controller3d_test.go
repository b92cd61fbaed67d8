package movement

import (
	gomath "math"
	"testing"

	"github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/collision"
	"github.com/automoto/kcc/shared/input"
	"github.com/automoto/kcc/shared/timer"
	"github.com/go-gl/mathgl/mgl64"
)

// Resting height of the default 3D actor on the test ground.
const groundY = 0.9

func testWorld(boxes ...collision.Box) *collision.BoxWorld {
	w := collision.NewBoxWorld(config.Controller3D.SnapTolerance)
	w.Add(collision.Box{Min: mgl64.Vec3{-50, -1, -50}, Max: mgl64.Vec3{50, 0, 50}})
	for _, b := range boxes {
		w.Add(b)
	}
	return w
}

func newActor3D(t *testing.T, world collision.Caster3D, pos mgl64.Vec3, yaw float64) (*Controller3D, *PointBody3D) {
	t.Helper()
	body := &PointBody3D{Pos: pos, Yaw: yaw}
	c, err := NewController3D(body, world, config.Defaults().Controller3D)
	if err != nil {
		t.Fatalf("NewController3D: %v", err)
	}
	return c, body
}

func idle3(c *Controller3D, ticks int) {
	for i := 0; i < ticks; i++ {
		c.Tick(input.Snapshot{}, dt)
	}
}

func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

func TestFacingFollowsYaw(t *testing.T) {
	tests := []struct {
		yaw  float64
		want mgl64.Vec3
	}{
		{0, mgl64.Vec3{0, 0, 1}},
		{gomath.Pi / 2, mgl64.Vec3{1, 0, 0}},
		{gomath.Pi, mgl64.Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		c, _ := newActor3D(t, testWorld(), mgl64.Vec3{0, groundY, 0}, tt.yaw)
		if !vecNear(c.Actor.Facing, tt.want, 1e-9) {
			t.Errorf("yaw %v: facing = %v, want %v", tt.yaw, c.Actor.Facing, tt.want)
		}
	}
}

func TestGroundAndJump3D(t *testing.T) {
	c, body := newActor3D(t, testWorld(), mgl64.Vec3{0, groundY + 0.05, 0}, 0)
	c.Actor.Velocity[1] = -6
	idle3(c, 1)
	if !c.Actor.Grounded || c.Actor.Velocity.Y() != 0 {
		t.Fatalf("grounded = %v v.y = %v", c.Actor.Grounded, c.Actor.Velocity.Y())
	}
	if gomath.Abs(body.Pos.Y()-groundY) > 1e-9 {
		t.Errorf("y = %v, want %v", body.Pos.Y(), groundY)
	}

	c.Tick(input.Snapshot{JumpPressed: true, JumpHeld: true}, dt)
	if c.Actor.Velocity.Y() != c.Config().JumpPower {
		t.Errorf("v.y = %v after jump", c.Actor.Velocity.Y())
	}
}

func TestCameraRelativeMovement(t *testing.T) {
	c, _ := newActor3D(t, testWorld(), mgl64.Vec3{0, groundY, 0}, gomath.Pi/2)
	for i := 0; i < 60; i++ {
		c.Tick(input.Snapshot{MoveY: 1}, dt)
	}
	v := c.Actor.Velocity
	if gomath.Abs(v.X()-c.Config().MoveSpeed) > 1e-3 || gomath.Abs(v.Z()) > 1e-9 {
		t.Errorf("velocity = %v, want +X at move speed", v)
	}
	if !vecNear(c.Actor.Facing, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("facing = %v", c.Actor.Facing)
	}
}

func TestDash3DCoversDistance(t *testing.T) {
	c, body := newActor3D(t, testWorld(), mgl64.Vec3{0, groundY, 0}, 0)
	cfg := c.Config()
	idle3(c, 1)
	start := body.Pos

	c.Tick(input.Snapshot{MoveY: 1, DashPressed: true}, dt)
	if !c.Actor.Dashing || c.Actor.Mode != ModeDashing {
		t.Fatal("dash did not start")
	}
	for i := 0; i < 60 && c.Actor.Dashing; i++ {
		c.Tick(input.Snapshot{MoveY: 1}, dt)
	}
	if c.Actor.Dashing {
		t.Fatal("dash never ended")
	}
	moved := body.Pos.Sub(start)
	if gomath.Abs(moved.Z()-cfg.DashDistance) > 1e-9 || gomath.Abs(moved.X()) > 1e-9 {
		t.Errorf("displacement = %v, want %v along +Z", moved, cfg.DashDistance)
	}
	if c.Actor.Timers.Remaining(timer.DashCooldown) != cfg.DashCooldown {
		t.Errorf("cooldown = %v", c.Actor.Timers.Remaining(timer.DashCooldown))
	}
	if c.Actor.Velocity.X() != 0 || c.Actor.Velocity.Z() != 0 {
		t.Errorf("horizontal velocity %v after dash", c.Actor.Velocity)
	}
	if c.Actor.AirMoves != cfg.MaxAirMoves {
		t.Errorf("ground dash spent budget")
	}
}

func TestDash3DStopsFlush(t *testing.T) {
	wall := collision.Box{Min: mgl64.Vec3{-5, 0, 2}, Max: mgl64.Vec3{5, 3, 3}}
	c, body := newActor3D(t, testWorld(wall), mgl64.Vec3{0, groundY, 0}, 0)
	idle3(c, 1)

	c.Tick(input.Snapshot{DashPressed: true}, dt)
	for i := 0; i < 60 && c.Actor.Dashing; i++ {
		idle3(c, 1)
	}
	if c.Actor.Dashing {
		t.Fatal("dash never ended")
	}
	if gomath.Abs(body.Pos.Z()-1.6) > 1e-9 {
		t.Errorf("z = %v, want flush at 1.6", body.Pos.Z())
	}
	if !c.Actor.Timers.Active(timer.DashCooldown) {
		t.Error("blocked dash did not start cooldown")
	}
}

func TestWallBlocksRunning3D(t *testing.T) {
	wall := collision.Box{Min: mgl64.Vec3{1, 0, -5}, Max: mgl64.Vec3{2, 5, 5}}
	c, body := newActor3D(t, testWorld(wall), mgl64.Vec3{0, groundY, 0}, 0)
	for i := 0; i < 120; i++ {
		c.Tick(input.Snapshot{MoveX: 1}, dt)
	}
	if gomath.Abs(body.Pos.X()-0.6) > 1e-9 {
		t.Errorf("x = %v, want flush at 0.6", body.Pos.X())
	}
	if c.Actor.OnWall || !c.Actor.Grounded {
		t.Errorf("onWall = %v grounded = %v", c.Actor.OnWall, c.Actor.Grounded)
	}
	if c.Actor.WallDir.X() != 1 {
		t.Errorf("wallDir = %v", c.Actor.WallDir)
	}
}

func TestWallJump3D(t *testing.T) {
	wall := collision.Box{Min: mgl64.Vec3{1, 0, -5}, Max: mgl64.Vec3{2, 5, 5}}
	c, _ := newActor3D(t, testWorld(wall), mgl64.Vec3{0.6, 3, 0}, 0)
	cfg := c.Config()
	idle3(c, 1)
	if !c.Actor.OnWall || c.Actor.WallDir != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("onWall = %v wallDir = %v", c.Actor.OnWall, c.Actor.WallDir)
	}

	c.Actor.AirMoves = 0
	c.Tick(input.Snapshot{JumpPressed: true, JumpHeld: true}, dt)
	v := c.Actor.Velocity
	if v.X() != -cfg.WallJumpHorizontal || v.Y() != cfg.WallJumpVertical || v.Z() != 0 {
		t.Fatalf("velocity = %v after wall jump", v)
	}
	if c.Actor.AirMoves != cfg.MaxAirMoves {
		t.Errorf("budget = %d, want refill during wall-jump lock", c.Actor.AirMoves)
	}
	idle3(c, 1)
	if c.Actor.OnWall {
		t.Error("on wall during lock")
	}
}

func TestAirJumpBudget3D(t *testing.T) {
	c, _ := newActor3D(t, testWorld(), mgl64.Vec3{0, 5, 0}, 0)
	cfg := c.Config()
	c.Tick(input.Snapshot{JumpPressed: true, JumpHeld: true}, dt)
	if c.Actor.AirMoves != cfg.MaxAirMoves-1 {
		t.Fatalf("budget = %d after air jump", c.Actor.AirMoves)
	}
	if c.Actor.Velocity.Y() != cfg.JumpPower*cfg.AirJumpFraction {
		t.Errorf("v.y = %v", c.Actor.Velocity.Y())
	}
	for i := 0; i < 240 && !c.Actor.Grounded; i++ {
		idle3(c, 1)
	}
	if !c.Actor.Grounded || c.Actor.AirMoves != cfg.MaxAirMoves {
		t.Errorf("grounded = %v budget = %d", c.Actor.Grounded, c.Actor.AirMoves)
	}
}

func TestRotate(t *testing.T) {
	c, body := newActor3D(t, testWorld(), mgl64.Vec3{0, groundY, 0}, 0)
	c.SetRotating(true)
	c.Rotate(gomath.Pi / 4)
	c.Rotate(gomath.Pi / 4)
	c.SetRotating(false)
	if gomath.Abs(body.Yaw-gomath.Pi/2) > 1e-12 {
		t.Errorf("yaw = %v", body.Yaw)
	}
	if !vecNear(c.Actor.Facing, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("facing = %v", c.Actor.Facing)
	}
	if c.Actor.Rotating {
		t.Error("still rotating")
	}

	// Input after the turn is read in the new frame.
	for i := 0; i < 30; i++ {
		c.Tick(input.Snapshot{MoveY: 1}, dt)
	}
	if c.Actor.Velocity.X() <= 0 || gomath.Abs(c.Actor.Velocity.Z()) > 1e-9 {
		t.Errorf("velocity = %v after turning", c.Actor.Velocity)
	}
}

func TestInputFrameHeldWhileRotating(t *testing.T) {
	c, _ := newActor3D(t, testWorld(), mgl64.Vec3{0, groundY, 0}, 0)
	c.SetRotating(true)
	c.Rotate(gomath.Pi / 4)
	for i := 0; i < 30; i++ {
		c.Tick(input.Snapshot{MoveY: 1}, dt)
	}
	v := c.Actor.Velocity
	if v.Z() <= 0 || gomath.Abs(v.X()) > 1e-9 {
		t.Errorf("velocity = %v mid-turn, want along the starting forward", v)
	}

	c.Rotate(gomath.Pi / 4)
	c.SetRotating(false)
	for i := 0; i < 120; i++ {
		c.Tick(input.Snapshot{MoveY: 1}, dt)
	}
	v = c.Actor.Velocity
	if v.X() <= 0 || gomath.Abs(v.Z()) > 1e-6 {
		t.Errorf("velocity = %v after the turn, want along +X", v)
	}
}
