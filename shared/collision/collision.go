// Package collision answers the directional shape casts the controllers use
// to find ground, ceilings and walls.
package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Direction is a cardinal cast direction. Y points up.
type Direction int

const (
	Down Direction = iota
	Up
	Left  // -X
	Right // +X
	Back  // -Z
	Forward
)

var directionNames = [...]string{"down", "up", "left", "right", "back", "forward"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Axis returns the coordinate index (0 x, 1 y, 2 z) and sign of d.
func (d Direction) Axis() (int, float64) {
	switch d {
	case Down:
		return 1, -1
	case Up:
		return 1, 1
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Back:
		return 2, -1
	}
	return 2, 1
}

// DirectionOf returns the cast direction along axis with the sign of v.
func DirectionOf(axis int, v float64) Direction {
	neg := v < 0
	switch axis {
	case 0:
		if neg {
			return Left
		}
		return Right
	case 1:
		if neg {
			return Down
		}
		return Up
	}
	if neg {
		return Back
	}
	return Forward
}

// Contact2D is the first surface hit by a cast. Point lies on the surface,
// Distance is how far the box can travel before touching it and is
// negative when the box already overlaps the surface.
type Contact2D struct {
	Point    math.Vec2
	Distance float64
	Collider *resolv.Object
}

// Contact3D is the 3D counterpart of Contact2D. Collider indexes the box
// world.
type Contact3D struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Collider int
}

// Caster2D casts an axis-aligned box along a cardinal direction.
type Caster2D interface {
	Cast(center, half math.Vec2, dir Direction, distance float64) (Contact2D, bool)
}

// Caster3D sweeps an axis-aligned box along a unit direction.
type Caster3D interface {
	CastBox(center, half, dir mgl64.Vec3, distance float64) (Contact3D, bool)
}

// Perpendicular overlap smaller than this does not count, so a floor the box
// rests on is never reported as a wall.
const touchSlop = 1e-6
