package leveldata

import (
	"github.com/automoto/kcc/shared/collision"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultLevel2D is a walled room with ledges and a climbing shaft, used
// when no map is given.
func DefaultLevel2D() *Level2D {
	return &Level2D{
		Name:   "default",
		Width:  960,
		Height: 360,
		Solids: []Rect{
			{X: 0, Y: 0, W: 960, H: 16},    // floor
			{X: 0, Y: 16, W: 16, H: 344},   // left wall
			{X: 944, Y: 16, W: 16, H: 344}, // right wall
			{X: 0, Y: 344, W: 960, H: 16},  // ceiling
			{X: 160, Y: 80, W: 96, H: 16},
			{X: 320, Y: 144, W: 96, H: 16},
			{X: 560, Y: 16, W: 16, H: 240}, // shaft
			{X: 640, Y: 96, W: 16, H: 248},
			{X: 760, Y: 112, W: 120, H: 16},
		},
		Spawns: []SpawnPoint{{X: 64, Y: 16}},
	}
}

// DefaultLevel3D is a floor with a few steps and a pair of walls for wall
// jumping.
func DefaultLevel3D() *Level3D {
	box := func(min, max mgl64.Vec3) collision.Box {
		return collision.Box{Min: min, Max: max}
	}
	return &Level3D{
		Name:  "default",
		Spawn: mgl64.Vec3{0, 0, 0},
		Boxes: []collision.Box{
			box(mgl64.Vec3{-30, -1, -30}, mgl64.Vec3{30, 0, 30}),
			box(mgl64.Vec3{4, 0, 4}, mgl64.Vec3{8, 1, 8}),
			box(mgl64.Vec3{8, 0, 4}, mgl64.Vec3{12, 2, 8}),
			box(mgl64.Vec3{-10, 0, 10}, mgl64.Vec3{-9, 8, 20}),
			box(mgl64.Vec3{-6, 0, 10}, mgl64.Vec3{-5, 8, 20}),
			box(mgl64.Vec3{-30, 0, 30}, mgl64.Vec3{30, 6, 31}),
		},
	}
}
