// Package leveldata parses level geometry for both controller variants.
// Coordinates are y-up with the origin at the bottom-left of the map.
package leveldata

import (
	"github.com/automoto/kcc/shared/collision"
	"github.com/go-gl/mathgl/mgl64"
)

// Level2D holds the static collision of a side-view level.
type Level2D struct {
	Name   string
	Solids []Rect
	Spawns []SpawnPoint
	Width  float64
	Height float64
}

// Rect is an axis-aligned solid with (X, Y) at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is where the actor's feet start.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn with the lowest index, or the bottom-centre of
// the map when there is none.
func (l *Level2D) Spawn() SpawnPoint {
	if len(l.Spawns) == 0 {
		return SpawnPoint{X: l.Width / 2, Y: 0}
	}
	best := l.Spawns[0]
	for _, s := range l.Spawns[1:] {
		if s.Index < best.Index {
			best = s
		}
	}
	return best
}

// Level3D holds the static boxes of a third-person level.
type Level3D struct {
	Name  string          `yaml:"name"`
	Spawn mgl64.Vec3      `yaml:"spawn"` // Feet position
	Yaw   float64         `yaml:"yaw"`
	Boxes []collision.Box `yaml:"boxes"`
}
