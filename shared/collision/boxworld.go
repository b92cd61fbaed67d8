package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is a static axis-aligned box.
type Box struct {
	Min mgl64.Vec3 `yaml:"min"`
	Max mgl64.Vec3 `yaml:"max"`
}

func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// BoxWorld is a static list of boxes swept against with a slab test.
type BoxWorld struct {
	boxes     []Box
	tolerance float64
}

// NewBoxWorld returns an empty world. Boxes overlapped deeper than
// tolerance are ignored by casts.
func NewBoxWorld(tolerance float64) *BoxWorld {
	return &BoxWorld{tolerance: tolerance}
}

func (w *BoxWorld) SetTolerance(tolerance float64) {
	w.tolerance = tolerance
}

// Add inserts b and returns its collider index.
func (w *BoxWorld) Add(b Box) int {
	w.boxes = append(w.boxes, b)
	return len(w.boxes) - 1
}

func (w *BoxWorld) Boxes() []Box {
	return w.boxes
}

// CastBox sweeps a box of half extents half from center along the unit
// vector dir and returns the first box hit within distance.
func (w *BoxWorld) CastBox(center, half, dir mgl64.Vec3, distance float64) (Contact3D, bool) {
	best := Contact3D{Distance: math.Inf(1), Collider: -1}
	found := false

	for i, b := range w.boxes {
		// Minkowski sum: a point sweep against the box grown by half.
		lo := b.Min.Sub(half)
		hi := b.Max.Add(half)

		tEnter, tExit := math.Inf(-1), math.Inf(1)
		enterAxis := -1
		hit := true
		for axis := 0; axis < 3; axis++ {
			o, d := center[axis], dir[axis]
			if math.Abs(d) < 1e-12 {
				if o <= lo[axis]+touchSlop || o >= hi[axis]-touchSlop {
					hit = false
					break
				}
				continue
			}
			t0 := (lo[axis] - o) / d
			t1 := (hi[axis] - o) / d
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			if t0 > tEnter {
				tEnter = t0
				enterAxis = axis
			}
			if t1 < tExit {
				tExit = t1
			}
		}
		if !hit || enterAxis < 0 || tEnter > tExit || tExit <= 0 {
			continue
		}
		if tEnter < -w.tolerance || tEnter > distance {
			continue
		}
		if tEnter >= best.Distance {
			continue
		}

		s := math.Copysign(1, dir[enterAxis])
		var normal mgl64.Vec3
		normal[enterAxis] = -s
		point := center.Add(dir.Mul(tEnter))
		point[enterAxis] += s * half[enterAxis]

		best = Contact3D{Point: point, Normal: normal, Distance: tEnter, Collider: i}
		found = true
	}
	return best, found
}
