package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestWorld() *BoxWorld {
	w := NewBoxWorld(0.1)
	w.Add(Box{Min: mgl64.Vec3{-10, -1, -10}, Max: mgl64.Vec3{10, 0, 10}}) // ground, top y=0
	w.Add(Box{Min: mgl64.Vec3{3, 0, -5}, Max: mgl64.Vec3{4, 5, 5}})       // wall facing -X at x=3
	return w
}

var half3 = mgl64.Vec3{0.5, 1, 0.5}

func TestBoxWorldCast(t *testing.T) {
	w := newTestWorld()
	tests := []struct {
		name     string
		center   mgl64.Vec3
		dir      mgl64.Vec3
		distance float64
		hit      bool
		collider int
		gap      float64
		normal   mgl64.Vec3
	}{
		{"ground below", mgl64.Vec3{0, 1.5, 0}, mgl64.Vec3{0, -1, 0}, 1, true, 0, 0.5, mgl64.Vec3{0, 1, 0}},
		{"ground too far", mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -1, 0}, 1, false, -1, 0, mgl64.Vec3{}},
		{"wall ahead", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, 5, true, 1, 2.5, mgl64.Vec3{-1, 0, 0}},
		{"floor is not a wall", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-1, 0, 0}, 5, false, -1, 0, mgl64.Vec3{}},
		{"shallow overlap", mgl64.Vec3{0, 0.95, 0}, mgl64.Vec3{0, -1, 0}, 0.01, true, 0, -0.05, mgl64.Vec3{0, 1, 0}},
		{"deep overlap ignored", mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, -1, 0}, 0.01, false, -1, 0, mgl64.Vec3{}},
		{"moving away from touching wall", mgl64.Vec3{2.5, 1, 0}, mgl64.Vec3{-1, 0, 0}, 1, false, -1, 0, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := w.CastBox(tt.center, half3, tt.dir, tt.distance)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v (contact %+v)", ok, tt.hit, c)
			}
			if !ok {
				return
			}
			if c.Collider != tt.collider {
				t.Errorf("collider = %d, want %d", c.Collider, tt.collider)
			}
			if math.Abs(c.Distance-tt.gap) > 1e-9 {
				t.Errorf("distance = %v, want %v", c.Distance, tt.gap)
			}
			if c.Normal != tt.normal {
				t.Errorf("normal = %v, want %v", c.Normal, tt.normal)
			}
		})
	}
}

func TestBoxWorldContactPointOnSurface(t *testing.T) {
	w := newTestWorld()
	c, ok := w.CastBox(mgl64.Vec3{0, 1, 0}, half3, mgl64.Vec3{1, 0, 0}, 5)
	if !ok {
		t.Fatal("no hit")
	}
	if math.Abs(c.Point.X()-3) > 1e-9 {
		t.Errorf("point = %v, want x=3", c.Point)
	}
}

func TestBoxWorldDiagonalSweep(t *testing.T) {
	w := newTestWorld()
	dir := mgl64.Vec3{1, 0, 1}.Normalize()
	c, ok := w.CastBox(mgl64.Vec3{0, 1, 0}, half3, dir, 10)
	if !ok || c.Collider != 1 {
		t.Fatalf("contact = %+v, %v", c, ok)
	}
	want := 2.5 * math.Sqrt2
	if math.Abs(c.Distance-want) > 1e-9 {
		t.Errorf("distance = %v, want %v", c.Distance, want)
	}
}

func TestDirectionAxis(t *testing.T) {
	for _, d := range []Direction{Down, Up, Left, Right, Back, Forward} {
		axis, sign := d.Axis()
		if DirectionOf(axis, sign) != d {
			t.Errorf("%s does not round trip", d)
		}
	}
}
