package collision

import (
	gomath "math"

	"github.com/automoto/kcc/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Space2D answers 2D casts against the solid objects of a resolv space.
// resolv only registers objects inside the space bounds, so the space must
// cover the whole level.
type Space2D struct {
	space     *resolv.Space
	probe     *resolv.Object
	tolerance float64
}

// NewSpace2D wraps space. Surfaces overlapped deeper than tolerance are
// ignored by casts.
func NewSpace2D(space *resolv.Space, tolerance float64) *Space2D {
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	return &Space2D{
		space:     space,
		probe:     probe,
		tolerance: tolerance,
	}
}

func (s *Space2D) Space() *resolv.Space {
	return s.space
}

func (s *Space2D) SetTolerance(tolerance float64) {
	s.tolerance = tolerance
}

// AddSolid adds a static box with its min corner at x, y.
func (s *Space2D) AddSolid(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	s.space.Add(obj)
	return obj
}

// Cast moves a box of the given half extents from center along dir and
// returns the nearest solid face within distance.
func (s *Space2D) Cast(center, half math.Vec2, dir Direction, distance float64) (Contact2D, bool) {
	minX, minY := center.X-half.X, center.Y-half.Y
	maxX, maxY := center.X+half.X, center.Y+half.Y

	// The broadphase object covers the whole sweep, since Check only looks
	// at the cells under the destination. resolv takes the far cell from
	// X+W-1, so the far edges get one unit of padding to reach faces lying
	// on a cell boundary.
	x0, y0, x1, y1 := minX, minY, maxX+1, maxY+1
	switch dir {
	case Down:
		y0 -= distance
	case Up:
		y1 += distance
	case Left:
		x0 -= distance
	case Right:
		x1 += distance
	default:
		return Contact2D{}, false
	}
	s.probe.X, s.probe.Y = x0, y0
	s.probe.W, s.probe.H = x1-x0, y1-y0
	s.probe.Update()

	check := s.probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return Contact2D{}, false
	}

	best := Contact2D{Distance: gomath.Inf(1)}
	found := false
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		var gap float64
		var point math.Vec2
		switch dir {
		case Down:
			if !overlaps(minX, maxX, o.X, o.X+o.W) {
				continue
			}
			surface := o.Y + o.H
			gap = minY - surface
			point = math.Vec2{X: clamp(center.X, o.X, o.X+o.W), Y: surface}
		case Up:
			if !overlaps(minX, maxX, o.X, o.X+o.W) {
				continue
			}
			gap = o.Y - maxY
			point = math.Vec2{X: clamp(center.X, o.X, o.X+o.W), Y: o.Y}
		case Left:
			if !overlaps(minY, maxY, o.Y, o.Y+o.H) {
				continue
			}
			surface := o.X + o.W
			gap = minX - surface
			point = math.Vec2{X: surface, Y: clamp(center.Y, o.Y, o.Y+o.H)}
		case Right:
			if !overlaps(minY, maxY, o.Y, o.Y+o.H) {
				continue
			}
			gap = o.X - maxX
			point = math.Vec2{X: o.X, Y: clamp(center.Y, o.Y, o.Y+o.H)}
		}
		if gap < -s.tolerance || gap > distance {
			continue
		}
		if gap < best.Distance {
			best = Contact2D{Point: point, Distance: gap, Collider: o}
			found = true
		}
	}
	return best, found
}

func overlaps(a0, a1, b0, b1 float64) bool {
	return a0 < b1-touchSlop && b0 < a1-touchSlop
}

func clamp(v, lo, hi float64) float64 {
	return gomath.Max(lo, gomath.Min(hi, v))
}

// ObjectBody drives a resolv object by its centre.
type ObjectBody struct {
	Object *resolv.Object
}

func (b ObjectBody) Position() math.Vec2 {
	o := b.Object
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

func (b ObjectBody) SetPosition(p math.Vec2) {
	o := b.Object
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

// MoveTo teleports the object. resolv has no interpolation state, so this is
// the same as SetPosition.
func (b ObjectBody) MoveTo(p math.Vec2) {
	b.SetPosition(p)
}
