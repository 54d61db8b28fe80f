package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Wall material shared by every boundary segment
var boundaryMaterial = Material{Elasticity: 0.95, Friction: 0.01}

// Segment is a capsule-shaped wall piece from A to B with the given radius.
// Normal is the unit normal facing the rink interior (zero for a degenerate piece).
type Segment struct {
	A, B     mgl64.Vec2
	Normal   mgl64.Vec2
	Radius   float64
	Material Material
	Tag      CollisionTag
}

// Length returns the distance between the endpoints
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Len()
}

// Penetration reports how far a circle at p must move along the returned
// normal to clear the wall. A center on or past the wall line is pushed back
// through it, so the normal always points into the rink.
func (s Segment) Penetration(p mgl64.Vec2, radius float64) (normal mgl64.Vec2, depth float64, ok bool) {
	closest, ok := ClosestPointOnSegment(p, s.A, s.B)
	if !ok {
		return mgl64.Vec2{}, 0, false
	}
	offset := p.Sub(closest)
	dist := offset.Len()
	reach := radius + s.Radius
	if dist >= reach {
		return mgl64.Vec2{}, 0, false
	}
	if offset.Dot(s.Normal) <= 0 {
		return s.Normal, reach + dist, true
	}
	return offset.Mul(1 / dist), reach - dist, true
}

// Rink is the closed, immutable boundary of the playing surface
type Rink struct {
	rect         Rect
	cornerRadius float64
	thickness    float64
	walls        []Segment
}

// corner describes one rounded corner: its arc center and angular range
type corner struct {
	center     mgl64.Vec2
	start, end float64
	from, to   mgl64.Vec2
}

// BuildRink builds the boundary of a rounded rectangle.
// The wall list holds the top, right, bottom and left straight walls followed by
// the top-left, top-right, bottom-right and bottom-left arcs, each arc split into
// arcSegments pieces. Arc endpoints coincide with the straight wall endpoints.
func BuildRink(rect Rect, cornerRadius, thickness float64, arcSegments int) *Rink {
	if arcSegments < 1 {
		arcSegments = 1
	}
	l, r, t, b := rect.Left(), rect.Right(), rect.Top(), rect.Bottom()
	cr := cornerRadius

	straight := [][2]mgl64.Vec2{
		{{l + cr, t}, {r - cr, t}},
		{{r, t + cr}, {r, b - cr}},
		{{r - cr, b}, {l + cr, b}},
		{{l, b - cr}, {l, t + cr}},
	}

	corners := []corner{
		{center: mgl64.Vec2{l + cr, t + cr}, start: math.Pi, end: 1.5 * math.Pi, from: straight[3][1], to: straight[0][0]},
		{center: mgl64.Vec2{r - cr, t + cr}, start: 1.5 * math.Pi, end: 2 * math.Pi, from: straight[0][1], to: straight[1][0]},
		{center: mgl64.Vec2{r - cr, b - cr}, start: 0, end: 0.5 * math.Pi, from: straight[1][1], to: straight[2][0]},
		{center: mgl64.Vec2{l + cr, b - cr}, start: 0.5 * math.Pi, end: math.Pi, from: straight[2][1], to: straight[3][0]},
	}

	walls := make([]Segment, 0, 4+4*arcSegments)
	for _, s := range straight {
		walls = append(walls, newWall(s[0], s[1], thickness))
	}

	for _, c := range corners {
		prev := c.from
		for i := 1; i <= arcSegments; i++ {
			var p mgl64.Vec2
			if i == arcSegments {
				p = c.to
			} else {
				angle := c.start + (c.end-c.start)*float64(i)/float64(arcSegments)
				p = c.center.Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(cr))
			}
			walls = append(walls, newWall(prev, p, thickness))
			prev = p
		}
	}

	return &Rink{
		rect:         rect,
		cornerRadius: cornerRadius,
		thickness:    thickness,
		walls:        walls,
	}
}

// newWall builds a boundary piece. The loop runs clockwise on screen (y down),
// so the interior lies to the right of A->B.
func newWall(a, b mgl64.Vec2, thickness float64) Segment {
	var normal mgl64.Vec2
	if d := b.Sub(a); d.Len() > 0 {
		normal = mgl64.Vec2{-d.Y(), d.X()}.Normalize()
	}
	return Segment{A: a, B: b, Normal: normal, Radius: thickness, Material: boundaryMaterial, Tag: TagBoundary}
}

// Walls returns a copy of the ordered wall list
func (r *Rink) Walls() []Segment {
	out := make([]Segment, len(r.walls))
	copy(out, r.walls)
	return out
}

// Rect returns the bounding rectangle
func (r *Rink) Rect() Rect { return r.rect }

// Center returns the rink centroid
func (r *Rink) Center() mgl64.Vec2 { return r.rect.Center() }

// Thickness returns the wall capsule radius
func (r *Rink) Thickness() float64 { return r.thickness }

// CornerRadius returns the radius of the rounded corners
func (r *Rink) CornerRadius() float64 { return r.cornerRadius }

// Contains reports whether p lies inside the rounded rectangle
func (r *Rink) Contains(p mgl64.Vec2) bool {
	rc := r.rect
	if p.X() < rc.Left() || p.X() > rc.Right() || p.Y() < rc.Top() || p.Y() > rc.Bottom() {
		return false
	}
	cr := r.cornerRadius
	inner := Rect{X: rc.X + cr, Y: rc.Y + cr, W: rc.W - 2*cr, H: rc.H - 2*cr}
	nearest := inner.Clamp(p)
	if p.X() >= inner.Left() && p.X() <= inner.Right() || p.Y() >= inner.Top() && p.Y() <= inner.Bottom() {
		return true
	}
	return p.Sub(nearest).Len() <= cr
}
