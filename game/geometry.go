package game

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle with its origin at the top-left corner (screen coordinates, y down)
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rectangle's centroid
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Inset returns the rectangle shrunk by d on every side
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Clamp returns p clamped into the rectangle
func (r Rect) Clamp(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(p.X(), r.Left(), r.Right()),
		mgl64.Clamp(p.Y(), r.Top(), r.Bottom()),
	}
}

// ClosestPointOnSegment projects p onto segment AB, clamped to the segment.
// ok is false for a zero-length segment, which callers treat as "no contact".
func ClosestPointOnSegment(p, a, b mgl64.Vec2) (closest mgl64.Vec2, ok bool) {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 == 0 {
		return mgl64.Vec2{}, false
	}
	t := mgl64.Clamp(p.Sub(a).Dot(ab)/abLen2, 0, 1)
	return a.Add(ab.Mul(t)), true
}

// clampLength scales v down to limit if it is longer
func clampLength(v mgl64.Vec2, limit float64) mgl64.Vec2 {
	speed := v.Len()
	if speed > limit && speed > 0 {
		return v.Mul(limit / speed)
	}
	return v
}
