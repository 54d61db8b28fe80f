package game

import "github.com/go-gl/mathgl/mgl64"

// MaterialResponse is the elasticity and friction used for one paddle/puck contact
type MaterialResponse struct {
	Elasticity float64
	Friction   float64
}

// ContactTuning maps relative impact speed to a contact response
type ContactTuning struct {
	// Below CatchSpeed the paddle traps the puck
	CatchSpeed float64
	// Below SoftSpeed the puck gets a soft bounce
	SoftSpeed float64

	CatchFriction  float64
	SoftElasticity float64
	FirmElasticity float64

	// DefaultFriction is used by soft and firm contacts
	DefaultFriction float64
}

// NewContactTuning returns the standard response bands for a puck and paddle pair
func NewContactTuning(puck Material, paddle Material) ContactTuning {
	return ContactTuning{
		CatchSpeed:      100,
		SoftSpeed:       200,
		CatchFriction:   1,
		SoftElasticity:  0.2,
		FirmElasticity:  0.3,
		DefaultFriction: puck.Friction * paddle.Friction,
	}
}

// Classify picks the response for the given relative speed
func (t ContactTuning) Classify(relativeSpeed float64) MaterialResponse {
	switch {
	case relativeSpeed < t.CatchSpeed:
		return MaterialResponse{Elasticity: 0, Friction: t.CatchFriction}
	case relativeSpeed < t.SoftSpeed:
		return MaterialResponse{Elasticity: t.SoftElasticity, Friction: t.DefaultFriction}
	default:
		return MaterialResponse{Elasticity: t.FirmElasticity, Friction: t.DefaultFriction}
	}
}

// ContactFilter reports whether the paddle may touch the puck at all
func ContactFilter(paddle *Paddle) bool {
	return !paddle.Ghost()
}

// PaddleContact describes an overlap between the puck and a paddle
type PaddleContact struct {
	Normal        mgl64.Vec2 // from paddle to puck
	Depth         float64
	RelativeSpeed float64
}

// FindPaddleContact returns the contact between puck and paddle, if they overlap
func FindPaddleContact(puck *Puck, paddle *Paddle) (PaddleContact, bool) {
	offset := puck.Body.Position.Sub(paddle.Body.Position)
	dist := offset.Len()
	reach := puck.Radius + paddle.Radius
	if dist >= reach {
		return PaddleContact{}, false
	}

	normal := mgl64.Vec2{1, 0}
	if dist > 0 {
		normal = offset.Mul(1 / dist)
	}
	return PaddleContact{
		Normal:        normal,
		Depth:         reach - dist,
		RelativeSpeed: puck.Body.Velocity.Sub(paddle.Body.Velocity).Len(),
	}, true
}

// ResolvePaddleContact separates the puck from the paddle and applies the contact impulse.
// The paddle is kinematic and keeps its velocity. The puck leaves no faster than its
// MaxSpeed, so a single substep never carries it across a wall.
func ResolvePaddleContact(puck *Puck, paddle *Paddle, c PaddleContact, r MaterialResponse) {
	puck.Body.Position = puck.Body.Position.Add(c.Normal.Mul(c.Depth))

	rel := puck.Body.Velocity.Sub(paddle.Body.Velocity)
	vn := rel.Dot(c.Normal)
	if vn >= 0 {
		return
	}

	jn := -(1 + r.Elasticity) * vn
	rel = rel.Add(c.Normal.Mul(jn))

	tangent := rel.Sub(c.Normal.Mul(rel.Dot(c.Normal)))
	if vt := tangent.Len(); vt > 0 {
		jt := min(vt, r.Friction*jn)
		rel = rel.Sub(tangent.Mul(jt / vt))
	}

	puck.Body.Velocity = clampLength(paddle.Body.Velocity.Add(rel), puck.MaxSpeed)
}
