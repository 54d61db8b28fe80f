package game

import "github.com/go-gl/mathgl/mgl64"

const (
	// puckDamping is applied to the velocity on every LimitSpeed call below max speed
	puckDamping = 0.995

	// Boundary correction constants
	wallPadding          = 0.5
	wallCorrection       = 0.6
	wallBounceDamping    = 0.92
	wallBounceSpeedLimit = 1000.0
)

// Puck is the dynamic disc struck by the paddles
type Puck struct {
	Body     RigidBody
	Radius   float64
	MaxSpeed float64
	Material Material
	Tag      CollisionTag
}

// NewPuck creates a puck at pos
func NewPuck(pos mgl64.Vec2, radius, mass, maxSpeed float64) *Puck {
	return &Puck{
		Body: RigidBody{
			Position: pos,
			Mass:     mass,
			Moment:   MomentForCircle(mass, radius),
			Kind:     Dynamic,
		},
		Radius:   radius,
		MaxSpeed: maxSpeed,
		Material: Material{Elasticity: 0.2, Friction: 10},
		Tag:      TagPuck,
	}
}

// Reset places the puck at pos at rest
func (p *Puck) Reset(pos mgl64.Vec2) {
	p.Body.Position = pos
	p.Body.Angle = 0
	p.Body.Stop()
}

// LimitSpeed clamps the speed to MaxSpeed, or applies table friction when below it
func (p *Puck) LimitSpeed() {
	if p.Body.Speed() > p.MaxSpeed {
		p.Body.Velocity = clampLength(p.Body.Velocity, p.MaxSpeed)
		return
	}
	p.Body.Velocity = p.Body.Velocity.Mul(puckDamping)
}

// KeepInsideRink pushes the puck out of every wall it penetrates and bounces it.
// All walls are visited in order; corners may be corrected by several segments in one call.
// A puck whose center has crossed a wall line is pulled back towards the interior.
func (p *Puck) KeepInsideRink(rink *Rink) {
	for _, w := range rink.walls {
		n, depth, ok := w.Penetration(p.Body.Position, p.Radius+wallPadding)
		if !ok {
			continue
		}
		p.Body.Position = p.Body.Position.Add(n.Mul(depth * wallCorrection))

		// Neighbouring arc pieces overlap the same contact; only the first one
		// that sees the puck moving inward reflects it.
		v := p.Body.Velocity
		vn := v.Dot(n)
		if vn >= 0 {
			continue
		}
		v = v.Sub(n.Mul(2 * vn))
		v = v.Mul(wallBounceDamping)
		p.Body.Velocity = clampLength(v, wallBounceSpeedLimit)
	}
}
