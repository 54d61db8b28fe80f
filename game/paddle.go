package game

import "github.com/go-gl/mathgl/mgl64"

// CollisionMode says whether a paddle takes part in contacts
type CollisionMode int

const (
	// CollisionActive paddles strike the puck
	CollisionActive CollisionMode = iota
	// CollisionGhost paddles are repositioned without touching anything
	CollisionGhost
)

func (m CollisionMode) String() string {
	if m == CollisionGhost {
		return "ghost"
	}
	return "active"
}

// Paddle is a kinematic striker steered towards a target every frame
type Paddle struct {
	Index     int
	Side      Team
	Body      RigidBody
	Radius    float64
	Material  Material
	Tag       CollisionTag
	Collision CollisionMode
}

// NewPaddle creates a paddle for the given side at pos
func NewPaddle(index int, side Team, pos mgl64.Vec2, radius, mass float64) *Paddle {
	return &Paddle{
		Index: index,
		Side:  side,
		Body: RigidBody{
			Position: pos,
			Mass:     mass,
			Kind:     Kinematic,
		},
		Radius:    radius,
		Material:  Material{Elasticity: 0.2, Friction: 3},
		Tag:       TagPaddle,
		Collision: CollisionActive,
	}
}

// Ghost reports whether contacts are disabled
func (p *Paddle) Ghost() bool {
	return p.Collision == CollisionGhost
}

// SetGhost switches contacts off (true) or back on (false)
func (p *Paddle) SetGhost(ghost bool) {
	if ghost {
		p.Collision = CollisionGhost
	} else {
		p.Collision = CollisionActive
	}
}

// Snap teleports the paddle to pos at rest
func (p *Paddle) Snap(pos mgl64.Vec2) {
	p.Body.Position = pos
	p.Body.Stop()
}

// Hold keeps the paddle where it is
func (p *Paddle) Hold() {
	p.Body.Stop()
}

// ResolveTarget clamps target into the rink and pushes it clear of every wall
func (p *Paddle) ResolveTarget(rink *Rink, target mgl64.Vec2) mgl64.Vec2 {
	target = rink.Rect().Inset(p.Radius).Clamp(target)

	for _, w := range rink.walls {
		if n, depth, ok := w.Penetration(target, p.Radius); ok {
			target = target.Add(n.Mul(depth))
		}
	}
	return target
}

// Drive sets the kinematic velocity that brings the paddle onto the resolved target in dt
func (p *Paddle) Drive(rink *Rink, target mgl64.Vec2, dt float64) {
	if dt <= 0 {
		return
	}
	resolved := p.ResolveTarget(rink, target)
	p.Body.Velocity = resolved.Sub(p.Body.Position).Mul(1 / dt)
}
