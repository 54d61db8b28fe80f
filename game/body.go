package game

import "github.com/go-gl/mathgl/mgl64"

// BodyKind is how the integrator treats a body
type BodyKind int

const (
	// Dynamic bodies are moved by velocity and by collision responses
	Dynamic BodyKind = iota
	// Kinematic bodies are moved by velocity only; collisions never push them
	Kinematic
	// Static bodies never move
	Static
)

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	}
	return "unknown"
}

// CollisionTag groups shapes for contact filtering
type CollisionTag int

const (
	TagPuck     CollisionTag = 1
	TagPaddle   CollisionTag = 2
	TagBoundary CollisionTag = 99
)

// Material holds the surface constants of a shape
type Material struct {
	Elasticity float64
	Friction   float64
}

// RigidBody is a point mass with linear and angular state
type RigidBody struct {
	Position        mgl64.Vec2
	Velocity        mgl64.Vec2
	Angle           float64
	AngularVelocity float64
	Mass            float64
	Moment          float64
	Kind            BodyKind
}

// MomentForCircle returns the moment of inertia of a solid disc
func MomentForCircle(mass, radius float64) float64 {
	return mass * radius * radius / 2
}

// Integrate advances position and angle by dt
func (b *RigidBody) Integrate(dt float64) {
	if b.Kind == Static {
		return
	}
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	b.Angle += b.AngularVelocity * dt
}

// Stop zeroes linear and angular velocity
func (b *RigidBody) Stop() {
	b.Velocity = mgl64.Vec2{}
	b.AngularVelocity = 0
}

// Speed returns the magnitude of the linear velocity
func (b *RigidBody) Speed() float64 {
	return b.Velocity.Len()
}
