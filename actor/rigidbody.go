package actor

import "github.com/go-gl/mathgl/mgl64"

// BodyType represents the type of rigid body
type BodyType int

const (
	// BodyTypeDynamic bodies are affected by gravity and collisions
	// They have finite mass and can move freely
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies are immovable and have infinite mass
	// They are not affected by gravity or impulses (e.g., ground, walls)
	BodyTypeStatic
)

// RigidBody represents a rigid body in the physics simulation
type RigidBody struct {
	// Spatial properties
	Position mgl64.Vec2

	// Linear motion
	Velocity mgl64.Vec2 // Linear velocity (m/s)

	// OverlapAccumulator holds the pending positional correction for this
	// body. The collision solver accumulates into it instead of moving the
	// body; ApplyCorrection consumes it once per step so that a body
	// involved in several simultaneous collisions is moved only once.
	OverlapAccumulator mgl64.Vec2

	// MassInverse is the reciprocal of the body mass. 0 means infinite
	// mass: the body is immovable.
	MassInverse float64

	BodyType BodyType // Dynamic or Static

	// IsTrigger bodies detect overlaps and emit events but are never
	// resolved against
	IsTrigger bool

	// Collision shape
	Shape *Polygon
}

// NewRigidBody creates a new rigid body with the given properties
// density is used to calculate mass for dynamic bodies (ignored for static)
func NewRigidBody(position mgl64.Vec2, shape *Polygon, bodyType BodyType, density float64) *RigidBody {
	rb := &RigidBody{
		Position: position,
		Shape:    shape,
		BodyType: bodyType,
	}

	// Static bodies keep MassInverse at 0 (infinite mass)
	if bodyType == BodyTypeDynamic {
		rb.MassInverse = 1.0 / shape.ComputeMass(density)
	}

	rb.Shape.ComputeBounds(rb.Position)

	return rb
}

// Integrate advances velocity and position by one timestep under gravity.
// Static bodies never move.
func (rb *RigidBody) Integrate(dt float64, gravity mgl64.Vec2) {
	if rb.BodyType == BodyTypeStatic {
		return
	}

	rb.Velocity = rb.Velocity.Add(gravity.Mul(dt))
	rb.Position = rb.Position.Add(rb.Velocity.Mul(dt))

	rb.Shape.ComputeBounds(rb.Position)
}

// ApplyCorrection commits the accumulated overlap resolution to the body
// position in one go, then resets the accumulator.
func (rb *RigidBody) ApplyCorrection() {
	if rb.BodyType == BodyTypeStatic {
		return
	}

	rb.Position = rb.Position.Add(rb.OverlapAccumulator)
	rb.OverlapAccumulator = mgl64.Vec2{}

	rb.Shape.ComputeBounds(rb.Position)
}
