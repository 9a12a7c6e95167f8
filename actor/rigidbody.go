package actor

import (
	"github.com/akmonengine/drive/derivative"
	"github.com/go-gl/mathgl/mgl64"
)

// BodyType represents the type of rigid body
type BodyType int

const (
	// BodyTypeKinematic bodies move by their velocities, or are placed
	// explicitly with MoveTo. Their velocities stay consistent with the motion.
	BodyTypeKinematic BodyType = iota

	// BodyTypeStatic bodies never move (e.g., ground, walls, world anchors)
	BodyTypeStatic
)

// RigidBody is the pose source a joint reads its live position, rotation,
// lossy scale and velocities from.
type RigidBody struct {
	// Spatial properties
	PreviousTransform Transform
	Transform         Transform

	Velocity        mgl64.Vec3 // Linear velocity (m/s)
	AngularVelocity mgl64.Vec3 // Angular velocity (rad/s), world space

	BodyType BodyType
}

// NewRigidBody creates a new rigid body at rest.
func NewRigidBody(transform Transform, bodyType BodyType) *RigidBody {
	if transform.Scale == (mgl64.Vec3{}) {
		transform.Scale = mgl64.Vec3{1, 1, 1}
	}
	if transform.Rotation == (mgl64.Quat{}) {
		transform.Rotation = mgl64.QuatIdent()
	}

	return &RigidBody{
		PreviousTransform: transform,
		Transform:         transform,
		BodyType:          bodyType,
	}
}

// Pose returns the body's current world transform.
func (rb *RigidBody) Pose() Transform {
	return rb.Transform
}

// Velocities returns the body's current linear and angular velocity.
func (rb *RigidBody) Velocities() (linear, angular mgl64.Vec3) {
	if rb.BodyType == BodyTypeStatic {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}

	return rb.Velocity, rb.AngularVelocity
}

// Integrate advances the body by its velocities over dt.
func (rb *RigidBody) Integrate(dt float64) {
	if rb.BodyType == BodyTypeStatic {
		return
	}

	rb.PreviousTransform = rb.Transform

	rb.Transform.Position = derivative.NextPosition(rb.Transform.Position, rb.Velocity, dt)
	rb.Transform.Rotation = derivative.NextRotation(rb.Transform.Rotation, rb.AngularVelocity, dt).Normalize()
}

// MoveTo places the body at target and derives the velocities that would
// have carried it there over dt.
func (rb *RigidBody) MoveTo(target Transform, dt float64) {
	if rb.BodyType == BodyTypeStatic {
		return
	}

	rb.PreviousTransform = rb.Transform
	rb.Transform.Position = target.Position
	rb.Transform.Rotation = target.Rotation.Normalize()

	rb.Update(dt)
}

// Update recomputes the velocities from the last committed motion.
func (rb *RigidBody) Update(dt float64) {
	if rb.BodyType == BodyTypeStatic || dt <= 0 {
		return
	}

	rb.Velocity = derivative.LinearVelocity(rb.PreviousTransform.Position, rb.Transform.Position, dt)
	rb.AngularVelocity = derivative.AngularVelocity(rb.PreviousTransform.Rotation, rb.Transform.Rotation, dt)
}
