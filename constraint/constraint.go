// Package constraint converts world- and parent-relative targets into the
// drive space of a 6-DOF joint.
//
// A Space is captured once per joint, right after the joint is configured.
// It remembers where both bodies started and which way the drive axes point,
// then re-expresses live targets against that snapshot while both bodies move.
// The joint itself is only reached through the narrow Joint capability, so any
// host (a physics engine binding, a test double, ConfigurableJoint) can back it.
package constraint

import (
	"errors"

	"github.com/akmonengine/drive/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Err* are the errors exported by this package.
var (
	ErrNilJoint       = errors.New("joint is nil")
	ErrJointDestroyed = errors.New("joint has been destroyed")
)

// Body is the read-only view of a rigid body a joint is attached to.
type Body interface {
	// Pose returns the world position, rotation and lossy scale.
	Pose() actor.Transform
	// Velocities returns the world linear and angular velocity.
	Velocities() (linear, angular mgl64.Vec3)
}

// Targets are the four drive-space fields a solver reads every step.
type Targets struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
}

// Joint is the capability a host constraint exposes to a Space.
type Joint interface {
	// Pose returns the owning body's current world transform.
	Pose() actor.Transform
	// Connected returns the connected body, if any. A joint without one is
	// attached to the fixed world frame.
	Connected() (Body, bool)
	// Anchors returns the anchor in the owner's local space, and the connected
	// anchor in the connected body's local space (world space when there is
	// no connected body).
	Anchors() (anchor, connectedAnchor mgl64.Vec3)
	SwapBodies() bool
	// Axes returns the primary and secondary axis in the owner's local space.
	Axes() (axis, secondaryAxis mgl64.Vec3)
	ConfiguredInWorldSpace() bool

	Targets() Targets
	SetTargetPosition(position mgl64.Vec3)
	SetTargetRotation(rotation mgl64.Quat)
	SetTargetVelocity(velocity mgl64.Vec3)
	SetTargetAngularVelocity(angularVelocity mgl64.Vec3)

	// Recompute asks the host to rebuild its internal joint frame from the
	// current configuration. It bumps Revision.
	Recompute()
	// Revision changes whenever the joint's initial configuration changes.
	Revision() uint64
	// Destroyed reports whether the host has torn the joint down.
	Destroyed() bool
}

// WorldConnectedAnchor returns the connected anchor in world space.
func WorldConnectedAnchor(j Joint) mgl64.Vec3 {
	_, connectedAnchor := j.Anchors()

	if body, ok := j.Connected(); ok {
		return body.Pose().TransformPoint(connectedAnchor)
	}

	return connectedAnchor
}

// WorldAnchor returns the joint's own anchor in world space.
func WorldAnchor(j Joint) mgl64.Vec3 {
	anchor, _ := j.Anchors()
	return j.Pose().TransformPoint(anchor)
}
