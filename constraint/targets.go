package constraint

import (
	"github.com/akmonengine/drive/derivative"
	"github.com/go-gl/mathgl/mgl64"
)

// SetTargetPositionAndVelocity writes a drive-space target position, along
// with the velocity that carries the previous target there over dt.
// dt must be non-zero.
func SetTargetPositionAndVelocity(j Joint, position mgl64.Vec3, dt float64) error {
	if j == nil {
		return ErrNilJoint
	}
	if j.Destroyed() {
		return ErrJointDestroyed
	}

	previous := j.Targets().Position
	j.SetTargetVelocity(derivative.LinearVelocity(previous, position, dt))
	j.SetTargetPosition(position)

	return nil
}

// SetTargetRotationAndVelocity writes a drive-space target rotation, along
// with the angular velocity that carries the previous target there over dt.
func SetTargetRotationAndVelocity(j Joint, rotation mgl64.Quat, dt float64) error {
	if j == nil {
		return ErrNilJoint
	}
	if j.Destroyed() {
		return ErrJointDestroyed
	}

	previous := j.Targets().Rotation
	if previous == (mgl64.Quat{}) {
		previous = mgl64.QuatIdent()
	}

	j.SetTargetAngularVelocity(derivative.AngularVelocity(previous, rotation, dt))
	j.SetTargetRotation(rotation)

	return nil
}
