package constraint

import (
	"github.com/akmonengine/drive/rotation"
	"github.com/go-gl/mathgl/mgl64"
)

// FrameBasis builds the fixed orientation of a joint's drive axes from a
// primary and a secondary axis. The axes need not be unit length nor
// orthogonal; degenerate input resolves to canonical axes:
//
//	primary          zero  -> +X
//	secondary        zero  -> +Y
//	primary × second ~zero -> forward = +Z
//	-(primary × fwd) ~zero -> up = +Y
//
// The resulting look rotation (forward, up) is left-composed with initial.
// Identical input always yields the identical quaternion.
func FrameBasis(initial mgl64.Quat, axis, secondaryAxis mgl64.Vec3) mgl64.Quat {
	primary := rotation.NormalizeOr(axis, rotation.Right)
	secondary := rotation.NormalizeOr(secondaryAxis, rotation.Up)

	forward := rotation.NormalizeOr(primary.Cross(secondary), rotation.Forward)
	up := rotation.NormalizeOr(primary.Cross(forward).Mul(-1), rotation.Up)

	return initial.Mul(rotation.LookRotation(forward, up)).Normalize()
}

// JointRotation returns the frame basis of j: its axes measured from the
// world frame when the joint is configured in world space, from the owner's
// current rotation otherwise.
func JointRotation(j Joint) mgl64.Quat {
	initial := mgl64.QuatIdent()
	if !j.ConfiguredInWorldSpace() {
		initial = j.Pose().Rotation
	}

	axis, secondaryAxis := j.Axes()
	return FrameBasis(initial, axis, secondaryAxis)
}
