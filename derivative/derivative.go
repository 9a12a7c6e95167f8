// Package derivative computes finite-difference velocities from successive
// poses and integrates poses forward from a velocity.
//
// Rotation differences are always taken along the shortest arc, so a single
// step covering more than 180 degrees aliases to its complement.
//
// The two velocity helpers treat a non-positive time step differently:
// LinearVelocity divides unconditionally (callers own the dt > 0 check),
// AngularVelocity returns the raw displacement when dt <= 0.
package derivative

import (
	"github.com/akmonengine/drive/rotation"
	"github.com/go-gl/mathgl/mgl64"
)

// LinearDisplacement returns to - from.
func LinearDisplacement(from, to mgl64.Vec3) mgl64.Vec3 {
	return to.Sub(from)
}

// LinearVelocity returns the displacement between from and to divided by dt.
// dt must not be zero.
func LinearVelocity(from, to mgl64.Vec3, dt float64) mgl64.Vec3 {
	return LinearDisplacement(from, to).Mul(1.0 / dt)
}

// AngularDisplacement returns the rotation vector (axis * radians) that takes
// from onto to along the shortest arc.
func AngularDisplacement(from, to mgl64.Quat) mgl64.Vec3 {
	// normalize to absorb drift, then pick the w >= 0 representative
	q := rotation.Shortest(to.Mul(from.Inverse()).Normalize())

	return rotation.RotationVector(q)
}

// AngularVelocity returns AngularDisplacement(from, to) / dt, or the raw
// displacement when dt <= 0.
func AngularVelocity(from, to mgl64.Quat, dt float64) mgl64.Vec3 {
	angularVelocity := AngularDisplacement(from, to)

	if dt > 0 {
		angularVelocity = angularVelocity.Mul(1.0 / dt)
	}

	return angularVelocity
}

// NextPosition integrates from by velocity over dt (explicit Euler).
func NextPosition(from, velocity mgl64.Vec3, dt float64) mgl64.Vec3 {
	return from.Add(velocity.Mul(dt))
}

// QuaternionDisplacement converts a rotation vector into the quaternion
// rotating |v| radians about v. The zero vector maps to the identity.
func QuaternionDisplacement(v mgl64.Vec3) mgl64.Quat {
	angle := v.Len()
	if angle*angle <= rotation.DegenerateEpsilon {
		return mgl64.QuatIdent()
	}

	return mgl64.QuatRotate(angle, v.Mul(1/angle))
}

// NextRotation integrates from by angularVelocity over dt. The displacement
// is applied in world space: displacement * from.
func NextRotation(from mgl64.Quat, angularVelocity mgl64.Vec3, dt float64) mgl64.Quat {
	return QuaternionDisplacement(angularVelocity.Mul(dt)).Mul(from)
}
