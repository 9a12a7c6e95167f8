// Package rotation holds the quaternion canonicalization helpers used by the
// joint-space conversions: shortest-arc selection, axis-angle extraction with
// degenerate fallbacks, and orthonormal look-rotation construction.
//
// Every function here is pure and deterministic. Degenerate input (zero-length
// vectors, parallel axes, near-zero rotations) never produces NaN: it resolves
// to a fixed canonical substitute instead.
package rotation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"zappem.net/pub/math/geom"
)

const (
	// AxisEpsilon is the lower bound on sqrt(1 - w²) below which a rotation is
	// treated as the identity and ToAxisAngle returns FallbackAxis.
	AxisEpsilon = 1e-4

	// DegenerateEpsilon is the squared length under which a vector is
	// considered zero by NormalizeOr and the basis builders.
	DegenerateEpsilon = 1e-12
)

// Canonical substitute axes.
var (
	Right   = mgl64.Vec3{1, 0, 0}
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}

	// FallbackAxis is returned by ToAxisAngle for rotations of ~0 radians.
	FallbackAxis = Right
)

// Shortest returns the representative of q whose scalar part is non-negative,
// i.e. the one whose rotation angle lies in [0, π]. q and -q encode the same
// orientation. Shortest is idempotent.
func Shortest(q mgl64.Quat) mgl64.Quat {
	if q.W < 0 {
		return mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	}

	return q
}

// ToAxisAngle converts q into a unit rotation axis and an angle in radians.
//
// A quaternion whose |W| drifted above 1 through floating error is
// renormalized first. When the rotation is too small for the axis to be
// defined, FallbackAxis is returned with the (near-zero) angle.
func ToAxisAngle(q mgl64.Quat) (mgl64.Vec3, geom.Angle) {
	axis, angle, _ := axisAngle(q)
	return axis, angle
}

func axisAngle(q mgl64.Quat) (mgl64.Vec3, geom.Angle, bool) {
	if math.Abs(q.W) > 1 {
		q = q.Normalize()
	}

	w := mgl64.Clamp(q.W, -1, 1)
	angle := geom.Radians(2 * math.Acos(w))

	den := math.Sqrt(1 - w*w)
	if den <= AxisEpsilon {
		return FallbackAxis, angle, false
	}

	return q.V.Mul(1 / den), angle, true
}

// RotationVector returns axis * angle for the shortest form of q.
//
// Below AxisEpsilon the axis is undefined, so the small-angle identity
// axis*angle ≈ 2*V is used instead of FallbackAxis; the identity therefore
// maps to the zero vector rather than to a sliver of rotation about +X.
func RotationVector(q mgl64.Quat) mgl64.Vec3 {
	q = Shortest(q)

	axis, angle, ok := axisAngle(q)
	if !ok {
		return q.V.Mul(2)
	}

	return NormalizeOr(axis, FallbackAxis).Mul(angle.Rad())
}

// ToAngleAxis is ToAxisAngle with the angle reported in degrees.
func ToAngleAxis(q mgl64.Quat) (float64, mgl64.Vec3) {
	axis, angle := ToAxisAngle(q)
	return angle.Deg(), axis
}

// NormalizeOr returns v scaled to unit length, or fallback when v is too
// short to carry a direction.
func NormalizeOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	lenSqr := v.LenSqr()
	if lenSqr <= DegenerateEpsilon || math.IsNaN(lenSqr) || math.IsInf(lenSqr, 0) {
		return fallback
	}

	return v.Mul(1 / math.Sqrt(lenSqr))
}
