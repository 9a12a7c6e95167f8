package rotation

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Orthonormalize runs Gram-Schmidt over a forward/up pair and returns the
// resulting right-handed basis (right = up × forward).
//
// Forward keeps its direction. Up loses its component along forward; if
// nothing is left, the first of +Y, +Z, +X that is not parallel to forward
// takes its place.
func Orthonormalize(forward, up mgl64.Vec3) (f, u, r mgl64.Vec3) {
	f = NormalizeOr(forward, Forward)

	for _, candidate := range [...]mgl64.Vec3{up, Up, Forward, Right} {
		projected := candidate.Sub(f.Mul(candidate.Dot(f)))
		if projected.LenSqr() > DegenerateEpsilon {
			u = NormalizeOr(projected, Up)
			break
		}
	}

	r = u.Cross(f)
	// Re-project once more so accumulated rounding in u does not leak into r.
	u = f.Cross(r)

	return f, u, r
}

// LookRotation returns the rotation that maps +Z onto forward and +Y onto
// the component of up orthogonal to forward.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	f, u, r := Orthonormalize(forward, up)
	m := mgl64.Mat3FromCols(r, u, f)

	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}
