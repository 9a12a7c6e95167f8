package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform is a position, rotation and scale in 3D space.
// A point p maps to Position + Rotation * (Scale ⊙ p).
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// NewTransform creates a transform, normalizing the rotation.
func NewTransform(position mgl64.Vec3, rot mgl64.Quat, scale mgl64.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: rot.Normalize(),
		Scale:    scale,
	}
}

// NewTransformPR creates a transform with a scale of (1, 1, 1).
func NewTransformPR(position mgl64.Vec3, rot mgl64.Quat) Transform {
	return NewTransform(position, rot, mgl64.Vec3{1, 1, 1})
}

// TransformPoint transforms a point from local space to world space.
func (t Transform) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.TransformVector(point))
}

// TransformDirection rotates a direction from local space to world space.
// Scale and position are ignored.
func (t Transform) TransformDirection(direction mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(direction)
}

// TransformVector transforms a vector from local space to world space.
// Position is ignored, scale is applied.
func (t Transform) TransformVector(vector mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(mulElem(t.Scale, vector))
}

// TransformRotation transforms a rotation from local space to world space.
func (t Transform) TransformRotation(q mgl64.Quat) mgl64.Quat {
	return t.Rotation.Mul(q)
}

// InverseTransformPoint transforms a point from world space to local space.
func (t Transform) InverseTransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return t.InverseTransformVector(point.Sub(t.Position))
}

// InverseTransformDirection rotates a direction from world space to local space.
func (t Transform) InverseTransformDirection(direction mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Inverse().Rotate(direction)
}

// InverseTransformVector transforms a vector from world space to local space.
func (t Transform) InverseTransformVector(vector mgl64.Vec3) mgl64.Vec3 {
	return mulElem(invElem(t.Scale), t.Rotation.Inverse().Rotate(vector))
}

// InverseTransformRotation transforms a rotation from world space to local space.
func (t Transform) InverseTransformRotation(q mgl64.Quat) mgl64.Quat {
	return t.Rotation.Inverse().Mul(q)
}

// Compose returns the world transform of child, where child is expressed in
// t's local space: the child offset is scaled and rotated by t, then
// translated by t.Position. Scales multiply.
//
// A rotation followed by a non-uniform scale is a shear, which a
// position/rotation/scale value cannot hold: once a non-uniformly scaled
// parent is rotated relative to its child, Compose is no longer associative
// and only approximates the world transform. For the same reason Inverse does
// not round-trip such a transform.
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Position: t.TransformPoint(child.Position),
		Rotation: t.Rotation.Mul(child.Rotation).Normalize(),
		Scale:    mulElem(t.Scale, child.Scale),
	}
}

// Inverse returns the transform mapping world space back into t's local
// space. It is exact when Scale is uniform; with non-uniform scale prefer the
// InverseTransform* methods. Zero scale components invert to zero.
func (t Transform) Inverse() Transform {
	invRotation := t.Rotation.Inverse()
	invScale := invElem(t.Scale)

	return Transform{
		Position: mulElem(invScale, invRotation.Rotate(t.Position)).Mul(-1),
		Rotation: invRotation,
		Scale:    invScale,
	}
}

// Lerp interpolates between a and b. Position and scale are linear, rotation
// follows the shortest great arc.
func Lerp(a, b Transform, t float64) Transform {
	// keep both ends in the same hemisphere so slerp takes the short arc
	to := b.Rotation
	if a.Rotation.Dot(to) < 0 {
		to = to.Scale(-1)
	}

	return Transform{
		Position: a.Position.Add(b.Position.Sub(a.Position).Mul(t)),
		Rotation: mgl64.QuatSlerp(a.Rotation, to, t).Normalize(),
		Scale:    a.Scale.Add(b.Scale.Sub(a.Scale).Mul(t)),
	}
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func invElem(v mgl64.Vec3) mgl64.Vec3 {
	var inv mgl64.Vec3
	for i, c := range v {
		if c != 0 {
			inv[i] = 1 / c
		}
	}
	return inv
}
