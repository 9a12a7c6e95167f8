package rotation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"zappem.net/pub/math/geom"
)

func vec3InDelta(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v, want %v", i, got, want)
	}
}

// =============================================================================
// Shortest Tests
// =============================================================================

func TestShortest(t *testing.T) {
	tests := []struct {
		name string
		q    mgl64.Quat
		want mgl64.Quat
	}{
		{
			name: "identity unchanged",
			q:    mgl64.QuatIdent(),
			want: mgl64.QuatIdent(),
		},
		{
			name: "negative scalar flips every component",
			q:    mgl64.Quat{W: -0.5, V: mgl64.Vec3{0.5, -0.5, 0.5}},
			want: mgl64.Quat{W: 0.5, V: mgl64.Vec3{-0.5, 0.5, -0.5}},
		},
		{
			name: "zero scalar is kept",
			q:    mgl64.Quat{W: 0, V: mgl64.Vec3{0, 1, 0}},
			want: mgl64.Quat{W: 0, V: mgl64.Vec3{0, 1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shortest(tt.q))
		})
	}
}

func TestShortest_Idempotent(t *testing.T) {
	quats := []mgl64.Quat{
		mgl64.QuatRotate(geom.Degrees(270).Rad(), mgl64.Vec3{0, 1, 0}),
		mgl64.QuatRotate(geom.Degrees(30).Rad(), mgl64.Vec3{1, 1, 0}.Normalize()),
		mgl64.QuatRotate(geom.Degrees(-190).Rad(), mgl64.Vec3{0, 0, 1}),
	}

	for _, q := range quats {
		once := Shortest(q)
		assert.Equal(t, once, Shortest(once))
		assert.Equal(t, once, Shortest(q.Scale(-1)))
		assert.GreaterOrEqual(t, once.W, 0.0)
	}
}

// =============================================================================
// ToAxisAngle Tests
// =============================================================================

func TestToAxisAngle(t *testing.T) {
	tests := []struct {
		name      string
		q         mgl64.Quat
		wantAxis  mgl64.Vec3
		wantAngle geom.Angle
	}{
		{
			name:      "identity falls back to +X",
			q:         mgl64.QuatIdent(),
			wantAxis:  FallbackAxis,
			wantAngle: 0,
		},
		{
			name:      "quarter turn about Y",
			q:         mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
			wantAxis:  mgl64.Vec3{0, 1, 0},
			wantAngle: geom.Degrees(90),
		},
		{
			name:      "half turn about Z",
			q:         mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 0, 1}),
			wantAxis:  mgl64.Vec3{0, 0, 1},
			wantAngle: geom.Degrees(180),
		},
		{
			name:      "scalar above one is renormalized",
			q:         mgl64.Quat{W: 1.5, V: mgl64.Vec3{0, 0, 0}},
			wantAxis:  FallbackAxis,
			wantAngle: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, angle := ToAxisAngle(tt.q)
			vec3InDelta(t, tt.wantAxis, axis, 1e-9)
			assert.InDelta(t, tt.wantAngle.Rad(), angle.Rad(), 1e-9)
			assert.False(t, math.IsNaN(axis.X()) || math.IsNaN(angle.Rad()))
		})
	}
}

func TestToAngleAxis_Degrees(t *testing.T) {
	degrees, axis := ToAngleAxis(mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{1, 0, 0}))

	assert.InDelta(t, 60.0, degrees, 1e-9)
	vec3InDelta(t, mgl64.Vec3{1, 0, 0}, axis, 1e-9)
}

// =============================================================================
// NormalizeOr Tests
// =============================================================================

func TestNormalizeOr(t *testing.T) {
	tests := []struct {
		name     string
		v        mgl64.Vec3
		fallback mgl64.Vec3
		want     mgl64.Vec3
	}{
		{"zero uses fallback", mgl64.Vec3{}, Up, Up},
		{"tiny uses fallback", mgl64.Vec3{1e-9, 0, 0}, Forward, Forward},
		{"NaN uses fallback", mgl64.Vec3{math.NaN(), 0, 0}, Right, Right},
		{"regular vector is normalized", mgl64.Vec3{0, 3, 4}, Right, mgl64.Vec3{0, 0.6, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec3InDelta(t, tt.want, NormalizeOr(tt.v, tt.fallback), 1e-12)
		})
	}
}

// =============================================================================
// RotationVector Tests
// =============================================================================

func TestRotationVector(t *testing.T) {
	tests := []struct {
		name string
		q    mgl64.Quat
		want mgl64.Vec3
	}{
		{"identity is zero", mgl64.QuatIdent(), mgl64.Vec3{}},
		{"negated identity is zero", mgl64.Quat{W: -1}, mgl64.Vec3{}},
		{"quarter turn about X", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}), mgl64.Vec3{math.Pi / 2, 0, 0}},
		{"long way round is shortened", mgl64.QuatRotate(geom.Degrees(300).Rad(), mgl64.Vec3{0, 0, 1}), mgl64.Vec3{0, 0, -math.Pi / 3}},
		{"below axis epsilon", mgl64.QuatRotate(1e-6, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{0, 1e-6, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec3InDelta(t, tt.want, RotationVector(tt.q), 1e-9)
		})
	}
}

func TestToAngleAxis_MatchesToAxisAngle(t *testing.T) {
	q := mgl64.QuatRotate(geom.Degrees(135).Rad(), mgl64.Vec3{0, 1, 1}.Normalize())

	wantAxis, angle := ToAxisAngle(q)
	degrees, axis := ToAngleAxis(q)

	assert.Equal(t, angle.Deg(), degrees)
	assert.Equal(t, wantAxis, axis)
	assert.InDelta(t, 135.0, degrees, 1e-9)
}
