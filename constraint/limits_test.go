package constraint

import (
	"testing"

	"github.com/akmonengine/drive/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"zappem.net/pub/math/geom"
)

// =============================================================================
// AngularLimits Tests
// =============================================================================

func TestAngularLimits_Presets(t *testing.T) {
	tests := []struct {
		name   string
		limits AngularLimits
		want   Motion
	}{
		{"free", FreeAngularLimits, MotionFree},
		{"locked", LockedAngularLimits, MotionLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.limits.AngularXMotion)
			assert.Equal(t, tt.want, tt.limits.AngularYMotion)
			assert.Equal(t, tt.want, tt.limits.AngularZMotion)
		})
	}
}

func TestNewAngularLimits(t *testing.T) {
	tests := []struct {
		name                            string
		low, high, y, z                 float64
		wantLow, wantHigh, wantY, wantZ float64
	}{
		{"within range", -30, 45, 20, 10, -30, 45, 20, 10},
		{"clamped to a half turn", -270, 200, 181, -500, -180, 180, 180, -180},
		{"bounds are kept", -180, 180, 0, 180, -180, 180, 0, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewAngularLimits(geom.Degrees(tt.low), geom.Degrees(tt.high), geom.Degrees(tt.y), geom.Degrees(tt.z))

			assert.Equal(t, MotionLimited, l.AngularXMotion)
			assert.Equal(t, MotionLimited, l.AngularYMotion)
			assert.Equal(t, MotionLimited, l.AngularZMotion)
			assert.InDelta(t, tt.wantLow, l.LowAngularXLimit.Deg(), 1e-9)
			assert.InDelta(t, tt.wantHigh, l.HighAngularXLimit.Deg(), 1e-9)
			assert.InDelta(t, tt.wantY, l.AngularYLimit.Deg(), 1e-9)
			assert.InDelta(t, tt.wantZ, l.AngularZLimit.Deg(), 1e-9)
		})
	}
}

func TestAngularLimits_CaptureAndCopy(t *testing.T) {
	source := createJoint(actor.Identity(), nil, DefaultJointConfig())
	target := createJoint(actor.Identity(), nil, DefaultJointConfig())
	assert.Equal(t, FreeAngularLimits, source.AngularLimits())

	NewAngularLimits(geom.Degrees(-20), geom.Degrees(70), geom.Degrees(15), geom.Degrees(5)).CopyTo(source)
	before := target.Revision()

	source.AngularLimits().CopyTo(target)

	assert.Equal(t, source.AngularLimits(), target.AngularLimits())
	assert.Equal(t, source.AngularLimits(), target.Config().AngularLimits)
	assert.Equal(t, before, target.Revision(), "limits do not move the drive frame")
}

// =============================================================================
// Motion Tests
// =============================================================================

func TestConfigurableJoint_SetMotion(t *testing.T) {
	tests := []struct {
		name    string
		linear  Motion
		angular Motion
	}{
		{"free", MotionFree, MotionFree},
		{"locked position, free rotation", MotionLocked, MotionFree},
		{"limited", MotionLimited, MotionLimited},
		{"locked", MotionLocked, MotionLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := createJoint(actor.Identity(), nil, DefaultJointConfig())
			NewAngularLimits(geom.Degrees(-10), geom.Degrees(10), geom.Degrees(30), geom.Degrees(40)).CopyTo(j)

			j.SetMotion(tt.linear, tt.angular)

			config := j.Config()
			assert.Equal(t, []Motion{tt.linear, tt.linear, tt.linear}, []Motion{config.XMotion, config.YMotion, config.ZMotion})
			limits := j.AngularLimits()
			assert.Equal(t, []Motion{tt.angular, tt.angular, tt.angular}, []Motion{limits.AngularXMotion, limits.AngularYMotion, limits.AngularZMotion})
			assert.InDelta(t, 30.0, limits.AngularYLimit.Deg(), 1e-9, "limit angles are kept")
		})
	}
}

func TestConfigurableJoint_LockedMotionPinsAnchor(t *testing.T) {
	config := DefaultJointConfig()
	config.Anchor = mgl64.Vec3{1, 0, 0}
	j := createJoint(actor.Identity(), nil, config)

	vec3InDelta(t, mgl64.Vec3{4, 5, 6}, j.LimitedPosition(mgl64.Vec3{4, 5, 6}), 1e-12)

	j.SetMotion(MotionLocked, MotionFree)
	vec3InDelta(t, mgl64.Vec3{-1, 0, 0}, j.LimitedPosition(mgl64.Vec3{4, 5, 6}), 1e-12)

	j.SetMotion(MotionFree, MotionFree)
	vec3InDelta(t, mgl64.Vec3{4, 5, 6}, j.LimitedPosition(mgl64.Vec3{4, 5, 6}), 1e-12)
}

func TestMotion_String(t *testing.T) {
	assert.Equal(t, "free", MotionFree.String())
	assert.Equal(t, "limited", MotionLimited.String())
	assert.Equal(t, "locked", MotionLocked.String())
	assert.Equal(t, "unknown", Motion(9).String())
}
