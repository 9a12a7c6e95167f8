package constraint

import (
	"math"

	"zappem.net/pub/math/geom"
)

// Motion restricts one degree of freedom of a joint.
type Motion uint8

const (
	MotionFree Motion = iota
	MotionLimited
	MotionLocked
)

func (m Motion) String() string {
	switch m {
	case MotionFree:
		return "free"
	case MotionLimited:
		return "limited"
	case MotionLocked:
		return "locked"
	}
	return "unknown"
}

// AngularLimits holds the angular motion of a joint around its X, Y and Z
// axes, and the limit angles used by the axes whose motion is MotionLimited.
// The X axis twists between LowAngularXLimit and HighAngularXLimit; the Y and
// Z axes swing within +/-AngularYLimit and +/-AngularZLimit.
type AngularLimits struct {
	AngularXMotion Motion
	AngularYMotion Motion
	AngularZMotion Motion

	LowAngularXLimit  geom.Angle
	HighAngularXLimit geom.Angle
	AngularYLimit     geom.Angle
	AngularZLimit     geom.Angle
}

var (
	FreeAngularLimits   = AngularLimits{AngularXMotion: MotionFree, AngularYMotion: MotionFree, AngularZMotion: MotionFree}
	LockedAngularLimits = AngularLimits{AngularXMotion: MotionLocked, AngularYMotion: MotionLocked, AngularZMotion: MotionLocked}
)

// NewAngularLimits limits all three angular axes. Every limit is clamped to
// [-180, 180] degrees.
func NewAngularLimits(lowAngularX, highAngularX, angularY, angularZ geom.Angle) AngularLimits {
	return AngularLimits{
		AngularXMotion:    MotionLimited,
		AngularYMotion:    MotionLimited,
		AngularZMotion:    MotionLimited,
		LowAngularXLimit:  clampHalfTurn(lowAngularX),
		HighAngularXLimit: clampHalfTurn(highAngularX),
		AngularYLimit:     clampHalfTurn(angularY),
		AngularZLimit:     clampHalfTurn(angularZ),
	}
}

// CopyTo writes the limits and the angular motions to j. The drive frame is
// left untouched, so the joint revision does not change.
func (l AngularLimits) CopyTo(j *ConfigurableJoint) {
	j.config.AngularLimits = l
}

func clampHalfTurn(angle geom.Angle) geom.Angle {
	return geom.Radians(max(-math.Pi, min(math.Pi, angle.Rad())))
}

// AngularLimits captures the joint's current angular motions and limits.
func (cj *ConfigurableJoint) AngularLimits() AngularLimits {
	return cj.config.AngularLimits
}

// SetMotion sets the X, Y and Z linear motions to linear and the angular
// motions to angular. MotionFree on both restores an unconstrained joint.
func (cj *ConfigurableJoint) SetMotion(linear, angular Motion) {
	cj.config.XMotion, cj.config.YMotion, cj.config.ZMotion = linear, linear, linear

	limits := &cj.config.AngularLimits
	limits.AngularXMotion, limits.AngularYMotion, limits.AngularZMotion = angular, angular, angular
}

// linearLocked reports whether every linear axis is locked.
func (c JointConfig) linearLocked() bool {
	return c.XMotion == MotionLocked && c.YMotion == MotionLocked && c.ZMotion == MotionLocked
}
