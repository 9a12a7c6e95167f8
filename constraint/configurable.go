package constraint

import (
	"math"

	"github.com/akmonengine/drive/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// JointConfig is the initial configuration of a ConfigurableJoint. Changing it
// after the fact goes through Configure, so that snapshots notice.
type JointConfig struct {
	// Anchor is in the owner's local space.
	Anchor mgl64.Vec3
	// ConnectedAnchor is in the connected body's local space, or world space
	// when the joint has no connected body.
	ConnectedAnchor mgl64.Vec3

	Axis          mgl64.Vec3
	SecondaryAxis mgl64.Vec3

	SwapBodies             bool
	ConfiguredInWorldSpace bool

	// XMotion, YMotion and ZMotion restrict the linear axes. Locking all
	// three pins the anchor on the connected anchor.
	XMotion Motion
	YMotion Motion
	ZMotion Motion
	// LinearLimit bounds the distance between both anchors. A negative or
	// infinite limit leaves the anchor free.
	LinearLimit float64

	AngularLimits AngularLimits
}

// DefaultJointConfig returns the conventional X/Y axes, centered anchors, free
// motion and no linear limit.
func DefaultJointConfig() JointConfig {
	return JointConfig{
		Axis:          mgl64.Vec3{1, 0, 0},
		SecondaryAxis: mgl64.Vec3{0, 1, 0},
		LinearLimit:   math.Inf(1),
	}
}

// ConfigurableJoint is an in-process joint host. It owns the drive targets a
// solver reads, and exposes the Joint capability to a Space.
type ConfigurableJoint struct {
	Body          *actor.RigidBody
	ConnectedBody *actor.RigidBody

	config   JointConfig
	targets  Targets
	revision uint64

	destroyed bool
}

// NewConfigurableJoint attaches a joint to body, and to connected when it is
// non-nil. The drive targets start at rest with an identity rotation.
func NewConfigurableJoint(body, connected *actor.RigidBody, config JointConfig) *ConfigurableJoint {
	return &ConfigurableJoint{
		Body:          body,
		ConnectedBody: connected,
		config:        config,
		targets:       Targets{Rotation: mgl64.QuatIdent()},
	}
}

func (cj *ConfigurableJoint) Config() JointConfig {
	return cj.config
}

// Configure replaces the joint configuration and recomputes the joint frame.
func (cj *ConfigurableJoint) Configure(config JointConfig) {
	cj.config = config
	cj.Recompute()
}

// Connect replaces the connected body, nil meaning the world frame.
func (cj *ConfigurableJoint) Connect(connected *actor.RigidBody) {
	cj.ConnectedBody = connected
	cj.Recompute()
}

func (cj *ConfigurableJoint) Pose() actor.Transform {
	return cj.Body.Pose()
}

func (cj *ConfigurableJoint) Connected() (Body, bool) {
	if cj.ConnectedBody == nil {
		return nil, false
	}
	return cj.ConnectedBody, true
}

func (cj *ConfigurableJoint) Anchors() (anchor, connectedAnchor mgl64.Vec3) {
	return cj.config.Anchor, cj.config.ConnectedAnchor
}

func (cj *ConfigurableJoint) SwapBodies() bool {
	return cj.config.SwapBodies
}

func (cj *ConfigurableJoint) Axes() (axis, secondaryAxis mgl64.Vec3) {
	return cj.config.Axis, cj.config.SecondaryAxis
}

func (cj *ConfigurableJoint) ConfiguredInWorldSpace() bool {
	return cj.config.ConfiguredInWorldSpace
}

func (cj *ConfigurableJoint) Targets() Targets {
	return cj.targets
}

func (cj *ConfigurableJoint) SetTargetPosition(position mgl64.Vec3) {
	cj.targets.Position = position
}

func (cj *ConfigurableJoint) SetTargetRotation(rotation mgl64.Quat) {
	cj.targets.Rotation = rotation
}

func (cj *ConfigurableJoint) SetTargetVelocity(velocity mgl64.Vec3) {
	cj.targets.Velocity = velocity
}

func (cj *ConfigurableJoint) SetTargetAngularVelocity(angularVelocity mgl64.Vec3) {
	cj.targets.AngularVelocity = angularVelocity
}

func (cj *ConfigurableJoint) Recompute() {
	cj.revision++
}

func (cj *ConfigurableJoint) Revision() uint64 {
	return cj.revision
}

// Destroy tears the joint down. Every Space built on it starts failing with
// ErrJointDestroyed.
func (cj *ConfigurableJoint) Destroy() {
	cj.destroyed = true
}

func (cj *ConfigurableJoint) Destroyed() bool {
	return cj.destroyed
}

// =============================================================================
// Anchors
// =============================================================================

func (cj *ConfigurableJoint) WorldAnchor() mgl64.Vec3 {
	return WorldAnchor(cj)
}

func (cj *ConfigurableJoint) WorldConnectedAnchor() mgl64.Vec3 {
	return WorldConnectedAnchor(cj)
}

// SetWorldAnchor moves the anchor so that it lies on a world position.
func (cj *ConfigurableJoint) SetWorldAnchor(position mgl64.Vec3) {
	cj.config.Anchor = cj.Body.Pose().InverseTransformPoint(position)
	cj.Recompute()
}

// SetWorldConnectedAnchor moves the connected anchor so that it lies on a
// world position.
func (cj *ConfigurableJoint) SetWorldConnectedAnchor(position mgl64.Vec3) {
	if cj.ConnectedBody != nil {
		position = cj.ConnectedBody.Pose().InverseTransformPoint(position)
	}

	cj.config.ConnectedAnchor = position
	cj.Recompute()
}

// LimitedPosition returns the owner position closest to position that keeps
// the anchor within LinearLimit of the connected anchor. When every linear
// axis is locked the limit is zero.
func (cj *ConfigurableJoint) LimitedPosition(position mgl64.Vec3) mgl64.Vec3 {
	limit := cj.config.LinearLimit
	if cj.config.linearLocked() {
		limit = 0
	}
	if limit < 0 || math.IsInf(limit, 1) {
		return position
	}

	pose := cj.Body.Pose()
	connectedAnchor := cj.WorldConnectedAnchor()
	anchorOffset := pose.TransformPoint(cj.config.Anchor).Sub(pose.Position)

	offset := position.Add(anchorOffset).Sub(connectedAnchor)
	if offset.LenSqr() > limit*limit {
		offset = offset.Normalize().Mul(limit)
	}

	return connectedAnchor.Add(offset).Sub(anchorOffset)
}
