package constraint

import (
	"github.com/akmonengine/drive/actor"
	"github.com/akmonengine/drive/derivative"
	"github.com/go-gl/mathgl/mgl64"
)

// Space is the drive-space snapshot of a joint: where both bodies were, and
// how the drive axes were oriented, when the joint was configured.
//
// A Space is read-only once built. When the joint's configuration changes
// (Stale reports true) a new Space must be built with NewSpace; there is no
// partial update. Independent spaces may be used from different goroutines,
// but the Set* methods write to the joint and must not race on the same one.
type Space struct {
	joint Joint

	jointRotation mgl64.Quat

	initialJoint     actor.Transform
	initialConnected actor.Transform

	anchor          mgl64.Vec3
	connectedAnchor mgl64.Vec3

	swapBodies       bool
	hasConnectedBody bool

	revision uint64
}

// NewSpace captures the drive space of j as of now. It should be called as
// soon as the joint is created or configured, before the bodies move.
func NewSpace(j Joint) (*Space, error) {
	if j == nil {
		return nil, ErrNilJoint
	}
	if j.Destroyed() {
		return nil, ErrJointDestroyed
	}

	pose := j.Pose()
	anchor, connectedAnchor := j.Anchors()

	s := &Space{
		joint:            j,
		jointRotation:    JointRotation(j),
		initialJoint:     actor.NewTransformPR(pose.Position, pose.Rotation),
		initialConnected: actor.Identity(),
		anchor:           anchor,
		connectedAnchor:  connectedAnchor,
		swapBodies:       j.SwapBodies(),
		revision:         j.Revision(),
	}

	if body, ok := j.Connected(); ok {
		connected := body.Pose()
		s.hasConnectedBody = true
		s.initialConnected = actor.NewTransformPR(connected.Position, connected.Rotation)
	}

	return s, nil
}

func (s *Space) Joint() Joint                      { return s.joint }
func (s *Space) JointRotation() mgl64.Quat         { return s.jointRotation }
func (s *Space) InitialJoint() actor.Transform     { return s.initialJoint }
func (s *Space) InitialConnected() actor.Transform { return s.initialConnected }
func (s *Space) Anchor() mgl64.Vec3                { return s.anchor }
func (s *Space) ConnectedAnchor() mgl64.Vec3       { return s.connectedAnchor }
func (s *Space) SwapBodies() bool                  { return s.swapBodies }
func (s *Space) HasConnectedBody() bool            { return s.hasConnectedBody }

// Stale reports whether the joint was reconfigured after the snapshot.
func (s *Space) Stale() bool {
	return s.joint.Revision() != s.revision
}

func (s *Space) check() error {
	if s.joint.Destroyed() {
		return ErrJointDestroyed
	}
	return nil
}

// connected returns the live connected body, but only when the snapshot was
// taken with one.
func (s *Space) connected() (Body, bool) {
	if !s.hasConnectedBody {
		return nil, false
	}
	return s.joint.Connected()
}

// =============================================================================
// Position
// =============================================================================

// GetTargetPositionWorld converts a world-space target position for the
// joint's anchor into drive space.
func (s *Space) GetTargetPositionWorld(target mgl64.Vec3) (mgl64.Vec3, error) {
	if err := s.check(); err != nil {
		return mgl64.Vec3{}, err
	}

	return s.targetPositionWorld(target), nil
}

func (s *Space) targetPositionWorld(target mgl64.Vec3) mgl64.Vec3 {
	pose := s.joint.Pose()
	body, hasConnected := s.connected()

	worldRotation := s.jointRotation.Inverse()
	if !s.swapBodies {
		// undo however far the owner has turned since the snapshot
		worldRotation = worldRotation.Mul(s.initialJoint.Rotation.Mul(pose.Rotation.Inverse()))
	} else if hasConnected {
		worldRotation = worldRotation.Mul(s.initialConnected.Rotation.Mul(body.Pose().Rotation.Inverse()))
	}

	worldConnectedAnchor := s.connectedAnchor
	if hasConnected {
		worldConnectedAnchor = body.Pose().TransformPoint(s.connectedAnchor)
	}

	result := s.initialJoint.Position.Sub(target)
	result = result.Sub(s.initialJoint.Position.Sub(worldConnectedAnchor))
	result = result.Sub(pose.Rotation.Rotate(mulElem(s.anchor, pose.Scale)))

	result = worldRotation.Rotate(result)

	if s.swapBodies {
		result = result.Mul(-1)
	}

	return result
}

// GetTargetPositionLocal converts a target position expressed in the
// connected body's local space into drive space. Without a connected body the
// target is taken as world space.
func (s *Space) GetTargetPositionLocal(target mgl64.Vec3) (mgl64.Vec3, error) {
	if err := s.check(); err != nil {
		return mgl64.Vec3{}, err
	}

	if body, ok := s.connected(); ok {
		target = body.Pose().TransformPoint(target)
	}

	return s.targetPositionWorld(target), nil
}

// SetTargetPositionWorld writes GetTargetPositionWorld(target) to the joint.
func (s *Space) SetTargetPositionWorld(target mgl64.Vec3) error {
	position, err := s.GetTargetPositionWorld(target)
	if err != nil {
		return err
	}

	s.joint.SetTargetPosition(position)
	return nil
}

// SetTargetPositionLocal writes GetTargetPositionLocal(target) to the joint.
func (s *Space) SetTargetPositionLocal(target mgl64.Vec3) error {
	position, err := s.GetTargetPositionLocal(target)
	if err != nil {
		return err
	}

	s.joint.SetTargetPosition(position)
	return nil
}

// =============================================================================
// Rotation
// =============================================================================

// GetTargetRotationWorld converts a world-space target rotation for the
// owning body into drive space.
func (s *Space) GetTargetRotationWorld(target mgl64.Quat) (mgl64.Quat, error) {
	if err := s.check(); err != nil {
		return mgl64.Quat{}, err
	}

	return s.targetRotationWorld(target), nil
}

func (s *Space) targetRotationWorld(target mgl64.Quat) mgl64.Quat {
	result := s.jointRotation.Inverse()
	result = result.Mul(s.initialJoint.Rotation.Mul(target.Inverse()))

	if body, ok := s.connected(); ok {
		// compensate for the connected body's drift since the snapshot
		drift := s.initialConnected.Rotation.Mul(body.Pose().Rotation.Inverse())
		result = result.Mul(drift.Inverse())
	}

	result = result.Mul(s.jointRotation)

	if s.swapBodies {
		result = result.Inverse()
	}

	return result
}

// GetTargetRotationLocal converts a target rotation expressed relative to the
// connected body into drive space.
func (s *Space) GetTargetRotationLocal(target mgl64.Quat) (mgl64.Quat, error) {
	if err := s.check(); err != nil {
		return mgl64.Quat{}, err
	}

	if body, ok := s.connected(); ok {
		target = body.Pose().Rotation.Mul(target)
	}

	return s.targetRotationWorld(target), nil
}

// SetTargetRotationWorld writes GetTargetRotationWorld(target) to the joint.
func (s *Space) SetTargetRotationWorld(target mgl64.Quat) error {
	rotation, err := s.GetTargetRotationWorld(target)
	if err != nil {
		return err
	}

	s.joint.SetTargetRotation(rotation)
	return nil
}

// SetTargetRotationLocal writes GetTargetRotationLocal(target) to the joint.
func (s *Space) SetTargetRotationLocal(target mgl64.Quat) error {
	rotation, err := s.GetTargetRotationLocal(target)
	if err != nil {
		return err
	}

	s.joint.SetTargetRotation(rotation)
	return nil
}

// =============================================================================
// Velocity
// =============================================================================

// GetTargetVelocityWorld converts a world-space linear velocity into a
// drive-space target velocity over one step of dt. The velocity is taken
// relative to the connected body. dt must be non-zero.
func (s *Space) GetTargetVelocityWorld(target mgl64.Vec3, dt float64) (mgl64.Vec3, error) {
	if err := s.check(); err != nil {
		return mgl64.Vec3{}, err
	}

	if body, ok := s.connected(); ok {
		linear, _ := body.Velocities()
		target = target.Sub(linear)
	}

	from := s.joint.Pose().Position
	to := derivative.NextPosition(from, target, dt)

	return derivative.LinearVelocity(s.targetPositionWorld(from), s.targetPositionWorld(to), dt), nil
}

// GetTargetAngularVelocityWorld converts a world-space angular velocity into
// a drive-space target angular velocity over one step of dt. When dt <= 0 the
// raw drive-space displacement is returned.
func (s *Space) GetTargetAngularVelocityWorld(target mgl64.Vec3, dt float64) (mgl64.Vec3, error) {
	if err := s.check(); err != nil {
		return mgl64.Vec3{}, err
	}

	if body, ok := s.connected(); ok {
		_, angular := body.Velocities()
		target = target.Sub(angular)
	}

	from := s.joint.Pose().Rotation
	to := derivative.NextRotation(from, target, dt)

	return derivative.AngularVelocity(s.targetRotationWorld(from), s.targetRotationWorld(to), dt), nil
}

// SetTargetVelocityWorld writes GetTargetVelocityWorld(target, dt) to the joint.
func (s *Space) SetTargetVelocityWorld(target mgl64.Vec3, dt float64) error {
	velocity, err := s.GetTargetVelocityWorld(target, dt)
	if err != nil {
		return err
	}

	s.joint.SetTargetVelocity(velocity)
	return nil
}

// SetTargetAngularVelocityWorld writes GetTargetAngularVelocityWorld(target, dt)
// to the joint.
func (s *Space) SetTargetAngularVelocityWorld(target mgl64.Vec3, dt float64) error {
	angularVelocity, err := s.GetTargetAngularVelocityWorld(target, dt)
	if err != nil {
		return err
	}

	s.joint.SetTargetAngularVelocity(angularVelocity)
	return nil
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
