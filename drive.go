// Package drive steers 6-DOF joints toward world- or parent-relative
// targets. A World owns a set of drives, converts their targets into each
// joint's drive space every step, and writes the result to the joint for a
// solver to read.
package drive

import (
	"github.com/akmonengine/drive/actor"
	"github.com/akmonengine/drive/constraint"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Drive binds a joint to the pose and velocities it should be driven toward.
type Drive struct {
	ID    uuid.UUID
	Joint constraint.Joint

	// Target is the pose the joint's owner should reach. Its scale is ignored.
	Target actor.Transform
	// Velocity and AngularVelocity are world-space target velocities.
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	// Local expresses Target relative to the connected body.
	Local bool
	// DeriveVelocity replaces the velocity targets with the ones that carry
	// the previous drive target to the new one over the step.
	DeriveVelocity bool

	space   *constraint.Space
	rebuilt bool
	err     error
}

func newDrive(j constraint.Joint) (*Drive, error) {
	space, err := constraint.NewSpace(j)
	if err != nil {
		return nil, err
	}

	pose := j.Pose()
	return &Drive{
		ID:     uuid.New(),
		Joint:  j,
		Target: actor.NewTransformPR(pose.Position, pose.Rotation),
		space:  space,
	}, nil
}

// Space returns the snapshot the drive currently converts targets against.
func (d *Drive) Space() *constraint.Space {
	return d.space
}

// Err returns the error that stopped the drive, nil while it is applied.
func (d *Drive) Err() error {
	return d.err
}

func (d *Drive) Valid() bool {
	return d.err == nil
}

// SetTarget sets the pose the joint's owner should reach.
func (d *Drive) SetTarget(position mgl64.Vec3, rotation mgl64.Quat) {
	d.Target = actor.NewTransformPR(position, rotation)
}

// SetTargetVelocity sets the world-space velocities the owner should move at.
func (d *Drive) SetTargetVelocity(velocity, angularVelocity mgl64.Vec3) {
	d.Velocity = velocity
	d.AngularVelocity = angularVelocity
}

// step rebuilds the snapshot when the joint was reconfigured, then writes
// the converted targets to the joint.
func (d *Drive) step(dt float64) {
	d.rebuilt = false

	if d.space.Stale() {
		space, err := constraint.NewSpace(d.Joint)
		if err != nil {
			d.err = err
			return
		}
		d.space = space
		d.rebuilt = true
	}

	d.err = d.apply(dt)
}

func (d *Drive) apply(dt float64) error {
	position, err := d.targetPosition()
	if err != nil {
		return err
	}

	rotation, err := d.targetRotation()
	if err != nil {
		return err
	}

	if d.DeriveVelocity {
		if err := constraint.SetTargetPositionAndVelocity(d.Joint, position, dt); err != nil {
			return err
		}
		return constraint.SetTargetRotationAndVelocity(d.Joint, rotation, dt)
	}

	d.Joint.SetTargetPosition(position)
	d.Joint.SetTargetRotation(rotation)

	if err := d.space.SetTargetVelocityWorld(d.Velocity, dt); err != nil {
		return err
	}
	return d.space.SetTargetAngularVelocityWorld(d.AngularVelocity, dt)
}

func (d *Drive) targetPosition() (mgl64.Vec3, error) {
	if d.Local {
		return d.space.GetTargetPositionLocal(d.Target.Position)
	}
	return d.space.GetTargetPositionWorld(d.Target.Position)
}

func (d *Drive) targetRotation() (mgl64.Quat, error) {
	if d.Local {
		return d.space.GetTargetRotationLocal(d.Target.Rotation)
	}
	return d.space.GetTargetRotationWorld(d.Target.Rotation)
}
