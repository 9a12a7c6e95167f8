package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/drive"
	"github.com/akmonengine/drive/actor"
	"github.com/akmonengine/drive/constraint"
	"github.com/akmonengine/drive/rotation"
	"github.com/go-gl/mathgl/mgl64"
	"zappem.net/pub/math/geom"
)

// SetupScene creates a static shoulder and a forearm hinged to it
func SetupScene() (*drive.World, *actor.RigidBody, *constraint.ConfigurableJoint) {
	config := drive.DefaultConfig()
	config.Workers = 2
	config.LogPrefix = "arm"
	world := drive.NewWorld(config)

	shoulder := actor.NewRigidBody(actor.NewTransformPR(mgl64.Vec3{0, 2, 0}, mgl64.QuatIdent()), actor.BodyTypeStatic)
	forearm := actor.NewRigidBody(actor.NewTransformPR(mgl64.Vec3{1, 2, 0}, mgl64.QuatIdent()), actor.BodyTypeKinematic)
	// the forearm is moved by the solver stand-in in SwingArm, not integrated
	world.AddBody(shoulder)

	jointConfig := constraint.DefaultJointConfig()
	jointConfig.Axis = mgl64.Vec3{0, 0, 1}
	jointConfig.SecondaryAxis = mgl64.Vec3{0, 1, 0}
	jointConfig.Anchor = mgl64.Vec3{-1, 0, 0}
	jointConfig.LinearLimit = 0.25
	joint := constraint.NewConfigurableJoint(forearm, shoulder, jointConfig)
	joint.SetWorldConnectedAnchor(joint.WorldAnchor())
	// a hinge: twist around the primary axis only
	joint.SetMotion(constraint.MotionLimited, constraint.MotionLocked)
	limits := joint.AngularLimits()
	limits.AngularXMotion = constraint.MotionLimited
	limits.LowAngularXLimit = geom.Degrees(-30)
	limits.HighAngularXLimit = geom.Degrees(30)
	limits.CopyTo(joint)

	return world, forearm, joint
}

func printEvent(event drive.Event) {
	switch e := event.(type) {
	case drive.DriveAddedEvent:
		fmt.Printf("  event: drive %s added\n", e.Drive.ID)
	case drive.DriveRebuiltEvent:
		fmt.Printf("  event: drive %s rebuilt\n", e.Drive.ID)
	case drive.DriveInvalidEvent:
		fmt.Printf("  event: drive %s invalid (%v)\n", e.Drive.ID, e.Err)
	case drive.DriveRemovedEvent:
		fmt.Printf("  event: drive %s removed\n", e.Drive.ID)
	}
}

// SwingArm drives the forearm along a swing around the shoulder hinge
func SwingArm() {
	fmt.Println("Driven arm: swing around the shoulder")
	fmt.Println("=====================================")

	world, forearm, joint := SetupScene()
	limits := joint.AngularLimits()
	fmt.Printf("Twist limits: %.0f° to %.0f° (%s)\n", limits.LowAngularXLimit.Deg(), limits.HighAngularXLimit.Deg(), limits.AngularXMotion)
	for _, eventType := range []drive.EventType{drive.DRIVE_ADDED, drive.DRIVE_REBUILT, drive.DRIVE_INVALID, drive.DRIVE_REMOVED} {
		world.Events.Subscribe(eventType, printEvent)
	}

	d, err := world.AddDrive(joint)
	if err != nil {
		fmt.Println("add drive:", err)
		return
	}
	d.DeriveVelocity = true

	const dt float64 = 1.0 / 60.0
	const maxSteps int = 120

	for step := 0; step < maxSteps; step++ {
		angle := 0.5 * math.Sin(2*math.Pi*float64(step)*dt)
		swing := mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1})
		position := mgl64.Vec3{1, 2, 0}.Add(mgl64.Vec3{0, 0.1 * math.Sin(angle), 0})

		position = joint.LimitedPosition(position)
		d.SetTarget(position, swing)

		if step == maxSteps/2 {
			// re-aim the hinge halfway through: the snapshot gets rebuilt
			config := joint.Config()
			config.SecondaryAxis = mgl64.Vec3{1, 1, 0}
			joint.Configure(config)
		}

		if err := world.Step(dt); err != nil {
			fmt.Println("step:", err)
			return
		}

		// a perfectly stiff solver reaches the target within the step
		forearm.MoveTo(actor.NewTransformPR(position, swing), dt)

		if step%20 == 0 {
			targets := joint.Targets()
			degrees, axis := rotation.ToAngleAxis(targets.Rotation)
			fmt.Printf("--- STEP %d ---\n", step+1)
			fmt.Printf("  Target position: %v\n", targets.Position)
			fmt.Printf("  Target rotation: %.3f° around %v\n", degrees, axis)
			fmt.Printf("  Target velocity: %v\n", targets.Velocity)
			fmt.Printf("  Target angular velocity: %v\n", targets.AngularVelocity)
		}
	}

	joint.Destroy()
	if err := world.Step(dt); err != nil {
		fmt.Println("step:", err)
	}

	if err := world.RemoveDrive(d.ID); err != nil {
		fmt.Println("remove drive:", err)
	}
	_ = world.Step(dt)

	fmt.Println("Done!")
}

func main() {
	SwingArm()
}
