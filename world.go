package drive

import (
	"errors"
	"fmt"

	"github.com/akmonengine/drive/actor"
	"github.com/akmonengine/drive/constraint"
	"github.com/google/uuid"
)

// Err* are the errors exported by this package.
var (
	ErrInvalidDeltaTime   = errors.New("delta time must be positive")
	ErrUnknownDrive       = errors.New("unknown drive")
	ErrJointAlreadyDriven = errors.New("joint already has a drive")
)

type World struct {
	// List of all kinematic bodies moved by the world
	Bodies []*actor.RigidBody
	// List of all drives applied every step
	Drives  []*Drive
	Workers int

	Logger Logger
	Events Events
}

// NewWorld creates an empty world from config.
func NewWorld(config Config) *World {
	return &World{
		Workers: max(DEFAULT_WORKERS, config.Workers),
		Logger:  newLogger(config),
		Events:  NewEvents(),
	}
}

func (w *World) logger() Logger {
	if w.Logger == nil {
		return NewNopLogger()
	}
	return w.Logger
}

// AddBody adds a rigid body to the world
func (w *World) AddBody(body *actor.RigidBody) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a rigid body from the world
func (w *World) RemoveBody(body *actor.RigidBody) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}
}

// AddDrive snapshots j and registers a drive for it. The drive starts with
// the joint's current pose as its target, so it holds still until a target is
// set.
//
// A joint takes at most one drive: drives write their targets concurrently
// during Step, so a second drive on the same joint is rejected with
// ErrJointAlreadyDriven. Joints are matched with ==.
func (w *World) AddDrive(j constraint.Joint) (*Drive, error) {
	if j != nil {
		for _, d := range w.Drives {
			if d.Joint == j {
				return nil, fmt.Errorf("add drive: %w (drive %s)", ErrJointAlreadyDriven, d.ID)
			}
		}
	}

	d, err := newDrive(j)
	if err != nil {
		return nil, fmt.Errorf("add drive: %w", err)
	}

	w.Drives = append(w.Drives, d)
	w.Events.emit(DriveAddedEvent{Drive: d})
	w.logger().Infof("drive %s added", d.ID)

	return d, nil
}

// Drive returns the drive registered under id.
func (w *World) Drive(id uuid.UUID) (*Drive, bool) {
	for _, d := range w.Drives {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// RemoveDrive unregisters the drive with the given id. The joint keeps the
// last targets written to it.
func (w *World) RemoveDrive(id uuid.UUID) error {
	k := -1
	for i, d := range w.Drives {
		if d.ID == id {
			k = i
			break
		}
	}

	if k == -1 {
		return fmt.Errorf("remove drive %s: %w", id, ErrUnknownDrive)
	}

	d := w.Drives[k]
	w.Drives = append(w.Drives[:k], w.Drives[k+1:]...)
	w.Events.emit(DriveRemovedEvent{Drive: d})
	w.logger().Infof("drive %s removed", id)

	return nil
}

// Step applies every valid drive, then moves the bodies by one step of dt.
// The returned error joins the errors of the drives that became invalid
// during this step; they are skipped from then on.
func (w *World) Step(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("step %v: %w", dt, ErrInvalidDeltaTime)
	}
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	drives := w.activeDrives()

	// Phase 1: rebuild stale snapshots and write the drive targets
	w.applyDrives(dt, drives)

	// Phase 2: report what happened to each drive
	err := w.report(drives)

	// Phase 3: move the bodies
	w.integrate(dt)

	w.Events.flush()

	return err
}

func (w *World) activeDrives() []*Drive {
	drives := make([]*Drive, 0, len(w.Drives))
	for _, d := range w.Drives {
		if d.Valid() {
			drives = append(drives, d)
		}
	}
	return drives
}

func (w *World) applyDrives(dt float64, drives []*Drive) {
	task(w.Workers, drives, func(d *Drive) {
		d.step(dt)
	})
}

// report is sequential: events and logs must keep the drives' order.
func (w *World) report(drives []*Drive) error {
	var errs []error

	for _, d := range drives {
		if d.rebuilt {
			w.Events.emit(DriveRebuiltEvent{Drive: d})
			w.logger().Debugf("drive %s rebuilt after reconfiguration", d.ID)
		}

		if d.err != nil {
			w.Events.emit(DriveInvalidEvent{Drive: d, Err: d.err})
			w.logger().Warnf("drive %s disabled: %v", d.ID, d.err)
			errs = append(errs, fmt.Errorf("drive %s: %w", d.ID, d.err))
		}
	}

	return errors.Join(errs...)
}

func (w *World) integrate(dt float64) {
	task(w.Workers, w.Bodies, func(body *actor.RigidBody) {
		body.Integrate(dt)
	})
}
