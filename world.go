package plume

import (
	"github.com/akmonengine/plume/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

type World struct {
	// List of all rigid bodies in the world
	Bodies []*actor.RigidBody
	// Gravity acceleration (m/s², or N/kg)
	Gravity  mgl64.Vec2
	Substeps int
	Workers  int

	Events Events
}

func NewWorld() *World {
	return &World{
		Substeps: 1,
		Workers:  DEFAULT_WORKERS,
		Events:   NewEvents(),
	}
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

	w.Events.forgetBody(body)
}

func (w *World) Step(dt float64) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	w.Substeps = max(1, w.Substeps)
	h := dt / float64(w.Substeps)

	for s := 0; s < w.Substeps; s++ {
		// Phase 1: integrate velocities into predicted positions
		w.integrate(h)

		// Phase 2.0: Collision pair finding - Broad phase
		// Phase 2.1: SAT test + impulse resolution - narrow phase
		colliding := NarrowPhase(BroadPhase(w.Bodies))

		w.Events.recordCollisions(colliding)

		// Phase 3: commit the accumulated positional corrections,
		// one move per body regardless of how many pairs touched it
		w.applyCorrections()
	}

	w.Events.flush()
}

func (w *World) integrate(h float64) {
	task(w.Workers, w.Bodies, func(body *actor.RigidBody) {
		body.Integrate(h, w.Gravity)
	})
}

func (w *World) applyCorrections() {
	task(w.Workers, w.Bodies, func(body *actor.RigidBody) {
		body.ApplyCorrection()
	})
}
