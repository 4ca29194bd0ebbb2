package plume

import (
	"math"

	"github.com/akmonengine/plume/actor"
	"github.com/akmonengine/plume/sat"
)

// Pair represents a pair of rigid bodies that potentially collide
type Pair struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

// BroadPhase performs broad-phase collision detection using AABB overlap tests
// It returns pairs of bodies whose bounds overlap and might be colliding
// This is an O(n²) brute-force approach suitable for small numbers of bodies
func BroadPhase(bodies []*actor.RigidBody) []Pair {
	pairs := make([]Pair, 0, len(bodies)/2)

	for i, bodyA := range bodies {
		for _, bodyB := range bodies[i+1:] {
			// two immovable bodies never need resolution
			if bodyA.MassInverse == 0 && bodyB.MassInverse == 0 {
				continue
			}
			if !bodyA.Shape.GetBounds().Overlaps(bodyB.Shape.GetBounds()) {
				continue
			}

			pairs = append(pairs, Pair{BodyA: bodyA, BodyB: bodyB})
		}
	}

	return pairs
}

// NarrowPhase runs the SAT test on each candidate pair and resolves the
// colliding ones. It returns the pairs that actually collided, for event
// recording. Pairs routinely share bodies, and resolution is an
// unsynchronized read-modify-write of per-body state, so the pairs are
// processed sequentially.
func NarrowPhase(pairs []Pair) []Pair {
	colliding := make([]Pair, 0, len(pairs))

	for _, pair := range pairs {
		overlap1, overlap2, ok := detect(pair.BodyA, pair.BodyB)
		if !ok {
			continue
		}

		colliding = append(colliding, pair)

		// trigger bodies report overlaps but are never resolved against
		if pair.BodyA.IsTrigger || pair.BodyB.IsTrigger {
			continue
		}

		resolve(pair.BodyA, pair.BodyB, overlap1, overlap2)
	}

	return colliding
}

// SolveCollision tests a single pair of bodies for collision and resolves it.
//
// When the pair collides, the velocities of both bodies are mutated by an
// impulse along the minimum translation vector, and the positional correction
// is accumulated into each body's OverlapAccumulator (not applied; see
// RigidBody.ApplyCorrection). When any guard rejects the pair - both bodies
// immovable, bounds apart, or a separating axis in either direction - nothing
// is mutated.
func SolveCollision(bodyA, bodyB *actor.RigidBody) {
	overlap1, overlap2, ok := detect(bodyA, bodyB)
	if !ok {
		return
	}

	resolve(bodyA, bodyB, overlap1, overlap2)
}

// detect runs the guard conditions and the SAT test in both directions:
// once over A's edge normals and once over B's. Both must report overlap
// before the pair counts as colliding.
func detect(bodyA, bodyB *actor.RigidBody) (sat.Overlap, sat.Overlap, bool) {
	if bodyA.MassInverse == 0 && bodyB.MassInverse == 0 {
		return sat.Overlap{}, sat.Overlap{}, false
	}
	if !bodyA.Shape.GetBounds().Overlaps(bodyB.Shape.GetBounds()) {
		return sat.Overlap{}, sat.Overlap{}, false
	}

	overlap1, ok := sat.CheckOverlap(bodyA.Position, bodyB.Position, bodyA.Shape.Vertices, bodyB.Shape.Vertices)
	if !ok {
		return sat.Overlap{}, sat.Overlap{}, false
	}

	overlap2, ok := sat.CheckOverlap(bodyB.Position, bodyA.Position, bodyB.Shape.Vertices, bodyA.Shape.Vertices)
	if !ok {
		return sat.Overlap{}, sat.Overlap{}, false
	}

	return overlap1, overlap2, true
}

// resolve applies the collision response for a pair known to be colliding.
//
// The globally smaller of the two overlap depths is split between the bodies
// proportionally to the other body's inverse mass and accumulated as deferred
// positional correction. The impulse assumes a perfectly elastic collision
// (the factor of 2 encodes restitution = 1). MassInverse sums to a nonzero
// value here: the only zero-sum case is both-static, which detect rejects.
func resolve(bodyA, bodyB *actor.RigidBody, overlap1, overlap2 sat.Overlap) {
	d := math.Min(overlap1.Depth, overlap2.Depth)

	n := overlap2.Normal
	if overlap1.Depth < overlap2.Depth {
		n = overlap1.Normal
	}

	massInverseSum := bodyA.MassInverse + bodyB.MassInverse

	d1 := d * bodyA.MassInverse / massInverseSum
	d2 := d - d1

	// overlap2's normal was derived from B's edges, so its direction
	// convention is opposite to overlap1's: negate the split to keep the
	// push-out pointing apart
	if overlap1.Depth >= overlap2.Depth {
		d1 = -d1
		d2 = -d2
	}

	vRel := bodyA.Velocity.Sub(bodyB.Velocity)

	j := -n.Dot(vRel) * 2 / massInverseSum

	bodyA.Velocity = bodyA.Velocity.Add(n.Mul(j * bodyA.MassInverse))
	bodyB.Velocity = bodyB.Velocity.Sub(n.Mul(j * bodyB.MassInverse))

	// don't move the bodies apart immediately but instead accumulate the
	// overlap resolution and apply it later in one go
	bodyA.OverlapAccumulator = bodyA.OverlapAccumulator.Sub(n.Mul(d1))
	bodyB.OverlapAccumulator = bodyB.OverlapAccumulator.Add(n.Mul(d2))
}
