// Package sat implements the Separating Axis Theorem (SAT) test for convex 2D polygons.
//
// Two convex shapes do not intersect iff there exists an axis onto which their
// projections do not overlap; for polygons the candidate axes are the edge
// normals of both shapes. CheckOverlap tests the edge normals of one polygon
// only: callers must run it in both directions (A's edges, then B's edges) and
// require overlap from both before treating a pair as colliding, since a
// separating axis may exist along only one polygon's edge set.
//
// References:
//   - Gottschalk, Lin, Manocha: "OBBTree: A Hierarchical Structure for Rapid
//     Interference Detection" (1996)
//   - Ericson: "Real-Time Collision Detection" (2004), chapter 5
package sat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection is the interval covered by a vertex set projected onto an axis.
type Projection struct {
	Min float64
	Max float64
}

// Overlap is the smallest-overlap axis found over one polygon's edge set:
// the penetration depth and the unit normal of the axis it was measured on.
type Overlap struct {
	Depth  float64
	Normal mgl64.Vec2
}

// EdgeNormal returns the outward unit normal of the edge from v1 to v2.
// Vertices wind counter-clockwise, so the outward perpendicular of the edge
// direction e is (e.y, -e.x). The result is always unit length, which the
// penetration depth computed by CheckOverlap depends on.
func EdgeNormal(v1, v2 mgl64.Vec2) mgl64.Vec2 {
	edge := v2.Sub(v1)

	return mgl64.Vec2{edge.Y(), -edge.X()}.Normalize()
}

// Project computes the minimum and maximum of the dot product of each vertex
// with the normal n. This is the standard SAT projection of a convex shape
// onto an axis; the result is exact for convex polygons.
func Project(vertices []mgl64.Vec2, n mgl64.Vec2) Projection {
	projection := Projection{Min: math.MaxFloat64, Max: -math.MaxFloat64}

	// project each vertex on the normal and keep the extremes
	for _, v := range vertices {
		proj := n.Dot(v)

		if proj < projection.Min {
			projection.Min = proj
		}
		if proj > projection.Max {
			projection.Max = proj
		}
	}

	return projection
}

// CheckOverlap projects both polygons onto every edge normal of polygon A and
// reports the axis of minimum overlap.
//
// Both vertex lists are in local space; B's projection is shifted by the
// projection of the displacement posB-posA instead of re-deriving B's
// vertices in world space. If any axis separates the projections
// (projB.Min >= projA.Max or projB.Max <= projA.Min) the shapes are
// definitively apart and the function returns false immediately.
//
// The overlap magnitude per axis is |projA.Max - projB.Min|. This is a
// simplification of the true penetration depth: it is only exact when
// projB.Min falls between projA.Min and projA.Max, and overestimates when one
// polygon's projection contains the other's. It is kept as-is because the
// resolution step's push-out direction and split depend on it.
func CheckOverlap(posA, posB mgl64.Vec2, verticesA, verticesB []mgl64.Vec2) (Overlap, bool) {
	d := posB.Sub(posA)
	minPenetration := math.MaxFloat64
	var normal mgl64.Vec2

	// for each edge of shape A, get its normal and project both shapes on it
	for v1, v2 := len(verticesA)-1, 0; v2 < len(verticesA); v1, v2 = v2, v2+1 {
		n := EdgeNormal(verticesA[v1], verticesA[v2])

		projA := Project(verticesA, n)
		projB := Project(verticesB, n)
		projD := n.Dot(d)

		projB.Min += projD
		projB.Max += projD

		// a separating axis proves the shapes are apart, no overlap
		if projB.Min >= projA.Max || projB.Max <= projA.Min {
			return Overlap{}, false
		}

		// keep the smallest overlap and the normal it was found on;
		// resolution later pushes the shapes apart along that normal
		if p := math.Abs(projA.Max - projB.Min); p < minPenetration {
			minPenetration = p
			normal = n
		}
	}

	return Overlap{Depth: minPenetration, Normal: normal}, true
}
