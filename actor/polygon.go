package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Polygon represents a convex polygon collision shape.
// Vertices are expressed in the shape's local space, in counter-clockwise
// winding order, and the list is treated as cyclic (the last vertex connects
// back to the first). At least 3 vertices are required; this is a caller
// precondition and is not validated here.
type Polygon struct {
	Vertices []mgl64.Vec2
	bounds   Bounds
}

// NewBox creates a rectangular polygon from its half-extents.
func NewBox(halfExtents mgl64.Vec2) *Polygon {
	hx, hy := halfExtents.X(), halfExtents.Y()

	return &Polygon{
		Vertices: []mgl64.Vec2{
			{-hx, -hy},
			{hx, -hy},
			{hx, hy},
			{-hx, hy},
		},
	}
}

// ComputeBounds calculates the axis-aligned bounds for the polygon
// positioned at the given world position.
func (p *Polygon) ComputeBounds(position mgl64.Vec2) {
	min := p.Vertices[0]
	max := p.Vertices[0]

	for _, v := range p.Vertices[1:] {
		min = mgl64.Vec2{math.Min(min.X(), v.X()), math.Min(min.Y(), v.Y())}
		max = mgl64.Vec2{math.Max(max.X(), v.X()), math.Max(max.Y(), v.Y())}
	}

	p.bounds = Bounds{
		TopLeft:     position.Add(min),
		BottomRight: position.Add(max),
	}
}

func (p *Polygon) GetBounds() Bounds {
	return p.bounds
}

// ComputeMass calculates mass data for the polygon given a density.
// The area comes from the shoelace formula, which is positive for the
// counter-clockwise winding order.
func (p *Polygon) ComputeMass(density float64) float64 {
	var area float64

	for v1, v2 := len(p.Vertices)-1, 0; v2 < len(p.Vertices); v1, v2 = v2, v2+1 {
		area += p.Vertices[v1].X()*p.Vertices[v2].Y() - p.Vertices[v2].X()*p.Vertices[v1].Y()
	}
	area /= 2

	return density * area
}
