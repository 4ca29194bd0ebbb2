package actor

import "github.com/go-gl/mathgl/mgl64"

// Bounds represents an axis-aligned bounding rectangle.
// TopLeft is the minimum corner and BottomRight the maximum corner:
// TopLeft.X() <= BottomRight.X() and TopLeft.Y() <= BottomRight.Y().
type Bounds struct {
	TopLeft     mgl64.Vec2
	BottomRight mgl64.Vec2
}

// Overlaps checks if two bounds rectangles overlap.
// Comparisons are strict: rectangles that merely touch on an edge do not
// overlap, and degenerate (zero-extent) bounds never overlap themselves.
func (b Bounds) Overlaps(other Bounds) bool {
	if b.BottomRight.X() <= other.TopLeft.X() {
		return false
	}
	if b.TopLeft.X() >= other.BottomRight.X() {
		return false
	}
	if b.BottomRight.Y() <= other.TopLeft.Y() {
		return false
	}
	if b.TopLeft.Y() >= other.BottomRight.Y() {
		return false
	}

	return true
}
