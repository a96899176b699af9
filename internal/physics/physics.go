// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Within reports whether two points are strictly closer than dist.
func Within(x1, y1, x2, y2, dist float64) bool {
	return DistanceSquared(x1, y1, x2, y2) < dist*dist
}

// PointInBox reports whether a point lies strictly inside the axis-aligned box
// centred on (cx, cy) with the given half extent on both axes.
func PointInBox(px, py, cx, cy, half float64) bool {
	return math.Abs(px-cx) < half && math.Abs(py-cy) < half
}

// Approach moves current toward target by the given fraction of the gap.
// Fractions in [0,1] never overshoot.
func Approach(current, target, fraction float64) float64 {
	return current + (target-current)*fraction
}
