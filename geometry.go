package lousa

import "math"

// Scalar helpers shared by the preprocessing, simplification, and fitting
// stages. All functions here are pure and total over their inputs.

// PerpendicularDistance returns the distance from p to the infinite line
// through a and b. When a and b coincide there is no line direction, and
// the function degrades to the point-to-point distance from p to a.
func PerpendicularDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	if ab.IsZero() {
		return p.Distance(a)
	}
	// Parallelogram area over base length.
	return math.Abs(ab.Cross(p.Sub(a))) / ab.Length()
}

// PathLength returns the cumulative Euclidean arc length of a polyline.
// Sequences with fewer than 2 points have length 0.
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	return total
}

// PolygonArea returns the signed area of a polygon via the shoelace
// formula. The sign indicates winding: with Y pointing down, clockwise
// rings have positive area. A duplicated closing vertex contributes
// nothing, so open and explicitly closed rings yield the same area.
// Fewer than 3 vertices yield 0.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
