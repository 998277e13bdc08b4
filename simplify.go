package lousa

// Simplify reduces a polyline with the Ramer-Douglas-Peucker algorithm:
// any run of points that stays within epsilon of the chord through its
// endpoints collapses to just those endpoints; runs that deviate further
// split at the most distant point and reduce again on both sides.
//
// The result is an index-subsequence of the input that always retains
// the first and last point, never grows, and is idempotent: simplifying
// the output again with the same epsilon returns it unchanged. When
// several points tie for the maximum deviation the earliest one in
// sequence order wins, so the result is deterministic.
//
// Inputs with fewer than 2 points are returned unchanged. Epsilon is
// normally strictly positive; a non-positive epsilon keeps every point
// with any deviation at all.
//
// The divide-and-conquer runs on an explicit worklist of index ranges
// over the input buffer, so pathological inputs cannot exhaust the call
// stack and no sub-slices are copied.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) < 2 {
		return points
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	type span struct{ start, end int }
	work := make([]span, 0, 32)
	work = append(work, span{0, len(points) - 1})

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		if s.end-s.start < 2 {
			continue
		}

		a, b := points[s.start], points[s.end]
		maxDist := -1.0
		maxIdx := -1
		for i := s.start + 1; i < s.end; i++ {
			// Strict > keeps the first index on ties.
			if d := PerpendicularDistance(points[i], a, b); d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxDist > epsilon {
			keep[maxIdx] = true
			// Left half last so it pops first and output order is free.
			work = append(work, span{maxIdx, s.end}, span{s.start, maxIdx})
		}
	}

	out := make([]Point, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}
