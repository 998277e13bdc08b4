package lousa

// Resample redistributes points along a polyline at uniform arc-length
// intervals. It walks the input accumulating Euclidean distance and emits
// an interpolated point at every multiple of spacing, starting with the
// first input point. The final input point is always part of the result
// even when it falls short of a full spacing, so the resampled path ends
// exactly where the stroke ended.
//
// Consecutive output points are never coincident: when the path retraces
// itself, a sample landing back on the previous one is dropped rather
// than duplicated.
//
// Degenerate inputs pass through: fewer than 2 points or a non-positive
// spacing return the input unchanged, and a polyline of coincident points
// collapses to its first point.
func Resample(points []Point, spacing float64) []Point {
	if len(points) < 2 || spacing <= 0 {
		return points
	}
	total := PathLength(points)
	if total == 0 {
		return points[:1]
	}

	out := make([]Point, 0, int(total/spacing)+2)
	out = append(out, points[0])

	target := spacing
	traveled := 0.0
	for i := 1; i < len(points); i++ {
		seg := points[i-1].Distance(points[i])
		if seg == 0 {
			continue
		}
		for target <= traveled+seg {
			t := (target - traveled) / seg
			p := points[i-1].Lerp(points[i], t)
			if p.Distance(out[len(out)-1]) > coincidentEps {
				out = append(out, p)
			}
			target += spacing
		}
		traveled += seg
	}

	// The last multiple of spacing rarely lands exactly on the stroke's
	// end; close the gap unless it already did.
	last := points[len(points)-1]
	if out[len(out)-1].Distance(last) > coincidentEps {
		out = append(out, last)
	}
	return out
}

// coincidentEps is the distance under which two points are considered
// the same sample. Guards resampling and ring closing against emitting
// zero-length segments from floating-point drift.
const coincidentEps = 1e-9
