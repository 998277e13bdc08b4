package lousa

import (
	"time"

	"github.com/google/uuid"
)

// Sample is one raw captured point together with its capture time,
// measured from the start of the gesture. Timestamps are preserved on
// raw samples but unused by the pipeline stages.
type Sample struct {
	Point Point
	T     time.Duration
}

// Stroke accumulates the raw samples of one continuous pointer gesture,
// from press to release. Append records samples during the drag;
// Finalize runs the pipeline once at release and caches the result for
// the stroke's lifetime.
//
// A Stroke belongs to a single gesture and is not safe for concurrent
// use.
type Stroke struct {
	// ID identifies the stroke across the host application.
	ID uuid.UUID

	// Color and Width are the drawing attributes the host captured the
	// stroke with. The pipeline ignores them.
	Color string
	Width float64

	// CreatedAt is the wall-clock time the stroke started.
	CreatedAt time.Time

	samples   []Sample
	finalized bool
	result    Result
}

// NewStroke creates an empty stroke with a fresh ID.
func NewStroke() *Stroke {
	return &Stroke{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
}

// Append records a raw sample. A sample whose position exactly equals
// the previously recorded one is skipped, so dragging in place does not
// grow the stroke. Appending to a finalized stroke is a no-op: the
// gesture has ended and the cached result stays valid.
func (s *Stroke) Append(p Point, t time.Duration) {
	if s.finalized {
		return
	}
	if n := len(s.samples); n > 0 && s.samples[n-1].Point == p {
		return
	}
	s.samples = append(s.samples, Sample{Point: p, T: t})
}

// Len returns the number of recorded samples.
func (s *Stroke) Len() int {
	return len(s.samples)
}

// Samples returns a copy of the raw samples in capture order.
func (s *Stroke) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Points returns a copy of the raw sample positions in capture order.
func (s *Stroke) Points() []Point {
	out := make([]Point, len(s.samples))
	for i, smp := range s.samples {
		out[i] = smp.Point
	}
	return out
}

// Finalize runs the pipeline on the recorded samples and caches the
// result. Subsequent calls return the cached result regardless of cfg;
// derived attributes are computed once per stroke lifetime.
func (s *Stroke) Finalize(cfg Config) Result {
	if !s.finalized {
		s.result = Recognize(s.Points(), cfg)
		s.finalized = true
	}
	return s.result
}

// Finalized reports whether the stroke has been classified.
func (s *Stroke) Finalized() bool {
	return s.finalized
}

// Result returns the cached pipeline result. It is the zero Result
// before Finalize.
func (s *Stroke) Result() Result {
	return s.result
}

// Processed returns the preprocessed points. Nil before Finalize.
func (s *Stroke) Processed() []Point {
	return s.result.Processed
}

// Simplified returns the simplified points. Nil before Finalize.
func (s *Stroke) Simplified() []Point {
	return s.result.Simplified
}

// Closed reports whether the processed stroke forms a closed ring.
// False before Finalize.
func (s *Stroke) Closed() bool {
	return s.result.Closed
}

// Shape returns the classified canonical shape. Nil before Finalize.
func (s *Stroke) Shape() Shape {
	return s.result.Shape
}

// -------------------------------------------------------------------
// Preprocessing
// -------------------------------------------------------------------

// Dedupe drops every point within epsilon of the immediately preceding
// kept point, guaranteeing that no zero-length segment feeds later
// stages. A non-positive epsilon drops only exactly coincident points.
// Dedupe is idempotent: its output passes through unchanged.
func Dedupe(points []Point, epsilon float64) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if n := len(out); n > 0 {
			last := out[n-1]
			if epsilon > 0 {
				if p.Distance(last) <= epsilon {
					continue
				}
			} else if p == last {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// IsClosedPath reports whether a point sequence forms a closed ring:
// at least 3 points with the first and last no farther apart than
// threshold. Reversing the sequence does not change the answer.
func IsClosedPath(points []Point, threshold float64) bool {
	if len(points) < 3 {
		return false
	}
	return points[0].Distance(points[len(points)-1]) <= threshold
}

// ClosePath appends a copy of the first point so the sequence ends
// exactly where it starts. Sequences of fewer than 2 points, or ones
// already ending on their first point, pass through unchanged.
func ClosePath(points []Point) []Point {
	if len(points) < 2 {
		return points
	}
	if points[len(points)-1].Distance(points[0]) <= coincidentEps {
		return points
	}
	out := make([]Point, len(points)+1)
	copy(out, points)
	out[len(points)] = points[0]
	return out
}

// Preprocess runs the capture-side stages on raw positions: dedupe,
// closure detection, optional ring closing, and arc-length resampling.
// It returns the processed points and the closure flag. No two
// consecutive processed points coincide, even when the stroke retraces
// itself.
//
// Fewer than 2 points after deduplication short-circuit: the trivial
// sequence is returned unchanged with closed == false, and downstream
// stages tolerate it without error.
func Preprocess(points []Point, cfg Config) ([]Point, bool) {
	pts := Dedupe(points, cfg.DedupEpsilon)
	if len(pts) < 2 {
		return pts, false
	}
	closed := IsClosedPath(pts, cfg.CloseThreshold)
	if closed && cfg.CloseRing {
		pts = ClosePath(pts)
	}
	pts = Resample(pts, cfg.TargetSpacing)
	if closed && cfg.CloseRing {
		// Resampling rarely lands the final emitted point back on the
		// start; snap the ring shut again.
		pts = ClosePath(pts)
	}
	return pts, closed
}
