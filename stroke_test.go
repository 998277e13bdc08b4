package lousa

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestNewStroke(t *testing.T) {
	s1 := NewStroke()
	s2 := NewStroke()

	if s1.ID == uuid.Nil {
		t.Error("ID = uuid.Nil, want a fresh ID")
	}
	if s1.ID == s2.ID {
		t.Errorf("two strokes share ID %v", s1.ID)
	}
	if s1.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
	if s1.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s1.Len())
	}
	if s1.Finalized() {
		t.Error("Finalized() = true for a new stroke")
	}
}

func TestStrokeAppend(t *testing.T) {
	s := NewStroke()

	s.Append(Pt(0, 0), 0)
	s.Append(Pt(5, 5), 10*time.Millisecond)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	// Exact repeat of the previous position is dropped.
	s.Append(Pt(5, 5), 20*time.Millisecond)
	if s.Len() != 2 {
		t.Errorf("Len() = %d after duplicate append, want 2", s.Len())
	}

	// Revisiting an earlier position is a real sample.
	s.Append(Pt(0, 0), 30*time.Millisecond)
	if s.Len() != 3 {
		t.Errorf("Len() = %d after revisit, want 3", s.Len())
	}
}

func TestStrokeAppendAfterFinalize(t *testing.T) {
	s := NewStroke()
	s.Append(Pt(0, 0), 0)
	s.Append(Pt(100, 0), 50*time.Millisecond)
	s.Finalize(DefaultConfig())

	s.Append(Pt(200, 200), 100*time.Millisecond)
	if s.Len() != 2 {
		t.Errorf("Len() = %d after appending to a finalized stroke, want 2", s.Len())
	}
}

func TestStrokeSamplesAndPointsCopy(t *testing.T) {
	s := NewStroke()
	s.Append(Pt(1, 2), 0)
	s.Append(Pt(3, 4), 5*time.Millisecond)

	smps := s.Samples()
	smps[0].Point = Pt(-1, -1)
	if got := s.Samples()[0].Point; got != Pt(1, 2) {
		t.Errorf("sample after mutating returned slice = %v, want (1, 2)", got)
	}

	pts := s.Points()
	pts[1] = Pt(-1, -1)
	if got := s.Points()[1]; got != Pt(3, 4) {
		t.Errorf("point after mutating returned slice = %v, want (3, 4)", got)
	}
	if want := []Point{Pt(1, 2), Pt(3, 4)}; !cmp.Equal(want, s.Points()) {
		t.Errorf("Points() = %v, want %v", s.Points(), want)
	}
}

func TestStrokeFinalizeCaches(t *testing.T) {
	s := NewStroke()
	for i := 0; i <= 20; i++ {
		s.Append(Pt(float64(i)*5, 0), time.Duration(i)*5*time.Millisecond)
	}

	first := s.Finalize(DefaultConfig())
	if !s.Finalized() {
		t.Fatal("Finalized() = false after Finalize")
	}
	if first.Kind != KindLine {
		t.Fatalf("Kind = %v, want line", first.Kind)
	}

	// A second Finalize with wildly different tolerances must return the
	// cached result untouched.
	loose := DefaultConfig()
	loose.Epsilon = 200
	loose.MaxLineVertices = 2
	second := s.Finalize(loose)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Finalize changed the result (-first +second):\n%s", diff)
	}
}

func TestStrokeAccessors(t *testing.T) {
	s := NewStroke()
	s.Append(Pt(0, 0), 0)
	s.Append(Pt(100, 0), 20*time.Millisecond)

	if s.Shape() != nil {
		t.Errorf("Shape() = %v before Finalize, want nil", s.Shape())
	}
	if s.Processed() != nil || s.Simplified() != nil {
		t.Error("Processed/Simplified non-nil before Finalize")
	}
	if s.Closed() {
		t.Error("Closed() = true before Finalize")
	}

	res := s.Finalize(DefaultConfig())

	if s.Shape() == nil {
		t.Fatal("Shape() = nil after Finalize")
	}
	if diff := cmp.Diff(res, s.Result()); diff != "" {
		t.Errorf("Result() differs from Finalize return (-want +got):\n%s", diff)
	}
	if !cmp.Equal(res.Processed, s.Processed()) || !cmp.Equal(res.Simplified, s.Simplified()) {
		t.Error("accessors disagree with the cached result")
	}
	if s.Closed() != res.Closed {
		t.Errorf("Closed() = %v, want %v", s.Closed(), res.Closed)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		epsilon float64
		want    []Point
	}{
		{
			name:    "empty",
			points:  nil,
			epsilon: 0,
			want:    []Point{},
		},
		{
			name:    "exact duplicates only",
			points:  []Point{Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(1, 0), Pt(2, 0)},
			epsilon: 0,
			want:    []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)},
		},
		{
			name:    "near duplicates survive zero epsilon",
			points:  []Point{Pt(0, 0), Pt(0.001, 0), Pt(0.002, 0)},
			epsilon: 0,
			want:    []Point{Pt(0, 0), Pt(0.001, 0), Pt(0.002, 0)},
		},
		{
			name:    "radius drops near points",
			points:  []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(10, 0)},
			epsilon: 1.5,
			want:    []Point{Pt(0, 0), Pt(2, 0), Pt(10, 0)},
		},
		{
			name:    "distance measured from last kept point",
			points:  []Point{Pt(0, 0), Pt(0.5, 0), Pt(1.0, 0)},
			epsilon: 0.6,
			want:    []Point{Pt(0, 0), Pt(1.0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.points, tt.epsilon)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Dedupe mismatch (-want +got):\n%s", diff)
			}

			// Idempotence: a deduplicated sequence passes through.
			again := Dedupe(got, tt.epsilon)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("Dedupe not idempotent (-first +second):\n%s", diff)
			}

			// Every surviving gap exceeds the radius.
			for i := 1; i < len(got); i++ {
				if d := got[i].Distance(got[i-1]); tt.epsilon > 0 && d <= tt.epsilon {
					t.Errorf("gap %d-%d = %v, want > %v", i-1, i, d, tt.epsilon)
				}
			}
		})
	}
}

func TestIsClosedPath(t *testing.T) {
	tests := []struct {
		name      string
		points    []Point
		threshold float64
		want      bool
	}{
		{
			name:      "ring with small gap",
			points:    []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100), Pt(0, 5)},
			threshold: 20,
			want:      true,
		},
		{
			name:      "gap exactly at threshold",
			points:    []Point{Pt(0, 0), Pt(10, 10), Pt(0, 20)},
			threshold: 20,
			want:      true,
		},
		{
			name:      "open stroke",
			points:    []Point{Pt(0, 0), Pt(50, 0), Pt(100, 0)},
			threshold: 20,
			want:      false,
		},
		{
			name:      "two points never close",
			points:    []Point{Pt(0, 0), Pt(1, 0)},
			threshold: 20,
			want:      false,
		},
		{
			name:      "empty",
			points:    nil,
			threshold: 20,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClosedPath(tt.points, tt.threshold); got != tt.want {
				t.Errorf("IsClosedPath() = %v, want %v", got, tt.want)
			}

			// Closure is direction-independent.
			rev := make([]Point, len(tt.points))
			for i, p := range tt.points {
				rev[len(rev)-1-i] = p
			}
			if got := IsClosedPath(rev, tt.threshold); got != tt.want {
				t.Errorf("IsClosedPath(reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClosePath(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   []Point
	}{
		{
			name:   "appends first point",
			points: []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 5)},
			want:   []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 5), Pt(0, 0)},
		},
		{
			name:   "already closed unchanged",
			points: []Point{Pt(0, 0), Pt(100, 0), Pt(0, 0)},
			want:   []Point{Pt(0, 0), Pt(100, 0), Pt(0, 0)},
		},
		{
			name:   "single point unchanged",
			points: []Point{Pt(5, 5)},
			want:   []Point{Pt(5, 5)},
		},
		{
			name:   "empty unchanged",
			points: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosePath(tt.points)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ClosePath mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreprocessShortInput(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"single point", []Point{Pt(5, 5)}},
		{"all identical", []Point{Pt(5, 5), Pt(5, 5), Pt(5, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, closed := Preprocess(tt.points, DefaultConfig())
			if closed {
				t.Error("closed = true, want false")
			}
			if want := []Point{Pt(5, 5)}; !cmp.Equal(want, got) {
				t.Errorf("Preprocess() = %v, want %v", got, want)
			}
		})
	}
}

func TestPreprocessOpenStroke(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(50, 0), Pt(100, 0)}

	got, closed := Preprocess(pts, DefaultConfig())
	if closed {
		t.Error("closed = true for an open stroke")
	}
	if got[0] != Pt(0, 0) || got[len(got)-1] != Pt(100, 0) {
		t.Errorf("endpoints = %v, %v, want (0,0), (100,0)", got[0], got[len(got)-1])
	}
}

func TestPreprocessClosesRing(t *testing.T) {
	// Endpoint gap of 2px is well under the closure threshold; the ring
	// must come back snapped shut even after resampling.
	pts := []Point{Pt(0, 0), Pt(100, 0), Pt(100, 50), Pt(0, 50), Pt(0, 2)}

	got, closed := Preprocess(pts, DefaultConfig())
	if !closed {
		t.Fatal("closed = false, want true")
	}
	if got[0] != got[len(got)-1] {
		t.Errorf("ring not closed: first %v, last %v", got[0], got[len(got)-1])
	}
}

func TestPreprocessRetracedStroke(t *testing.T) {
	// Drawn out and straight back to the start: every resampling target
	// lands back on the first point. The processed points must stay free
	// of zero-length segments.
	pts := []Point{Pt(0, 0), Pt(2.5, 0), Pt(0, 0)}

	got, closed := Preprocess(pts, DefaultConfig())
	if !closed {
		t.Error("closed = false, want true for a stroke ending on its start")
	}
	if want := []Point{Pt(0, 0)}; !cmp.Equal(want, got) {
		t.Errorf("Preprocess() = %v, want %v", got, want)
	}
}

func TestPreprocessClosingDisabled(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(100, 0), Pt(100, 50), Pt(0, 50), Pt(0, 2)}
	cfg := DefaultConfig()
	cfg.CloseRing = false

	got, closed := Preprocess(pts, cfg)
	if !closed {
		t.Fatal("closed = false, want true")
	}
	if last := got[len(got)-1]; last != Pt(0, 2) {
		t.Errorf("last = %v with closing disabled, want (0, 2)", last)
	}
}

func TestPreprocessDedupes(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(10, 0)}
	cfg := DefaultConfig()
	cfg.DedupEpsilon = 1.5
	cfg.TargetSpacing = 0 // keep the deduplicated points visible
	cfg.CloseThreshold = 5

	got, closed := Preprocess(pts, cfg)
	if closed {
		t.Error("closed = true, want false")
	}
	want := []Point{Pt(0, 0), Pt(2, 0), Pt(10, 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Preprocess mismatch (-want +got):\n%s", diff)
	}
}
