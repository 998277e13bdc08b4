package lousa

// Numeric defaults for the pipeline. The values come from interactive
// tuning on mouse input at typical screen resolutions; every one of them
// can be overridden per call through Config.
const (
	// DefaultCloseThreshold is the maximum gap in pixels between the
	// first and last point of a stroke that still counts as closed.
	DefaultCloseThreshold = 20.0

	// DefaultTargetSpacing is the arc-length distance in pixels between
	// resampled points.
	DefaultTargetSpacing = 5.0

	// DefaultEpsilon is the simplification tolerance in pixels.
	DefaultEpsilon = 10.0

	// MinEpsilon and MaxEpsilon bound the live-adjustable simplification
	// tolerance. SetEpsilon and AdjustEpsilon clamp into this range.
	MinEpsilon = 1.0
	MaxEpsilon = 200.0
)

// Config holds every tolerance the pipeline consumes. The zero value is
// not useful; start from DefaultConfig and adjust fields, or build a
// Recognizer with Options.
type Config struct {
	// DedupEpsilon is the preprocessing deduplication radius: a point
	// closer than this to the previously kept point is dropped. Zero or
	// negative drops only exactly coincident points.
	DedupEpsilon float64

	// CloseThreshold is the maximum first-to-last distance for closure
	// detection.
	CloseThreshold float64

	// CloseRing appends a copy of the first point to a detected closed
	// stroke so downstream polygon logic sees an exact ring.
	CloseRing bool

	// TargetSpacing is the arc-length resampling interval. Zero or
	// negative disables resampling.
	TargetSpacing float64

	// Epsilon is the simplification tolerance.
	Epsilon float64

	// LineRMS is the maximum RMS residual against the endpoint chord for
	// a stroke to classify as a line.
	LineRMS float64

	// MaxLineVertices is the maximum simplified vertex count for a line.
	// Straight strokes collapse to very few vertices; anything larger is
	// structure, not noise.
	MaxLineVertices int

	// MinCirclePoints is the minimum simplified vertex count for a
	// circle. Keeps small polygons, whose corners are concyclic, from
	// fitting a circle perfectly.
	MinCirclePoints int

	// MinCircleRadius rejects circle fits below this radius.
	MinCircleRadius float64

	// CircleRMSRatio is the maximum radial RMS residual relative to the
	// fitted radius.
	CircleRMSRatio float64

	// MinRectEdge is the minimum edge length of a detected rectangle.
	MinRectEdge float64

	// RectAngleTol is the maximum deviation of an interior angle from a
	// right angle, in radians.
	RectAngleTol float64

	// RectParallelTol is the maximum |sin| of the angle between opposite
	// sides.
	RectParallelTol float64

	// RectLengthRatio is the maximum relative length difference between
	// opposite sides.
	RectLengthRatio float64
}

// DefaultConfig returns the documented default tolerances.
func DefaultConfig() Config {
	return Config{
		DedupEpsilon:    0,
		CloseThreshold:  DefaultCloseThreshold,
		CloseRing:       true,
		TargetSpacing:   DefaultTargetSpacing,
		Epsilon:         DefaultEpsilon,
		LineRMS:         3.0,
		MaxLineVertices: 5,
		MinCirclePoints: 6,
		MinCircleRadius: 5.0,
		CircleRMSRatio:  0.25,
		MinRectEdge:     10.0,
		RectAngleTol:    0.26, // ~15 degrees
		RectParallelTol: 0.20,
		RectLengthRatio: 0.25,
	}
}

// normalized returns a copy of the config with out-of-range values
// clamped to usable ones. Negative tolerances become zero; the
// simplification epsilon is clamped into [MinEpsilon, MaxEpsilon]; the
// structural vertex-count guards keep their logical floors.
func (c Config) normalized() Config {
	if c.Epsilon < MinEpsilon {
		c.Epsilon = MinEpsilon
	} else if c.Epsilon > MaxEpsilon {
		c.Epsilon = MaxEpsilon
	}
	for _, f := range []*float64{
		&c.DedupEpsilon, &c.CloseThreshold, &c.TargetSpacing,
		&c.LineRMS, &c.MinCircleRadius, &c.CircleRMSRatio,
		&c.MinRectEdge, &c.RectAngleTol, &c.RectParallelTol, &c.RectLengthRatio,
	} {
		if *f < 0 {
			*f = 0
		}
	}
	if c.MaxLineVertices < 2 {
		c.MaxLineVertices = 2
	}
	if c.MinCirclePoints < 3 {
		c.MinCirclePoints = 3
	}
	return c
}

// Option configures a Recognizer during creation.
//
// Example:
//
//	// Default tolerances
//	r := lousa.NewRecognizer()
//
//	// Looser simplification, tighter closure
//	r := lousa.NewRecognizer(lousa.WithEpsilon(20), lousa.WithCloseThreshold(10))
type Option func(*Config)

// WithDedupEpsilon sets the preprocessing deduplication radius.
func WithDedupEpsilon(eps float64) Option {
	return func(c *Config) { c.DedupEpsilon = eps }
}

// WithCloseThreshold sets the maximum endpoint gap for closure detection.
func WithCloseThreshold(d float64) Option {
	return func(c *Config) { c.CloseThreshold = d }
}

// WithClosing enables or disables appending the closing vertex to
// detected rings.
func WithClosing(enabled bool) Option {
	return func(c *Config) { c.CloseRing = enabled }
}

// WithTargetSpacing sets the arc-length resampling interval.
func WithTargetSpacing(spacing float64) Option {
	return func(c *Config) { c.TargetSpacing = spacing }
}

// WithEpsilon sets the simplification tolerance.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithLineRMS sets the maximum chord residual for line classification.
func WithLineRMS(rms float64) Option {
	return func(c *Config) { c.LineRMS = rms }
}

// WithMaxLineVertices sets the vertex-count ceiling for line
// classification.
func WithMaxLineVertices(n int) Option {
	return func(c *Config) { c.MaxLineVertices = n }
}

// WithMinCirclePoints sets the vertex-count floor for circle
// classification.
func WithMinCirclePoints(n int) Option {
	return func(c *Config) { c.MinCirclePoints = n }
}

// WithMinCircleRadius sets the smallest accepted circle radius.
func WithMinCircleRadius(r float64) Option {
	return func(c *Config) { c.MinCircleRadius = r }
}

// WithCircleRMSRatio sets the maximum radial residual relative to the
// fitted radius.
func WithCircleRMSRatio(ratio float64) Option {
	return func(c *Config) { c.CircleRMSRatio = ratio }
}

// WithRectTolerances sets all four rectangle-detection tolerances: the
// minimum edge length, the interior-angle deviation from 90 degrees in
// radians, the |sin| bound between opposite sides, and the relative
// length difference of opposite sides.
func WithRectTolerances(minEdge, angleTol, parallelTol, lengthRatio float64) Option {
	return func(c *Config) {
		c.MinRectEdge = minEdge
		c.RectAngleTol = angleTol
		c.RectParallelTol = parallelTol
		c.RectLengthRatio = lengthRatio
	}
}

// WithConfig replaces the whole configuration at once. Options after it
// still apply on top.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}
