package lousa

// Result is everything one pipeline run produces for a stroke: the
// classification plus the intermediate sequences, which callers can draw
// for visual feedback alongside the final shape.
type Result struct {
	// Kind and Shape are the classifier verdict.
	Kind  ShapeKind
	Shape Shape

	// RMS is the residual of the accepted line or circle fit; zero
	// otherwise.
	RMS float64

	// Processed holds the points after deduplication, optional ring
	// closing, and resampling.
	Processed []Point

	// Simplified holds the points after simplification, an
	// index-subsequence of Processed.
	Simplified []Point

	// Closed reports whether the processed points form a closed ring.
	Closed bool
}

// Recognize runs the full pipeline on raw stroke positions: preprocess,
// simplify, classify. The config is normalized first, so out-of-range
// tolerances are clamped rather than honored. Recognize is pure and safe
// to call concurrently from independent strokes.
func Recognize(points []Point, cfg Config) Result {
	cfg = cfg.normalized()

	processed, closed := Preprocess(points, cfg)
	simplified := Simplify(processed, cfg.Epsilon)
	c := Classify(simplified, closed, cfg)

	log := Logger()
	log.Debug("stroke pipeline",
		"raw", len(points),
		"processed", len(processed),
		"simplified", len(simplified),
		"closed", closed,
		"epsilon", cfg.Epsilon,
	)
	log.Info("stroke classified",
		"kind", c.Kind,
		"rms", c.RMS,
		"vertices", len(simplified),
	)

	return Result{
		Kind:       c.Kind,
		Shape:      c.Shape,
		RMS:        c.RMS,
		Processed:  processed,
		Simplified: simplified,
		Closed:     closed,
	}
}

// Recognizer is a Recognize frontend holding a live-adjustable
// configuration, so a host application can rebind tolerances (most
// commonly the simplification epsilon, stepped from a keyboard shortcut)
// between strokes without rebuilding anything.
//
// A Recognizer is not safe for concurrent mutation; give each goroutine
// its own, or use the pure Recognize function directly.
type Recognizer struct {
	cfg Config
}

// NewRecognizer creates a Recognizer with the default tolerances,
// adjusted by the given options.
func NewRecognizer(opts ...Option) *Recognizer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Recognizer{cfg: cfg.normalized()}
}

// Recognize runs the pipeline with the recognizer's current tolerances.
func (r *Recognizer) Recognize(points []Point) Result {
	return Recognize(points, r.cfg)
}

// Config returns the current tolerances.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// SetConfig replaces the tolerances, normalizing out-of-range values.
func (r *Recognizer) SetConfig(cfg Config) {
	r.cfg = cfg.normalized()
}

// Epsilon returns the current simplification tolerance.
func (r *Recognizer) Epsilon() float64 {
	return r.cfg.Epsilon
}

// SetEpsilon sets the simplification tolerance, clamped into
// [MinEpsilon, MaxEpsilon].
func (r *Recognizer) SetEpsilon(eps float64) {
	r.cfg.Epsilon = clampEpsilon(eps)
}

// AdjustEpsilon adds delta to the simplification tolerance, clamped into
// [MinEpsilon, MaxEpsilon], and returns the new value. Suited to
// interactive +/- stepping.
func (r *Recognizer) AdjustEpsilon(delta float64) float64 {
	r.cfg.Epsilon = clampEpsilon(r.cfg.Epsilon + delta)
	return r.cfg.Epsilon
}

// clampEpsilon bounds an epsilon into the supported range.
func clampEpsilon(eps float64) float64 {
	if eps < MinEpsilon {
		return MinEpsilon
	}
	if eps > MaxEpsilon {
		return MaxEpsilon
	}
	return eps
}
