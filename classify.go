package lousa

import "math"

// ShapeKind identifies the classified primitive.
type ShapeKind int

const (
	// KindPolyline is the universal fallback when no primitive fit
	// accepts the stroke.
	KindPolyline ShapeKind = iota

	// KindLine is a straight segment.
	KindLine

	// KindCircle is a circle.
	KindCircle

	// KindRect is an axis-aligned rectangle.
	KindRect
)

// String returns the lowercase name of the kind.
func (k ShapeKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	default:
		return "polyline"
	}
}

// DefaultPriority is the decision order of the classifier: the first
// kind whose fit accepts the stroke wins. The order reflects increasing
// structural complexity and is a policy choice, not a mathematical
// necessity; reordering changes outcomes on strokes that weakly satisfy
// several fits.
var DefaultPriority = [4]ShapeKind{KindLine, KindCircle, KindRect, KindPolyline}

// Classification is the classifier verdict: the winning kind, the
// canonical shape value, and the fit residual where one exists.
type Classification struct {
	Kind  ShapeKind
	Shape Shape

	// RMS is the residual of the accepted line or circle fit; zero for
	// rectangles and polylines.
	RMS float64
}

// Classify decides which primitive a simplified stroke is. It is a pure
// function of the simplified points, the closure flag, and the
// tolerances; it never mutates its input and never fails — fewer than 2
// points, or no accepting fit, classify as a polyline.
//
// Candidates are tried in DefaultPriority order and the first accepting
// fit wins.
func Classify(points []Point, closed bool, cfg Config) Classification {
	if len(points) < 2 {
		return polylineFallback(points)
	}
	for _, kind := range DefaultPriority {
		switch kind {
		case KindLine:
			if c, ok := classifyLine(points, cfg); ok {
				return c
			}
		case KindCircle:
			if c, ok := classifyCircle(points, closed, cfg); ok {
				return c
			}
		case KindRect:
			if c, ok := classifyRect(points, closed, cfg); ok {
				return c
			}
		case KindPolyline:
			return polylineFallback(points)
		}
	}
	return polylineFallback(points)
}

// classifyLine accepts short simplified strokes that hug their endpoint
// chord. Closed rings never qualify: their chord is degenerate.
func classifyLine(points []Point, cfg Config) (Classification, bool) {
	if len(points) > cfg.MaxLineVertices {
		return Classification{}, false
	}
	fit := FitLine(points)
	if fit.Start == fit.End {
		return Classification{}, false
	}
	if fit.RMS > cfg.LineRMS {
		return Classification{}, false
	}
	return Classification{
		Kind:  KindLine,
		Shape: Line{Start: fit.Start, End: fit.End},
		RMS:   fit.RMS,
	}, true
}

// classifyCircle accepts closed strokes with enough vertices whose Kåsa
// fit is tight relative to its radius. The radius must also stay within
// the spread of the points themselves: a near-collinear ring produces an
// enormous fitted circle whose relative residual is tiny, and the spread
// bound rejects it.
func classifyCircle(points []Point, closed bool, cfg Config) (Classification, bool) {
	if !closed || len(points) < cfg.MinCirclePoints {
		return Classification{}, false
	}
	fit, ok := FitCircle(points)
	if !ok {
		return Classification{}, false
	}
	if fit.Radius < cfg.MinCircleRadius {
		return Classification{}, false
	}
	box := bounds(points)
	diag := math.Hypot(box.Width(), box.Height())
	if fit.Radius > diag {
		return Classification{}, false
	}
	if fit.RMS > cfg.CircleRMSRatio*fit.Radius {
		return Classification{}, false
	}
	return Classification{
		Kind:  KindCircle,
		Shape: Circle{Center: fit.Center, Radius: fit.Radius},
		RMS:   fit.RMS,
	}, true
}

// classifyRect accepts closed strokes forming clean quadrilaterals,
// recorded axis-aligned. Open strokes never qualify: the quadrilateral
// checks score the wrap-around edge as if it had been drawn.
func classifyRect(points []Point, closed bool, cfg Config) (Classification, bool) {
	if !closed {
		return Classification{}, false
	}
	box, ok := DetectRectangle(points, cfg)
	if !ok {
		return Classification{}, false
	}
	return Classification{
		Kind:  KindRect,
		Shape: Rectangle{Box: box},
	}, true
}

// polylineFallback wraps the vertices unchanged. The points are copied
// so the shape stays independent of the caller's buffer.
func polylineFallback(points []Point) Classification {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Classification{
		Kind:  KindPolyline,
		Shape: Polyline{Points: pts},
	}
}
