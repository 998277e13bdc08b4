package lousa

import "math"

// Least-squares fitting of geometric primitives to point sequences.
// Each fitter measures its own residual; acceptance thresholds live in
// the classifier, not here.

// LineFit describes the chord through a sequence's endpoints and how
// well the interior follows it.
type LineFit struct {
	Start, End Point

	// RMS is the root-mean-square perpendicular distance of all points
	// to the infinite line through Start and End.
	RMS float64
}

// FitLine fits the endpoint chord to a point sequence. The candidate
// line uses only the first and last points; the residual measures every
// point against it. An empty sequence yields the zero fit; a single
// point yields a degenerate chord with zero residual.
func FitLine(points []Point) LineFit {
	if len(points) == 0 {
		return LineFit{}
	}
	a := points[0]
	b := points[len(points)-1]
	var sum float64
	for _, p := range points {
		d := PerpendicularDistance(p, a, b)
		sum += d * d
	}
	return LineFit{
		Start: a,
		End:   b,
		RMS:   math.Sqrt(sum / float64(len(points))),
	}
}

// CircleFit describes an algebraic least-squares circle.
type CircleFit struct {
	Center Point
	Radius float64

	// RMS is the root-mean-square of |distance(p, Center) - Radius|
	// over all points.
	RMS float64
}

// FitCircle fits a circle with the Kåsa method: minimizing the algebraic
// residual of x² + y² + Ax + By + C = 0 reduces to a 3x3 linear system
// over coordinate sums, solved here by Gaussian elimination with partial
// pivoting. No matrix library is needed.
//
// The fit fails (ok == false) on fewer than 3 points, on a singular
// system (collinear or coincident points), or when the solution has no
// real radius.
func FitCircle(points []Point) (CircleFit, bool) {
	if len(points) < 3 {
		return CircleFit{}, false
	}

	var sx, sy, sxx, syy, sxy, sz, sxz, syz float64
	for _, p := range points {
		z := p.X*p.X + p.Y*p.Y
		sx += p.X
		sy += p.Y
		sxx += p.X * p.X
		syy += p.Y * p.Y
		sxy += p.X * p.Y
		sz += z
		sxz += p.X * z
		syz += p.Y * z
	}
	n := float64(len(points))

	// Normal equations for [A B C].
	m := [3][4]float64{
		{sxx, sxy, sx, -sxz},
		{sxy, syy, sy, -syz},
		{sx, sy, n, -sz},
	}
	sol, ok := solve3(m)
	if !ok {
		return CircleFit{}, false
	}

	cx := -sol[0] / 2
	cy := -sol[1] / 2
	rsq := cx*cx + cy*cy - sol[2]
	if rsq <= 0 || !isFinite(rsq) {
		return CircleFit{}, false
	}
	r := math.Sqrt(rsq)
	center := Point{X: cx, Y: cy}

	var sum float64
	for _, p := range points {
		d := p.Distance(center) - r
		sum += d * d
	}
	return CircleFit{
		Center: center,
		Radius: r,
		RMS:    math.Sqrt(sum / n),
	}, true
}

// solve3 solves a linear system of 3 unknowns given as an augmented
// matrix, using Gaussian elimination with partial pivoting. Returns
// ok == false when the system is singular or numerically degenerate.
func solve3(m [3][4]float64) ([3]float64, bool) {
	for col := 0; col < 3; col++ {
		piv := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[piv][col]) {
				piv = row
			}
		}
		if m[piv][col] == 0 || !isFinite(m[piv][col]) {
			return [3]float64{}, false
		}
		m[col], m[piv] = m[piv], m[col]
		for row := col + 1; row < 3; row++ {
			f := m[row][col] / m[col][col]
			for c := col; c < 4; c++ {
				m[row][c] -= f * m[col][c]
			}
		}
	}

	var out [3]float64
	for row := 2; row >= 0; row-- {
		v := m[row][3]
		for c := row + 1; c < 3; c++ {
			v -= m[row][c] * out[c]
		}
		out[row] = v / m[row][row]
		if !isFinite(out[row]) {
			return [3]float64{}, false
		}
	}
	return out, true
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// DetectRectangle checks whether a simplified polygon is a clean
// quadrilateral and reports its axis-aligned extent. A duplicated
// closing vertex is ignored; after that the polygon must have exactly 4
// vertices, every edge at least cfg.MinRectEdge long, every interior
// angle within cfg.RectAngleTol of a right angle, and opposite sides
// parallel within cfg.RectParallelTol and equal in length within
// cfg.RectLengthRatio.
//
// The reported rectangle is always axis-aligned: the bounding box of the
// accepted vertices. Rotated rectangles are not modeled.
func DetectRectangle(points []Point, cfg Config) (Rect, bool) {
	verts := points
	if n := len(verts); n >= 2 && verts[n-1].Distance(verts[0]) <= coincidentEps {
		verts = verts[:n-1]
	}
	if len(verts) != 4 {
		return Rect{}, false
	}

	edges := [4]Vec2{}
	for i := range edges {
		edges[i] = verts[(i+1)%4].Sub(verts[i])
		if edges[i].Length() < cfg.MinRectEdge {
			return Rect{}, false
		}
	}

	// Interior angle at vertex i sits between the edges arriving from
	// and leaving to its neighbors.
	for i := 0; i < 4; i++ {
		in := edges[(i+3)%4].Neg()
		out := edges[i]
		if math.Abs(in.AngleBetween(out)-math.Pi/2) > cfg.RectAngleTol {
			return Rect{}, false
		}
	}

	// Opposite sides: parallel and similar length.
	for i := 0; i < 2; i++ {
		a := edges[i]
		b := edges[i+2]
		sin := math.Abs(a.Cross(b)) / (a.Length() * b.Length())
		if sin > cfg.RectParallelTol {
			return Rect{}, false
		}
		la, lb := a.Length(), b.Length()
		if math.Abs(la-lb)/math.Max(la, lb) > cfg.RectLengthRatio {
			return Rect{}, false
		}
	}

	return bounds(verts), true
}
