package lousa

// Shape is the canonical geometric value produced by the classifier: one
// of Line, Circle, Rectangle, or Polyline. Shapes are immutable; the
// only derivation is Translate, which returns a moved copy. A shape
// carries no reference to the stroke it came from.
//
// The variant set is closed. Dispatch on the concrete type or on Kind:
//
//	switch s := shape.(type) {
//	case lousa.Line:
//	    draw(s.Start, s.End)
//	case lousa.Circle:
//	    drawCircle(s.Center, s.Radius)
//	// ...
//	}
type Shape interface {
	// Kind returns the variant discriminator.
	Kind() ShapeKind

	// BoundingBox returns the axis-aligned extent of the shape.
	BoundingBox() Rect

	// Translate returns a copy of the shape moved by d.
	Translate(d Vec2) Shape

	isShape()
}

// Line is a straight segment between two endpoints.
type Line struct {
	Start, End Point
}

// Kind returns KindLine.
func (l Line) Kind() ShapeKind { return KindLine }

// BoundingBox returns the axis-aligned extent of the segment.
func (l Line) BoundingBox() Rect { return NewRect(l.Start, l.End) }

// Translate returns the segment moved by d.
func (l Line) Translate(d Vec2) Shape {
	return Line{Start: l.Start.Add(d), End: l.End.Add(d)}
}

func (Line) isShape() {}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Kind returns KindCircle.
func (c Circle) Kind() ShapeKind { return KindCircle }

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() Rect {
	r := V2(c.Radius, c.Radius)
	return Rect{Min: c.Center.Add(r.Neg()), Max: c.Center.Add(r)}
}

// Translate returns the circle moved by d.
func (c Circle) Translate(d Vec2) Shape {
	return Circle{Center: c.Center.Add(d), Radius: c.Radius}
}

func (Circle) isShape() {}

// Rectangle is an axis-aligned rectangle defined by opposite corners.
type Rectangle struct {
	Box Rect
}

// Kind returns KindRect.
func (r Rectangle) Kind() ShapeKind { return KindRect }

// BoundingBox returns the rectangle itself.
func (r Rectangle) BoundingBox() Rect { return r.Box }

// Corners returns the four corners in ring order.
func (r Rectangle) Corners() [4]Point { return r.Box.Corners() }

// Translate returns the rectangle moved by d.
func (r Rectangle) Translate(d Vec2) Shape {
	return Rectangle{Box: r.Box.Translate(d)}
}

func (Rectangle) isShape() {}

// Polyline is an ordered vertex list, the universal fallback when no
// primitive fit accepts. Callers must not mutate Points; Translate
// returns a fresh copy.
type Polyline struct {
	Points []Point
}

// Kind returns KindPolyline.
func (p Polyline) Kind() ShapeKind { return KindPolyline }

// BoundingBox returns the axis-aligned extent of the vertices, or the
// zero Rect when the polyline is empty.
func (p Polyline) BoundingBox() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	return bounds(p.Points)
}

// Translate returns a polyline with every vertex moved by d.
func (p Polyline) Translate(d Vec2) Shape {
	pts := make([]Point, len(p.Points))
	for i, v := range p.Points {
		pts[i] = v.Add(d)
	}
	return Polyline{Points: pts}
}

func (Polyline) isShape() {}
