package hyperbolic

import "math"

// Triangle is a geodesic triangle with vertices A, B and C.
type Triangle struct {
	A, B, C Point
}

// Reference returns the standard fundamental triangle of SL₂(ℤ) with vertices
// ½ + i√3/2, −½ + i√3/2 and ∞.
func Reference() Triangle {
	w := math.Sqrt(3) / 2
	return Triangle{A: Pt(0.5, w), B: Pt(-0.5, w), C: Infinity()}
}

// Vertices returns the vertices in order.
func (t Triangle) Vertices() [3]Point { return [3]Point{t.A, t.B, t.C} }

// Normalize rotates the vertex labels so that an infinite vertex, if any, is C.
// The cyclic order of the vertices is preserved.
func (t Triangle) Normalize() Triangle {
	switch {
	case t.A.Inf:
		return Triangle{A: t.B, B: t.C, C: t.A}
	case t.B.Inf:
		return Triangle{A: t.C, B: t.A, C: t.B}
	}
	return t
}

// Edges returns the three sides CA, AB and BC of the normalized triangle, in
// the order a closed path through the vertices visits them.
func (t Triangle) Edges() [3]Line {
	n := t.Normalize()
	return [3]Line{{P: n.C, Q: n.A}, {P: n.A, Q: n.B}, {P: n.B, Q: n.C}}
}

// Appearance returns the mean height of the vertices, with MaxHeight for
// infinity. Larger values are visually more prominent.
func (t Triangle) Appearance() float64 {
	return (t.A.Height() + t.B.Height() + t.C.Height()) / 3
}

// LabelPos returns a point inside the triangle suitable for a label.
func (t Triangle) LabelPos() (x, y float64) {
	n := t.Normalize()
	if n.C.Inf {
		x = (n.A.X() + n.B.X()) / 2
	} else {
		x = (n.A.X() + n.B.X() + n.C.X()) / 3
	}
	return x, t.Appearance()
}

// MaxAbsX returns the largest |x| among the finite vertices.
func (t Triangle) MaxAbsX() float64 {
	m := 0.0
	for _, p := range t.Vertices() {
		if !p.Inf {
			m = max(m, math.Abs(p.X()))
		}
	}
	return m
}
