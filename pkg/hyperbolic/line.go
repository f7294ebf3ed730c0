package hyperbolic

import "math"

// Line is the geodesic from P to Q.
type Line struct {
	P, Q Point
}

// Vertical reports whether the geodesic is a vertical segment or ray.
func (l Line) Vertical() bool {
	if l.P.Inf || l.Q.Inf {
		return true
	}
	return math.Abs(l.P.X()-l.Q.X()) < Epsilon
}

// Center returns the real center of the Euclidean circle carrying a
// non-vertical geodesic: the intersection of the real axis with the
// perpendicular bisector of PQ.
func (l Line) Center() float64 {
	x1, y1 := l.P.X(), l.P.Y()
	x2, y2 := l.Q.X(), l.Q.Y()
	return (x1+x2)/2 + (y1*y1-y2*y2)/(2*(x1-x2))
}

// Radius returns the radius of the circle carrying a non-vertical geodesic.
func (l Line) Radius() float64 {
	return l.P.Sub(Pt(l.Center(), 0)).Abs()
}

// Angles returns the angles in degrees of P and Q seen from the center.
func (l Line) Angles() (from, to float64) {
	c := Pt(l.Center(), 0)
	return l.P.Sub(c).Angle(), l.Q.Sub(c).Angle()
}

// Ends returns drawable coordinates of both endpoints. An infinite end is
// placed at MaxHeight above the finite one.
func (l Line) Ends() (x1, y1, x2, y2 float64) {
	switch {
	case l.P.Inf:
		x2, y2 = l.Q.Coords(0)
		x1, y1 = x2, MaxHeight
	case l.Q.Inf:
		x1, y1 = l.P.Coords(0)
		x2, y2 = x1, MaxHeight
	default:
		x1, y1 = l.P.X(), l.P.Y()
		x2, y2 = l.Q.X(), l.Q.Y()
	}
	return x1, y1, x2, y2
}
