package hyperbolic

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	// Epsilon is the tolerance for point equality and boundary tests.
	Epsilon = 1e-9

	// MaxHeight is the height substituted for the point at infinity when a
	// finite coordinate is needed (drawing, appearance scores).
	MaxHeight = 2.0
)

// Point is a point of the closed upper half-plane, or the point at infinity.
type Point struct {
	Z   complex128
	Inf bool
}

// Pt returns the finite point x + iy.
func Pt(x, y float64) Point { return Point{Z: complex(x, y)} }

// FromComplex returns the finite point z.
func FromComplex(z complex128) Point { return Point{Z: z} }

// Infinity returns the point at infinity.
func Infinity() Point { return Point{Inf: true} }

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return p.Inf }

// X returns the real part. It is meaningless for infinity.
func (p Point) X() float64 { return real(p.Z) }

// Y returns the imaginary part. It is meaningless for infinity.
func (p Point) Y() float64 { return imag(p.Z) }

// Height returns Y, or MaxHeight for the point at infinity.
func (p Point) Height() float64 {
	if p.Inf {
		return MaxHeight
	}
	return p.Y()
}

// OnBoundary reports whether p lies on ℝ ∪ {∞}.
func (p Point) OnBoundary() bool { return p.Inf || math.Abs(p.Y()) < Epsilon }

// Equal reports whether p and q are the same point within Epsilon.
func (p Point) Equal(q Point) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}
	return cmplx.Abs(p.Z-q.Z) < Epsilon
}

// Sub returns p − q for finite points.
func (p Point) Sub(q Point) Point { return Point{Z: p.Z - q.Z} }

// Abs returns |p| for a finite point.
func (p Point) Abs() float64 { return cmplx.Abs(p.Z) }

// Angle returns the argument of p in degrees.
func (p Point) Angle() float64 { return math.Atan2(p.Y(), p.X()) * 180 / math.Pi }

// Coords returns drawable coordinates, using MaxHeight above x for infinity.
func (p Point) Coords(x float64) (float64, float64) {
	if p.Inf {
		return x, MaxHeight
	}
	return p.X(), p.Y()
}

// String formats p as "(x, y)" or "inf".
func (p Point) String() string {
	if p.Inf {
		return "inf"
	}
	return fmt.Sprintf("(%g, %g)", p.X(), p.Y())
}
