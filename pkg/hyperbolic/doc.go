// Package hyperbolic models the closed upper half-plane H ∪ ℝ ∪ {∞} just far
// enough to draw a fundamental domain.
//
// # Tolerance
//
// All comparisons use the fixed tolerance [Epsilon]. Coordinates come out of
// floating-point Möbius transformations, so exact equality is not meaningful:
// two points are [Point.Equal] when they are within Epsilon of each other, and
// a point is [Point.OnBoundary] when its height is below Epsilon.
//
// # Infinity
//
// The point at infinity is a distinguished [Point] (see [Infinity]). Drawing
// code that needs a finite stand-in for it uses [MaxHeight] as its height.
//
// # Geodesics
//
// A [Line] between two points is either a vertical ray (same real part, or one
// end at infinity) or an arc of a Euclidean circle centered on the real axis.
// [Triangle] bundles three vertices, usually the image of [Reference] under a
// matrix, and provides the label position and "appearance" score used by the
// enumeration heuristics.
package hyperbolic
