// Package schreier renders the coset graph of a fundamental domain.
//
// # Overview
//
// Every representative becomes a node labeled with its word. T moves are
// drawn as directed edges; T⁻¹ edges are their reverses and are omitted. S
// is an involution, so S edges are drawn once without arrowheads. A node whose
// move leads back to itself gets a loop, which marks an elliptic point or a
// cusp of width one.
//
// # Usage
//
//	dot := schreier.ToDOT(d, schreier.Options{})
//	svg, err := schreier.RenderSVG(dot)
//
// Rendering uses the embedded Graphviz from go-graphviz, so no system
// installation is needed.
package schreier
