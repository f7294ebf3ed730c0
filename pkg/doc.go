// Package pkg provides the libraries behind fundomain, which draws fundamental
// domains of congruence subgroups of SL₂(ℤ) in the upper half-plane.
//
// # Overview
//
// A subgroup Γ of finite index is described by a membership predicate. Coset
// representatives are found by walking the generators T, T⁻¹ and S from the
// identity; every representative g contributes the triangle g·F, where F is
// the reference triangle with vertices ρ = e^{iπ/3}, ρ² and ∞. The union of
// those triangles is a connected fundamental domain for Γ.
//
// # Architecture
//
//	"gamma0(11)"
//	     ↓
//	[subgroup] parse + membership, predicted index
//	     ↓
//	[domain] coset enumeration with a choice function
//	     ↓
//	[hyperbolic] triangles, geodesic edges
//	     ↓
//	[render/tikz], [render/asy], [render/svg], [render/schreier]
//	     ↓
//	.tex / .asy / .svg / .dot / .pdf
//
// [pipeline] ties the stages together for the CLI and the preview server.
//
// # Quick Start
//
//	g, _ := subgroup.Gamma0(11)
//	d, err := domain.Enumerate(ctx, g, domain.ByAppearance)
//	if err != nil {
//	    return err
//	}
//	tex, _ := tikz.Render(render.Items(d, true), render.Options{Title: g.String()})
//
// # Main Packages
//
// [sl2z] - integer matrices of determinant one, the generators and words.
//
// [subgroup] - Γ₀(N), Γ₁(N), Γ(N) and custom predicates; index formulas.
//
// [domain] - the enumerator, representatives and the choice functions
// (distance, appearance, random and their mixes).
//
// [hyperbolic] - points, geodesics and triangles with the floating tolerance
// used for vertex comparison.
//
// [render] - shared render types and PDF conversion through pdflatex or asy.
//
// [cache] - in-memory artifact cache for the preview server.
//
// [observability] - hooks around enumeration, rendering and HTTP requests.
//
// [errors] - coded errors shared by every entry point.
//
// [sl2z]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/sl2z
// [subgroup]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/subgroup
// [domain]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/domain
// [hyperbolic]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/hyperbolic
// [render]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/render
// [render/tikz]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/render/tikz
// [render/asy]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/render/asy
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/render/svg
// [render/schreier]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/render/schreier
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/fundomain/pkg/errors
package pkg
