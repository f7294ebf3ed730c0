// Package render turns fundamental domains into pictures.
//
// # Overview
//
// A domain is first flattened into a list of [Item] values, one translated
// triangle per coset representative with an optional label. The backends in
// the subpackages consume that list:
//
//   - [asy]: Asymptote scripts
//   - [tikz]: standalone LaTeX documents drawn with TikZ
//   - [svg]: self-contained SVG images
//   - [schreier]: the coset graph as Graphviz DOT and SVG
//
// # Format Conversion
//
// [ToPDF] compiles Asymptote or LaTeX sources with the external asy and
// pdflatex tools:
//
//	items := render.Items(d, true)
//	src, err := tikz.Render(items, render.Options{Width: d.Width()})
//	pdf, err := render.ToPDF(ctx, render.PDFLaTeX, src)
//
// [asy]: github.com/matzehuels/fundomain/pkg/render/asy
// [tikz]: github.com/matzehuels/fundomain/pkg/render/tikz
// [svg]: github.com/matzehuels/fundomain/pkg/render/svg
// [schreier]: github.com/matzehuels/fundomain/pkg/render/schreier
package render
