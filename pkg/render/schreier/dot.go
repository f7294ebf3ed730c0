package schreier

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/render"
	"github.com/matzehuels/fundomain/pkg/render/svg"
)

// Options configures coset graph rendering.
type Options struct {
	// Matrices adds each representative's matrix below its word.
	Matrices bool
}

// ToDOT converts the links of d to Graphviz DOT.
func ToDOT(d *domain.Domain, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", d.Group.String())
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#cccccc\", fontsize=14];\n")
	buf.WriteString("\n")

	for i, r := range d.Reps {
		fmt.Fprintf(&buf, "  \"%d\" [label=%q];\n", i, nodeLabel(r, opts.Matrices))
	}

	buf.WriteString("\n")
	for i, r := range d.Reps {
		if r.T != domain.NoLink {
			fmt.Fprintf(&buf, "  \"%d\" -> \"%d\" [label=\"T\"];\n", i, r.T)
		}
		if r.S != domain.NoLink && int(r.S) >= i {
			fmt.Fprintf(&buf, "  \"%d\" -> \"%d\" [label=\"S\", dir=none, style=dashed];\n", i, r.S)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(r domain.Representative, matrices bool) string {
	label := svg.Label(r.Label())
	if label == "" {
		label = render.IdentityLabel
	}
	if matrices {
		label += "\n" + r.Matrix.String()
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root tag with one whose viewBox
// starts at the origin, so the image scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
