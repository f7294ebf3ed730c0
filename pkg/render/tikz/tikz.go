// Package tikz writes fundamental domains as standalone LaTeX documents.
//
// The output compiles with pdflatex and needs only the standalone class and
// TikZ.
package tikz

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/matzehuels/fundomain/pkg/hyperbolic"
	"github.com/matzehuels/fundomain/pkg/render"
)

//go:embed template.tex
var source string

var tmpl = template.Must(template.New("tikz").Parse(source))

// margin is the horizontal padding around the widest vertex.
const margin = 0.5

type triangle struct {
	Path     string
	Label    string
	LabelPos string
}

// Render returns a LaTeX document drawing items.
func Render(items []render.Item, opts render.Options) ([]byte, error) {
	w := opts.WidthOf(items) + margin
	data := struct {
		Title     string
		AxisFrom  string
		AxisTo    string
		MaxHeight string
		Triangles []triangle
	}{
		Title:     opts.Title,
		AxisFrom:  render.Coord(-w),
		AxisTo:    render.Coord(w),
		MaxHeight: render.Coord(hyperbolic.MaxHeight),
	}
	if data.Title == "" {
		data.Title = "fundamental domain"
	}

	for _, it := range items {
		x, y := it.Triangle.LabelPos()
		data.Triangles = append(data.Triangles, triangle{
			Path:     Path(it.Triangle),
			Label:    it.Label,
			LabelPos: render.Pair(x, y),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("tikz template: %w", err)
	}
	return buf.Bytes(), nil
}

// Path returns the TikZ path C → A → B → C around t without the closing
// "-- cycle".
func Path(t hyperbolic.Triangle) string {
	edges := t.Edges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = segment(e, i == 0)
	}
	return strings.Join(parts, " ")
}

func segment(l hyperbolic.Line, first bool) string {
	if l.Vertical() {
		x1, y1, x2, y2 := l.Ends()
		if first {
			return render.Pair(x1, y1) + " -- " + render.Pair(x2, y2)
		}
		return "-- " + render.Pair(x2, y2)
	}

	from, to := l.Angles()
	arc := fmt.Sprintf("arc (%s:%s:%s)", render.Coord(from), render.Coord(to), render.Coord(l.Radius()))
	if first {
		return render.Pair(l.P.X(), l.P.Y()) + " " + arc
	}
	return arc
}
