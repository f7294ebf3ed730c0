// Package asy writes fundamental domains as Asymptote scripts.
//
// Each triangle becomes a fill and a draw of the same closed path. Geodesic
// arcs use arc(center, radius, from, to) with angles in degrees; vertical
// sides are straight segments, and the point at infinity is cut off at
// [hyperbolic.MaxHeight].
package asy

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/matzehuels/fundomain/pkg/hyperbolic"
	"github.com/matzehuels/fundomain/pkg/render"
)

//go:embed template.asy
var source string

var tmpl = template.Must(template.New("asy").Parse(source))

type triangle struct {
	Path     string
	Label    string
	LabelPos string
}

// Render returns an Asymptote script drawing items.
func Render(items []render.Item, opts render.Options) ([]byte, error) {
	data := struct {
		Title     string
		MaxWidth  string
		MaxHeight string
		Triangles []triangle
	}{
		Title:     opts.Title,
		MaxWidth:  render.Coord(opts.WidthOf(items)),
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
		return nil, fmt.Errorf("asy template: %w", err)
	}
	return buf.Bytes(), nil
}

// Path returns the open Asymptote path C → A → B → C around t, with the
// infinite vertex, if any, in C.
func Path(t hyperbolic.Triangle) string {
	edges := t.Edges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = segment(e, i == 0)
	}
	return strings.Join(parts, " ")
}

// segment draws one side. The first side states its start point; later sides
// continue from the current point.
func segment(l hyperbolic.Line, first bool) string {
	switch {
	case l.Vertical():
		x1, y1, x2, y2 := l.Ends()
		if first {
			return render.Pair(x1, y1) + " -- " + render.Pair(x2, y2)
		}
		return "-- " + render.Pair(x2, y2)
	default:
		from, to := l.Angles()
		arc := fmt.Sprintf("arc(%s, %s, %s, %s)",
			render.Pair(l.Center(), 0), render.Coord(l.Radius()), render.Coord(from), render.Coord(to))
		if first {
			return arc
		}
		return "-- " + arc
	}
}
