// Package svg writes fundamental domains as self-contained SVG images.
//
// The upper half-plane is flipped so that y grows upwards on screen. Geodesic
// arcs become elliptical-arc commands with equal radii.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/fundomain/pkg/hyperbolic"
	"github.com/matzehuels/fundomain/pkg/render"
)

const (
	defaultScale = 120.0
	padding      = 20.0
	margin       = 0.5
	fontFamily   = "Times New Roman, serif"
)

const hoverCSS = `
    .tri { transition: fill 0.2s ease; }
    .tri:hover { fill: #9ecae1; }`

// Option configures [Render].
type Option func(*renderer)

type renderer struct {
	scale float64
	hover bool
}

// WithScale sets the number of pixels per unit of the half-plane.
func WithScale(px float64) Option {
	return func(r *renderer) {
		if px > 0 {
			r.scale = px
		}
	}
}

// WithHover highlights the triangle under the pointer.
func WithHover() Option { return func(r *renderer) { r.hover = true } }

// Render returns an SVG document drawing items.
func Render(items []render.Item, opts render.Options, options ...Option) []byte {
	r := renderer{scale: defaultScale}
	for _, opt := range options {
		opt(&r)
	}

	w := opts.WidthOf(items) + margin
	p := projection{width: w, scale: r.scale}
	frameW := 2*w*r.scale + 2*padding
	frameH := hyperbolic.MaxHeight*r.scale + 2*padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frameW, frameH, frameW, frameH)
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(opts.Title))
	}
	if r.hover {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", hoverCSS)
	}

	for i, it := range items {
		fmt.Fprintf(&buf, `  <path id="tri-%d" class="tri" d="%s" fill="#cccccc" stroke="#000000" stroke-width="3" stroke-linejoin="round"/>`+"\n",
			i, p.path(it.Triangle))
	}

	x1, y := p.point(-w, 0)
	x2, _ := p.point(w, 0)
	fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#000000" stroke-width="1.5"/>`+"\n", x1, y, x2, y)

	for _, it := range items {
		if it.Label == "" {
			continue
		}
		lx, ly := p.point(it.Triangle.LabelPos())
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			lx, ly, fontFamily, r.scale/10, escapeXML(Label(it.Label)))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// projection maps half-plane coordinates to pixels.
type projection struct {
	width float64
	scale float64
}

func (p projection) point(x, y float64) (float64, float64) {
	return (x+p.width)*p.scale + padding, (hyperbolic.MaxHeight-y)*p.scale + padding
}

func (p projection) path(t hyperbolic.Triangle) string {
	var sb strings.Builder
	for i, e := range t.Edges() {
		x1, y1, x2, y2 := e.Ends()
		if i == 0 {
			sx, sy := p.point(x1, y1)
			fmt.Fprintf(&sb, "M %.2f %.2f", sx, sy)
		}
		ex, ey := p.point(x2, y2)
		if e.Vertical() {
			fmt.Fprintf(&sb, " L %.2f %.2f", ex, ey)
			continue
		}
		// Counterclockwise in the half-plane is sweep 0 once y is flipped.
		from, to := e.Angles()
		sweep := 0
		if to < from {
			sweep = 1
		}
		r := e.Radius() * p.scale
		fmt.Fprintf(&sb, " A %.2f %.2f 0 0 %d %.2f %.2f", r, r, sweep, ex, ey)
	}
	sb.WriteString(" Z")
	return sb.String()
}

var superscripts = strings.NewReplacer(
	"-", "⁻", "0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
)

// Label turns a TeX word such as "S T^{-2}" into plain text "S T⁻²".
func Label(tex string) string {
	var sb strings.Builder
	for {
		i := strings.Index(tex, "^{")
		if i < 0 {
			sb.WriteString(tex)
			return sb.String()
		}
		j := strings.IndexByte(tex[i:], '}')
		if j < 0 {
			sb.WriteString(tex)
			return sb.String()
		}
		sb.WriteString(tex[:i])
		sb.WriteString(superscripts.Replace(tex[i+2 : i+j]))
		tex = tex[i+j+1:]
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
