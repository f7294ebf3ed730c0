package render

import (
	"math"
	"strconv"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/hyperbolic"
)

// IdentityLabel is drawn for the identity representative, whose word is empty.
const IdentityLabel = "I"

// Item is one triangle of a drawing.
type Item struct {
	Triangle hyperbolic.Triangle
	Label    string // empty for no label
}

// Options configures the drawing backends.
type Options struct {
	// Width is the largest |x| of the picture. Zero means compute it from
	// the items.
	Width float64

	// Title is written as a comment into text formats.
	Title string
}

// Items converts the representatives of d into drawable items. With labels
// set, each item carries the compact word of its representative.
func Items(d *domain.Domain, labels bool) []Item {
	items := make([]Item, len(d.Reps))
	for i, r := range d.Reps {
		items[i].Triangle = r.Triangle()
		if labels {
			items[i].Label = r.Label()
			if items[i].Label == "" {
				items[i].Label = IdentityLabel
			}
		}
	}
	return items
}

// WidthOf returns o.Width, or the largest |x| over the finite vertices of items.
func (o Options) WidthOf(items []Item) float64 {
	if o.Width > 0 {
		return o.Width
	}
	w := 0.0
	for _, it := range items {
		w = max(w, it.Triangle.MaxAbsX())
	}
	return w
}

// Coord formats a coordinate rounded to six decimals, without a negative zero.
func Coord(f float64) string {
	r := math.Round(f*1e6) / 1e6
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Pair formats a point as "(x, y)".
func Pair(x, y float64) string {
	return "(" + Coord(x) + ", " + Coord(y) + ")"
}
