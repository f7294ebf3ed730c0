package domain

import (
	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/hyperbolic"
	"github.com/matzehuels/fundomain/pkg/sl2z"
	"github.com/matzehuels/fundomain/pkg/subgroup"
)

// Domain is a complete set of coset representatives for Group, in the order
// they were discovered. Reps[0] is always the identity.
type Domain struct {
	Group  subgroup.Group
	Reps   []Representative
	Rounds int
}

// Len returns the number of representatives, which equals the index of ±Γ
// in PSL₂(ℤ).
func (d *Domain) Len() int { return len(d.Reps) }

// Validate checks that every move of every representative is linked and that
// the links are symmetric.
func (d *Domain) Validate() error {
	n := Link(len(d.Reps))
	for i, r := range d.Reps {
		for _, g := range sl2z.Generators {
			l := r.Link(g)
			if l == NoLink {
				return errors.New(errors.ErrCodeInternal, "representative %d: %s link unset", i, g)
			}
			if l < 0 || l >= n {
				return errors.New(errors.ErrCodeInternal, "representative %d: %s link %d out of range", i, g, l)
			}
			if back := d.Reps[l].Link(g.Inverse()); back != Link(i) {
				return errors.New(errors.ErrCodeInternal,
					"representative %d: %s leads to %d but %s leads back to %d", i, g, l, g.Inverse(), back)
			}
		}
	}
	return nil
}

// Triangles returns the translated reference triangle of every representative.
func (d *Domain) Triangles() []hyperbolic.Triangle {
	out := make([]hyperbolic.Triangle, len(d.Reps))
	for i, r := range d.Reps {
		out[i] = r.Triangle()
	}
	return out
}

// Width returns the largest |x| of any finite vertex, used to size drawings.
func (d *Domain) Width() float64 {
	w := 0.0
	for _, t := range d.Triangles() {
		w = max(w, t.MaxAbsX())
	}
	return w
}
