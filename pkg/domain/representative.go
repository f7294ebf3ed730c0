package domain

import (
	"fmt"
	"strings"

	"github.com/matzehuels/fundomain/pkg/hyperbolic"
	"github.com/matzehuels/fundomain/pkg/sl2z"
)

// Link is the index of a representative inside a [Domain], or [NoLink].
type Link int

// NoLink marks a move whose target has not been determined.
const NoLink Link = -1

// Representative is one coset representative together with its position in
// the enumeration graph.
type Representative struct {
	Matrix   sl2z.Matrix
	Distance int
	Word     []sl2z.Generator

	T    Link
	TInv Link
	S    Link
}

func identity() Representative {
	return Representative{Matrix: sl2z.Identity(), T: NoLink, TInv: NoLink, S: NoLink}
}

// Link returns the target of move g.
func (r Representative) Link(g sl2z.Generator) Link {
	switch g {
	case sl2z.GenT:
		return r.T
	case sl2z.GenTInv:
		return r.TInv
	default:
		return r.S
	}
}

func (r *Representative) setLink(g sl2z.Generator, l Link) {
	switch g {
	case sl2z.GenT:
		r.T = l
	case sl2z.GenTInv:
		r.TInv = l
	default:
		r.S = l
	}
}

// Complete reports whether all three moves are linked.
func (r Representative) Complete() bool {
	return r.T != NoLink && r.TInv != NoLink && r.S != NoLink
}

// Label renders the word compactly with runs of T collapsed into powers,
// e.g. "S T^{2} S T^{-1}". The identity has an empty label.
func (r Representative) Label() string {
	var parts []string
	for i := 0; i < len(r.Word); {
		g := r.Word[i]
		if g == sl2z.GenS {
			parts = append(parts, "S")
			i++
			continue
		}
		j := i
		for j < len(r.Word) && r.Word[j] == g {
			j++
		}
		n := j - i
		switch {
		case n == 1:
			parts = append(parts, g.String())
		case g == sl2z.GenT:
			parts = append(parts, fmt.Sprintf("T^{%d}", n))
		default:
			parts = append(parts, fmt.Sprintf("T^{-%d}", n))
		}
		i = j
	}
	return strings.Join(parts, " ")
}

// Triangle returns the image of the reference triangle under the matrix.
func (r Representative) Triangle() hyperbolic.Triangle {
	ref := hyperbolic.Reference()
	return hyperbolic.Triangle{
		A: r.Matrix.Act(ref.A),
		B: r.Matrix.Act(ref.B),
		C: r.Matrix.Act(ref.C),
	}
}

// Appearance returns the mean vertex height of the triangle.
func (r Representative) Appearance() float64 {
	return r.Triangle().Appearance()
}

func (r Representative) extend(g sl2z.Generator) Representative {
	word := make([]sl2z.Generator, len(r.Word), len(r.Word)+1)
	copy(word, r.Word)
	return Representative{
		Matrix:   r.Matrix.Mul(g.Matrix()),
		Distance: r.Distance + 1,
		Word:     append(word, g),
		T:        NoLink,
		TInv:     NoLink,
		S:        NoLink,
	}
}
