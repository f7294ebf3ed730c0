package sl2z

// Generator is one of the three moves used to walk SL₂(ℤ): T, T⁻¹ and S.
type Generator int

const (
	GenT Generator = iota
	GenTInv
	GenS
)

// Generators lists the moves in the order the enumerator scans them.
var Generators = [...]Generator{GenT, GenTInv, GenS}

// Matrix returns the group element of g.
func (g Generator) Matrix() Matrix {
	switch g {
	case GenT:
		return T()
	case GenTInv:
		return TPow(-1)
	default:
		return S()
	}
}

// Inverse returns the move that undoes g. S is its own inverse in PSL₂(ℤ).
func (g Generator) Inverse() Generator {
	switch g {
	case GenT:
		return GenTInv
	case GenTInv:
		return GenT
	default:
		return GenS
	}
}

// String returns the TeX-friendly symbol of g.
func (g Generator) String() string {
	switch g {
	case GenT:
		return "T"
	case GenTInv:
		return "T^{-1}"
	case GenS:
		return "S"
	}
	return "?"
}

// Word multiplies the generators of w from left to right, starting at the identity.
func Word(w []Generator) Matrix {
	m := Identity()
	for _, g := range w {
		m = m.Mul(g.Matrix())
	}
	return m
}
