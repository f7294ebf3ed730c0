package sl2z

import (
	"errors"
	"fmt"

	"github.com/matzehuels/fundomain/pkg/hyperbolic"
)

// ErrDeterminant is returned by [New] when ad − bc ≠ 1.
var ErrDeterminant = errors.New("determinant must be 1")

// Matrix is an element [A B; C D] of SL₂(ℤ).
//
// The zero value is not a valid group element; use [New], [MustNew] or one of
// the named constructors.
type Matrix struct {
	A, B, C, D int64
}

// New returns the matrix [a b; c d], or ErrDeterminant if ad − bc ≠ 1.
func New(a, b, c, d int64) (Matrix, error) {
	m := Matrix{A: a, B: b, C: c, D: d}
	if det := m.Det(); det != 1 {
		return Matrix{}, fmt.Errorf("%w: [%d %d; %d %d] has determinant %d", ErrDeterminant, a, b, c, d, det)
	}
	return m, nil
}

// MustNew is like [New] but panics on an invalid determinant.
func MustNew(a, b, c, d int64) Matrix {
	m, err := New(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns [1 0; 0 1].
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// T returns the translation [1 1; 0 1].
func T() Matrix { return TPow(1) }

// TPow returns Tⁿ = [1 n; 0 1].
func TPow(n int64) Matrix { return Matrix{A: 1, B: n, D: 1} }

// S returns the inversion [0 −1; 1 0].
func S() Matrix { return Matrix{B: -1, C: 1} }

// Det returns ad − bc.
func (m Matrix) Det() int64 { return m.A*m.D - m.B*m.C }

// Mul returns the product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
}

// Inv returns m⁻¹ = [d −b; −c a].
func (m Matrix) Inv() Matrix { return Matrix{A: m.D, B: -m.B, C: -m.C, D: m.A} }

// Neg returns −m.
func (m Matrix) Neg() Matrix { return Matrix{A: -m.A, B: -m.B, C: -m.C, D: -m.D} }

// Equal reports whether m and o are equal up to an overall sign.
func (m Matrix) Equal(o Matrix) bool { return m == o || m == o.Neg() }

// IsIdentity reports whether m equals ±I.
func (m Matrix) IsIdentity() bool { return m.Equal(Identity()) }

// Act applies the Möbius transformation z ↦ (az+b)/(cz+d) to p.
func (m Matrix) Act(p hyperbolic.Point) hyperbolic.Point {
	if p.IsInfinity() {
		if m.C == 0 {
			return hyperbolic.Infinity()
		}
		return hyperbolic.Pt(float64(m.A)/float64(m.C), 0)
	}
	num := complex(float64(m.A), 0)*p.Z + complex(float64(m.B), 0)
	den := complex(float64(m.C), 0)*p.Z + complex(float64(m.D), 0)
	if den == 0 {
		return hyperbolic.Infinity()
	}
	return hyperbolic.FromComplex(num / den)
}

// String renders m as "[a b; c d]".
func (m Matrix) String() string {
	return fmt.Sprintf("[%d %d; %d %d]", m.A, m.B, m.C, m.D)
}
