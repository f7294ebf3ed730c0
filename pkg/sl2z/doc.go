// Package sl2z implements the modular group SL₂(ℤ) of 2×2 integer matrices
// with determinant 1.
//
// # Overview
//
// A [Matrix] is an immutable value. Construction through [New] rejects any
// entries whose determinant is not 1, so every Matrix in circulation is a
// valid group element. The group operations [Matrix.Mul] and [Matrix.Inv]
// never need to re-validate: SL₂(ℤ) is closed under both.
//
//	m, err := sl2z.New(2, 1, 1, 1)
//	if err != nil {
//	    return err // ErrDeterminant
//	}
//	id := m.Mul(m.Inv()) // identity
//
// # Equality
//
// Two matrices that differ only by an overall sign induce the same Möbius
// transformation of the upper half-plane, so [Matrix.Equal] treats M and −M
// as equal. Use == for exact componentwise comparison.
//
// # Generators
//
// SL₂(ℤ) is generated by the translation T = [1 1; 0 1] and the inversion
// S = [0 −1; 1 0]. [Generator] names the three moves T, T⁻¹ and S used by the
// coset enumerator.
//
// # Möbius Action
//
// [Matrix.Act] applies z ↦ (az+b)/(cz+d) to a [hyperbolic.Point]. The point at
// infinity is mapped to infinity when c = 0 and to the boundary point a/c
// otherwise.
//
// [hyperbolic.Point]: github.com/matzehuels/fundomain/pkg/hyperbolic.Point
package sl2z
