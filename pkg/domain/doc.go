// Package domain computes fundamental domains of finite-index subgroups of
// SL₂(ℤ) by coset enumeration.
//
// # Overview
//
// A fundamental domain of Γ ⊂ SL₂(ℤ) is a union of translates M·F of the
// standard triangle F, one for each right coset ΓM. [Enumerate] finds a set of
// coset representatives reachable from the identity by the moves T, T⁻¹ and S,
// so that the translated triangles form a connected region.
//
// Each [Representative] records its matrix, its distance from the identity,
// the word of moves that produced it, and one [Link] per move naming the
// representative reached by that move. Links are symmetric: if T leads from i
// to j then T⁻¹ leads from j back to i, and S links are mutual.
//
// # Choice Functions
//
// Enumeration grows the domain one representative at a time. Every round
// collects the open candidates and appends the one with the highest score
// under a [ChoiceFunc]. The choice decides the shape of the region, never its
// size:
//
//   - [ByDistance] grows breadth-first, giving compact words
//   - [ByAppearance] prefers triangles high in the half-plane, which keeps
//     the picture readable
//   - [Random], [AppearanceRandom] and [DistanceRandom] add seeded noise
//
// Use [Choice] to look a policy up by name.
//
// # Usage
//
//	g, _ := subgroup.Gamma0(5)
//	d, err := domain.Enumerate(ctx, g, domain.ByDistance)
//	if err != nil {
//	    return err
//	}
//	for _, tri := range d.Triangles() {
//	    // draw tri
//	}
//
// Enumeration of a group that is not of finite index never ends on its own;
// pass [WithLimit] to bound the number of representatives.
package domain
