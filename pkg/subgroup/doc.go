// Package subgroup describes finite-index subgroups Γ ⊆ SL₂(ℤ) by a
// membership predicate.
//
// # Standard Groups
//
// The four congruence families are built in:
//
//   - [Full]: all of SL₂(ℤ)
//   - [Gamma0]: c ≡ 0 (mod N)
//   - [Gamma1]: a ≡ 1, c ≡ 0, d ≡ 1 (mod N)
//   - [Gamma]: a ≡ 1, b ≡ 0, c ≡ 0, d ≡ 1 (mod N)
//
// Any other arithmetic condition can be supplied through [Custom]. The
// enumerator only ever calls [Group.Contains] and [Group.Equiv], so a custom
// predicate works as long as it describes a finite-index subgroup.
//
// # Coset Equivalence
//
// Matrices are compared up to sign throughout fundomain, because M and −M
// act identically on the upper half-plane. [Group.Equiv] follows suit: g and h
// lie in the same coset when g·h⁻¹ or −g·h⁻¹ belongs to Γ. Cosets are
// therefore cosets of ±Γ in PSL₂(ℤ), and [Group.Index] reports that index.
//
// # Parsing
//
// [Parse] accepts the spellings used on the command line:
//
//	full, sl2z
//	gamma0(11), g0:11
//	gamma1(5),  g1:5
//	gamma(3),   g:3
package subgroup
