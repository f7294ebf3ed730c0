package subgroup

import (
	"fmt"

	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/sl2z"
)

// Kind identifies the family a Group belongs to.
type Kind int

const (
	KindFull Kind = iota
	KindGamma0
	KindGamma1
	KindGamma
	KindCustom
)

// String returns the keyword Parse accepts for k.
func (k Kind) String() string {
	switch k {
	case KindFull:
		return "full"
	case KindGamma0:
		return "gamma0"
	case KindGamma1:
		return "gamma1"
	case KindGamma:
		return "gamma"
	default:
		return "custom"
	}
}

// Group is a subgroup of SL₂(ℤ) given by a membership predicate.
// Groups are immutable and safe to share.
type Group struct {
	kind     Kind
	n        int64
	name     string
	contains func(sl2z.Matrix) bool
}

// Full returns SL₂(ℤ) itself.
func Full() Group {
	return Group{kind: KindFull, n: 1, contains: func(sl2z.Matrix) bool { return true }}
}

// Gamma0 returns Γ₀(N) = {c ≡ 0 mod N}.
func Gamma0(n int64) (Group, error) {
	if err := errors.ValidateModulus(n); err != nil {
		return Group{}, err
	}
	return Group{kind: KindGamma0, n: n, contains: func(m sl2z.Matrix) bool {
		return mod(m.C, n) == 0
	}}, nil
}

// Gamma1 returns Γ₁(N) = {a ≡ 1, c ≡ 0, d ≡ 1 mod N}.
func Gamma1(n int64) (Group, error) {
	if err := errors.ValidateModulus(n); err != nil {
		return Group{}, err
	}
	return Group{kind: KindGamma1, n: n, contains: func(m sl2z.Matrix) bool {
		return mod(m.A-1, n) == 0 && mod(m.C, n) == 0 && mod(m.D-1, n) == 0
	}}, nil
}

// Gamma returns the principal congruence subgroup Γ(N) = {M ≡ I mod N}.
func Gamma(n int64) (Group, error) {
	if err := errors.ValidateModulus(n); err != nil {
		return Group{}, err
	}
	return Group{kind: KindGamma, n: n, contains: func(m sl2z.Matrix) bool {
		return mod(m.A-1, n) == 0 && mod(m.B, n) == 0 && mod(m.C, n) == 0 && mod(m.D-1, n) == 0
	}}, nil
}

// Custom wraps an arbitrary membership predicate. The caller is responsible
// for pred describing a finite-index subgroup; enumeration does not terminate
// otherwise.
func Custom(name string, pred func(sl2z.Matrix) bool) Group {
	return Group{kind: KindCustom, name: name, contains: pred}
}

// Kind returns the family of g.
func (g Group) Kind() Kind { return g.kind }

// Level returns the modulus N, or 0 for custom groups.
func (g Group) Level() int64 {
	if g.kind == KindCustom {
		return 0
	}
	return g.n
}

// Contains reports whether m ∈ Γ.
func (g Group) Contains(m sl2z.Matrix) bool {
	if g.contains == nil {
		return false
	}
	return g.contains(m)
}

// Equiv reports whether a and b represent the same coset of ±Γ.
func (g Group) Equiv(a, b sl2z.Matrix) bool {
	x := a.Mul(b.Inv())
	return g.Contains(x) || g.Contains(x.Neg())
}

// String returns a display name such as "Γ₀(5)".
func (g Group) String() string {
	switch g.kind {
	case KindFull:
		return "SL₂(ℤ)"
	case KindGamma0:
		return fmt.Sprintf("Γ₀(%d)", g.n)
	case KindGamma1:
		return fmt.Sprintf("Γ₁(%d)", g.n)
	case KindGamma:
		return fmt.Sprintf("Γ(%d)", g.n)
	}
	if g.name == "" {
		return "custom"
	}
	return g.name
}

// TeX returns the group name in TeX math notation.
func (g Group) TeX() string {
	switch g.kind {
	case KindFull:
		return `\mathrm{SL}_2(\mathbb{Z})`
	case KindGamma0:
		return fmt.Sprintf(`\Gamma_0(%d)`, g.n)
	case KindGamma1:
		return fmt.Sprintf(`\Gamma_1(%d)`, g.n)
	case KindGamma:
		return fmt.Sprintf(`\Gamma(%d)`, g.n)
	}
	return `\Gamma`
}

// Slug returns a filename-friendly identifier such as "gamma0-5".
func (g Group) Slug() string {
	switch g.kind {
	case KindFull:
		return "full"
	case KindCustom:
		return "custom"
	}
	return fmt.Sprintf("%s-%d", g.kind, g.n)
}

// mod returns the non-negative remainder of x modulo n.
func mod(x, n int64) int64 {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}
