package subgroup

// Index returns the number of cosets of ±Γ in PSL₂(ℤ), which is the number of
// representatives a complete enumeration produces. The second result is false
// for custom predicates, whose index is unknown.
func (g Group) Index() (int, bool) {
	n := int(g.n)
	switch g.kind {
	case KindFull:
		return 1, true
	case KindGamma0:
		return Psi(n), true
	case KindGamma1:
		if n <= 2 {
			return Jordan2(n), true
		}
		return Jordan2(n) / 2, true
	case KindGamma:
		if n <= 2 {
			return n * Jordan2(n), true
		}
		return n * Jordan2(n) / 2, true
	}
	return 0, false
}

// Psi is Dedekind's ψ(n) = n ∏_{p|n} (1 + 1/p).
func Psi(n int) int {
	r := n
	for _, p := range PrimeFactors(n) {
		r = r / p * (p + 1)
	}
	return r
}

// Jordan2 is Jordan's totient J₂(n) = n² ∏_{p|n} (1 − 1/p²).
func Jordan2(n int) int {
	r := n * n
	for _, p := range PrimeFactors(n) {
		r = r / (p * p) * (p*p - 1)
	}
	return r
}

// PrimeFactors returns the distinct prime divisors of n in increasing order.
func PrimeFactors(n int) []int {
	var ps []int
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		ps = append(ps, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		ps = append(ps, n)
	}
	return ps
}
