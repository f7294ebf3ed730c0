package subgroup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/fundomain/pkg/errors"
)

var specRe = regexp.MustCompile(`^(gamma0|gamma1|gamma|g0|g1|g)\s*(?:\(\s*(\d+)\s*\)|:\s*(\d+))$`)

// Parse parses a subgroup spec such as "gamma0(5)" or "g1:7".
func Parse(spec string) (Group, error) {
	if err := errors.ValidateGroupSpec(spec); err != nil {
		return Group{}, err
	}
	s := strings.ToLower(strings.TrimSpace(spec))
	switch s {
	case "full", "sl2z", "sl2(z)":
		return Full(), nil
	}

	m := specRe.FindStringSubmatch(s)
	if m == nil {
		return Group{}, errors.New(errors.ErrCodeInvalidGroup,
			"unknown group %q (want full, gamma0(N), gamma1(N) or gamma(N))", spec)
	}
	digits := m[2]
	if digits == "" {
		digits = m[3]
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Group{}, errors.Wrap(errors.ErrCodeInvalidGroup, err, "invalid modulus in %q", spec)
	}

	switch m[1] {
	case "gamma0", "g0":
		return Gamma0(n)
	case "gamma1", "g1":
		return Gamma1(n)
	default:
		return Gamma(n)
	}
}
