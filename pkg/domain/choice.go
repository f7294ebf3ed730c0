package domain

import (
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/fundomain/pkg/errors"
)

// noise is the scale of the random perturbation added by the mixed policies.
// It only breaks ties between otherwise equal scores.
const noise = 0.001

// ByDistance scores a candidate by its negated distance, growing the domain
// breadth-first.
func ByDistance(c Candidate) float64 { return -float64(c.Rep.Distance) }

// ByAppearance scores a candidate by the mean height of its triangle.
func ByAppearance(c Candidate) float64 { return c.Rep.Appearance() }

// Random returns a policy with uniformly random scores.
func Random(rng *rand.Rand) ChoiceFunc {
	return func(Candidate) float64 { return rng.Float64() }
}

// AppearanceRandom is [ByAppearance] with a small random perturbation.
func AppearanceRandom(rng *rand.Rand) ChoiceFunc {
	return func(c Candidate) float64 { return ByAppearance(c) + noise*rng.Float64() }
}

// DistanceRandom is [ByDistance] with a small random perturbation.
func DistanceRandom(rng *rand.Rand) ChoiceFunc {
	return func(c Candidate) float64 { return ByDistance(c) + noise*rng.Float64() }
}

// NewRand returns the seeded generator used by the random policies.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

var choices = map[string]func(*rand.Rand) ChoiceFunc{
	"distance":          func(*rand.Rand) ChoiceFunc { return ByDistance },
	"appearance":        func(*rand.Rand) ChoiceFunc { return ByAppearance },
	"random":            Random,
	"appearance-random": AppearanceRandom,
	"distance-random":   DistanceRandom,
}

// Choice returns the named policy. Random policies draw from a generator
// seeded with seed, so equal names and seeds give equal domains.
func Choice(name string, seed uint64) (ChoiceFunc, error) {
	f, ok := choices[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidChoice, "unknown choice %q (want one of %v)", name, ChoiceNames())
	}
	return f(NewRand(seed)), nil
}

// ChoiceNames lists the names accepted by [Choice], sorted.
func ChoiceNames() []string {
	names := make([]string, 0, len(choices))
	for n := range choices {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
