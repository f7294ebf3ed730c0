package domain

import (
	"testing"

	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/sl2z"
)

func TestByDistancePrefersShortWords(t *testing.T) {
	near := Candidate{Rep: Representative{Distance: 1}}
	far := Candidate{Rep: Representative{Distance: 3}}
	if ByDistance(near) <= ByDistance(far) {
		t.Error("nearer candidate should score higher")
	}
}

func TestByAppearancePrefersHighTriangles(t *testing.T) {
	s := identity().extend(sl2z.GenS)
	high := Candidate{Rep: identity().extend(sl2z.GenT)}
	low := Candidate{Rep: s.extend(sl2z.GenT)}
	if ByAppearance(high) <= ByAppearance(low) {
		t.Errorf("T scores %v, S T scores %v", ByAppearance(high), ByAppearance(low))
	}
}

func TestRandomNoiseIsSmall(t *testing.T) {
	c := Candidate{Rep: Representative{Distance: 2}}
	f := DistanceRandom(NewRand(1))
	for range 100 {
		got := f(c)
		if got < -2 || got >= -2+noise {
			t.Fatalf("score = %v, want in [-2, %v)", got, -2+noise)
		}
	}
}

func TestChoiceSeedIsReproducible(t *testing.T) {
	a, _ := Choice("random", 9)
	b, _ := Choice("random", 9)
	var c Candidate
	for range 10 {
		if a(c) != b(c) {
			t.Fatal("same seed produced different scores")
		}
	}
}

func TestChoiceUnknown(t *testing.T) {
	_, err := Choice("greedy", 1)
	if !errors.Is(err, errors.ErrCodeInvalidChoice) {
		t.Errorf("err = %v, want INVALID_CHOICE", err)
	}
}

func TestChoiceNames(t *testing.T) {
	want := []string{"appearance", "appearance-random", "distance", "distance-random", "random"}
	got := ChoiceNames()
	if len(got) != len(want) {
		t.Fatalf("ChoiceNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ChoiceNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
