package subgroup

import (
	"slices"
	"testing"
)

func TestPrimeFactors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{1, nil},
		{2, []int{2}},
		{12, []int{2, 3}},
		{17, []int{17}},
		{360, []int{2, 3, 5}},
		{49, []int{7}},
	}
	for _, tt := range tests {
		if got := PrimeFactors(tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("PrimeFactors(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestPsiAndJordan(t *testing.T) {
	psi := map[int]int{1: 1, 2: 3, 3: 4, 4: 6, 5: 6, 6: 12, 7: 8, 8: 12, 9: 12, 10: 18, 11: 12, 12: 24}
	for n, want := range psi {
		if got := Psi(n); got != want {
			t.Errorf("Psi(%d) = %d, want %d", n, got, want)
		}
	}
	j2 := map[int]int{1: 1, 2: 3, 3: 8, 4: 12, 5: 24, 6: 24, 7: 48}
	for n, want := range j2 {
		if got := Jordan2(n); got != want {
			t.Errorf("Jordan2(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		spec string
		want int
	}{
		{"full", 1},
		{"gamma0(1)", 1},
		{"gamma0(2)", 3},
		{"gamma0(5)", 6},
		{"gamma0(17)", 18},
		{"gamma1(1)", 1},
		{"gamma1(2)", 3},
		{"gamma1(3)", 4},
		{"gamma1(4)", 6},
		{"gamma1(5)", 12},
		{"gamma1(7)", 24},
		{"gamma(1)", 1},
		{"gamma(2)", 6},
		{"gamma(3)", 12},
		{"gamma(4)", 24},
		{"gamma(5)", 60},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			g, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.spec, err)
			}
			got, ok := g.Index()
			if !ok || got != tt.want {
				t.Errorf("Index() = %d, %v, want %d, true", got, ok, tt.want)
			}
		})
	}
}
