package sl2z

import "testing"

func TestGeneratorInverse(t *testing.T) {
	for _, g := range Generators {
		if g.Inverse().Inverse() != g {
			t.Errorf("%v.Inverse().Inverse() = %v", g, g.Inverse().Inverse())
		}
		if p := g.Matrix().Mul(g.Inverse().Matrix()); !p.IsIdentity() {
			t.Errorf("%v · %v = %v, want ±I", g, g.Inverse(), p)
		}
	}
}

func TestGeneratorString(t *testing.T) {
	want := map[Generator]string{GenT: "T", GenTInv: "T^{-1}", GenS: "S"}
	for g, s := range want {
		if g.String() != s {
			t.Errorf("%d.String() = %q, want %q", g, g.String(), s)
		}
	}
}

func TestWord(t *testing.T) {
	if got := Word(nil); got != Identity() {
		t.Errorf("Word(nil) = %v, want identity", got)
	}
	got := Word([]Generator{GenS, GenT, GenT})
	if want := S().Mul(TPow(2)); got != want {
		t.Errorf("Word(S T T) = %v, want %v", got, want)
	}
}
