package asy

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/hyperbolic"
	"github.com/matzehuels/fundomain/pkg/render"
	"github.com/matzehuels/fundomain/pkg/subgroup"
)

func TestPathReference(t *testing.T) {
	got := Path(hyperbolic.Reference())
	want := "(0.5, 2) -- (0.5, 0.866025) -- arc((0, 0), 1, 60, 120) -- (-0.5, 2)"
	if got != want {
		t.Errorf("Path() =\n  %s\nwant\n  %s", got, want)
	}
}

func TestPathFiniteTriangle(t *testing.T) {
	// Image of the reference triangle under S: the cusp moves to 0.
	tri := hyperbolic.Triangle{A: hyperbolic.Pt(-0.5, 0.8660254037844386), B: hyperbolic.Pt(0.5, 0.8660254037844386), C: hyperbolic.Pt(0, 0)}
	got := Path(tri)
	if strings.Contains(got, ", 2)") {
		t.Errorf("finite triangle should not reach MaxHeight: %s", got)
	}
	if n := strings.Count(got, "arc("); n != 3 {
		t.Errorf("arc count = %d, want 3 in %s", n, got)
	}
	if !strings.HasPrefix(got, "arc(") {
		t.Errorf("first side should be an arc: %s", got)
	}
}

func TestRender(t *testing.T) {
	g, _ := subgroup.Gamma0(5)
	d, err := domain.Enumerate(context.Background(), g, domain.ByDistance)
	if err != nil {
		t.Fatal(err)
	}

	out, err := Render(render.Items(d, true), render.Options{Title: g.String()})
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)

	if n := strings.Count(src, "fill("); n != d.Len() {
		t.Errorf("fill count = %d, want %d", n, d.Len())
	}
	if n := strings.Count(src, "linewidth(1.5pt)"); n != d.Len() {
		t.Errorf("draw count = %d, want %d", n, d.Len())
	}
	if n := strings.Count(src, "label("); n != d.Len() {
		t.Errorf("label count = %d, want %d", n, d.Len())
	}
	for _, want := range []string{
		"// Γ₀(5)",
		"RGB(204, 204, 204)",
		`label("\tiny $S T^{2}$"`,
		"real MAX_HEIGHT = 2;",
		"real MAX_WIDTH = 0.5;",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestRenderWithoutLabels(t *testing.T) {
	items := []render.Item{{Triangle: hyperbolic.Reference()}}
	out, err := Render(items, render.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "label(") {
		t.Errorf("unexpected label:\n%s", out)
	}
	if !strings.Contains(string(out), "// fundamental domain") {
		t.Errorf("missing default title:\n%s", out)
	}
}
