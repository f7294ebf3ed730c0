package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/subgroup"
)

func gamma0Domain(t *testing.T, n int64) *domain.Domain {
	t.Helper()
	g, err := subgroup.Gamma0(n)
	if err != nil {
		t.Fatal(err)
	}
	d, err := domain.Enumerate(context.Background(), g, domain.ByDistance)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func press(m ExplorerModel, keys ...string) ExplorerModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(ExplorerModel)
	}
	return m
}

func TestExplorerFollowsLinks(t *testing.T) {
	// Γ₀(5) by distance: 0 "", 1 "S", 2 "S T", 3 "S T^{-1}", 4 "S T^{2}", 5 "S T^{-2}".
	m := NewExplorerModel(gamma0Domain(t, 5))

	tests := []struct {
		keys []string
		want int
	}{
		{[]string{"s"}, 1},
		{[]string{"s", "t"}, 2},
		{[]string{"s", "t", "t"}, 4},
		{[]string{"s", "T", "T"}, 5},
		{[]string{"s", "t", "b"}, 1},
		{[]string{"s", "t", "b", "b"}, 0},
		{[]string{"b"}, 0},
		{[]string{"down", "down", "up"}, 1},
		{[]string{"up"}, 0},
		{[]string{"t"}, 0},
	}
	for _, tt := range tests {
		got := press(m, tt.keys...)
		if got.Cursor != tt.want {
			t.Errorf("keys %v: cursor = %d, want %d", tt.keys, got.Cursor, tt.want)
		}
	}
}

func TestExplorerScrolls(t *testing.T) {
	m := NewExplorerModel(gamma0Domain(t, 11))
	m.Height = 3
	m = press(m, "down", "down", "down", "down")
	if m.Cursor != 4 || m.Offset != 2 {
		t.Errorf("cursor %d offset %d, want 4 and 2", m.Cursor, m.Offset)
	}
	m = press(m, "up", "up", "up")
	if m.Offset != 1 {
		t.Errorf("offset = %d, want 1", m.Offset)
	}
}

func TestExplorerQuit(t *testing.T) {
	m := NewExplorerModel(gamma0Domain(t, 2))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not return tea.Quit")
	}
}

func TestExplorerView(t *testing.T) {
	m := press(NewExplorerModel(gamma0Domain(t, 5)), "s")
	view := m.View()
	for _, want := range []string{"Γ₀(5)", "S T^{-1}", "▸ ", "[2/6]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
