package cli

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/postersmith/postersmith/pkg/catalog"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m categoryPickerModel, msgs ...tea.Msg) categoryPickerModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(categoryPickerModel)
		if !ok {
			t.Fatalf("Update returned unexpected model type %T", next)
		}
	}
	return m
}

func TestPickerToggleAndAccept(t *testing.T) {
	m := newCategoryPickerModel()

	// Toggle first entry, move down, toggle second, accept
	m = step(t, m, key(" "), key("down"), key(" "), key("enter"))

	if !m.accepted {
		t.Fatal("enter should accept the selection")
	}
	names := catalog.Names()
	want := []string{names[0], names[1]}
	if got := m.selected(); !reflect.DeepEqual(got, want) {
		t.Errorf("selected = %v, want %v", got, want)
	}
}

func TestPickerSelectAll(t *testing.T) {
	m := newCategoryPickerModel()
	m = step(t, m, key("a"), key("enter"))

	if got := m.selected(); !reflect.DeepEqual(got, catalog.Names()) {
		t.Errorf("selected = %v, want all categories", got)
	}
}

func TestPickerQuitWithoutAccept(t *testing.T) {
	m := newCategoryPickerModel()
	m = step(t, m, key(" "), key("q"))

	if m.accepted {
		t.Error("q should not accept the selection")
	}
}

func TestPickerToggleTwiceDeselects(t *testing.T) {
	m := newCategoryPickerModel()
	m = step(t, m, key(" "), key(" "), key("enter"))

	if got := m.selected(); len(got) != 0 {
		t.Errorf("selected = %v, want none", got)
	}
}

func TestPickerViewListsAllCategories(t *testing.T) {
	m := newCategoryPickerModel()
	view := m.View()
	for _, name := range catalog.Names() {
		if !strings.Contains(view, name) {
			t.Errorf("view missing category %q", name)
		}
	}
}
