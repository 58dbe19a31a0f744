package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMultiChoiceNavigationStaysInBounds(t *testing.T) {
	m := NewMultiChoice([]string{"12", "14", "16"})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Fatalf("selected = %d, want 0 at top", m.Selected)
	}

	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if m.Selected != 2 {
		t.Fatalf("selected = %d, want 2 at bottom", m.Selected)
	}
}

func TestMultiChoiceNumberKeyChooses(t *testing.T) {
	m := NewMultiChoice([]string{"12", "14", "16"})

	m, chosen := m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if !chosen {
		t.Fatal("number key must report a direct pick")
	}
	if m.Value() != "14" {
		t.Fatalf("value = %q, want %q", m.Value(), "14")
	}

	// A number beyond the choice count changes nothing.
	m, chosen = m.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	if chosen || m.Value() != "14" {
		t.Fatalf("out-of-range pick: chosen=%v value=%q", chosen, m.Value())
	}
}

func TestMultiChoiceArrowsDoNotChoose(t *testing.T) {
	m := NewMultiChoice([]string{"12", "14"})

	m, chosen := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if chosen {
		t.Fatal("arrow keys must only move the selection")
	}
	if m.Value() != "14" {
		t.Fatalf("value = %q, want %q", m.Value(), "14")
	}
}

func TestMultiChoiceEmptyValue(t *testing.T) {
	m := NewMultiChoice(nil)
	if m.Value() != "" {
		t.Fatalf("value = %q, want empty", m.Value())
	}
}

func TestMultiChoiceViewMarksSelection(t *testing.T) {
	m := NewMultiChoice([]string{"12", "14"})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	view := m.View()
	if !strings.Contains(view, "> 2) 14") {
		t.Fatalf("selection marker missing:\n%s", view)
	}
	if !strings.Contains(view, "  1) 12") {
		t.Fatalf("unselected row missing:\n%s", view)
	}
}
