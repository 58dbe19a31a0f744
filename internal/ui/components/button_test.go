package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pressedMsg struct{}

func TestButtonFiresOnEnter(t *testing.T) {
	b := NewButton("Yes", true, func() tea.Cmd {
		return func() tea.Msg { return pressedMsg{} }
	})

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("active button must fire on enter")
	}
	if _, ok := cmd().(pressedMsg); !ok {
		t.Fatal("expected the OnPress command")
	}
}

func TestInactiveButtonIgnoresEnter(t *testing.T) {
	b := NewButton("No", false, func() tea.Cmd {
		return func() tea.Msg { return pressedMsg{} }
	})

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("inactive button must not fire")
	}
}
