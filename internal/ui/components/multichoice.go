package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/ui/theme"
)

// MultiChoice is a numbered answer selector for choice exercises.
type MultiChoice struct {
	Choices  []string
	Selected int
}

// NewMultiChoice creates a selector over the given answer choices.
func NewMultiChoice(choices []string) MultiChoice {
	return MultiChoice{Choices: choices}
}

// Update moves the selection with arrows. A number key jumps straight to
// that choice; the second return reports such a direct pick so the caller
// can submit it without a separate confirm.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(m.Choices) {
			m.Selected = idx
			return m, true
		}
	}

	return m, false
}

// Value returns the text of the selected choice, or "" when the selector
// is empty.
func (m MultiChoice) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Choices) {
		return ""
	}
	return m.Choices[m.Selected]
}

// View renders the numbered choices with the selection marked.
func (m MultiChoice) View() string {
	var s string
	for i, choice := range m.Choices {
		prefix := "  "
		if i == m.Selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
