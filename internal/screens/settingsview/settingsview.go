// Package settingsview lets the learner adjust their preferences.
package settingsview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/settings"
	"github.com/lernbox/lernbox/internal/ui/layout"
	"github.com/lernbox/lernbox/internal/ui/theme"
)

type settingsLoadedMsg struct {
	Settings settings.Settings
	Err      error
}

type settingsSavedMsg struct {
	Err error
}

const (
	rowSound = iota
	rowHighContrast
	rowReducedMotion
	rowFontScale
	rowCount
)

// SettingsScreen shows the per-profile preference toggles.
type SettingsScreen struct {
	profileID string
	manager   *settings.Manager

	current settings.Settings
	cursor  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen.
func New(profileID string, manager *settings.Manager) *SettingsScreen {
	return &SettingsScreen{profileID: profileID, manager: manager}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		loaded, err := s.manager.Load(context.Background(), s.profileID)
		return settingsLoadedMsg{Settings: loaded, Err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.current = msg.Settings
			theme.SetHighContrast(s.current.HighContrast)
		}
		s.loaded = true
		return s, nil

	case settingsSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < rowCount-1 {
				s.cursor++
			}
		case "enter", " ", "left", "right":
			return s, s.toggle()
		}
	}
	return s, nil
}

// toggle flips the selected setting and persists the full set.
func (s *SettingsScreen) toggle() tea.Cmd {
	if !s.loaded {
		return nil
	}
	switch s.cursor {
	case rowSound:
		s.current.Sound = !s.current.Sound
	case rowHighContrast:
		s.current.HighContrast = !s.current.HighContrast
		theme.SetHighContrast(s.current.HighContrast)
	case rowReducedMotion:
		s.current.ReducedMotion = !s.current.ReducedMotion
	case rowFontScale:
		s.current.FontScale++
		if s.current.FontScale > 3 {
			s.current.FontScale = 1
		}
	}

	saved := s.current
	return func() tea.Msg {
		err := s.manager.Save(context.Background(), s.profileID, saved)
		return settingsSavedMsg{Err: err}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading settings...")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Sound", onOff(s.current.Sound)},
		{"High contrast", onOff(s.current.HighContrast)},
		{"Reduced motion", onOff(s.current.ReducedMotion)},
		{"Font scale", fmt.Sprintf("%dx", s.current.FontScale)},
	}

	var b strings.Builder
	b.WriteString("\n\n")
	for i, row := range rows {
		line := fmt.Sprintf("%-18s %s", row.label, row.value)
		if i == s.cursor {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line)
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
