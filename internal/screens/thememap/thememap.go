// Package thememap shows every theme with its four levels, which of them
// are open, and what unlocks the next global level.
package thememap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/badges"
	"github.com/lernbox/lernbox/internal/catalog"
	"github.com/lernbox/lernbox/internal/exercises"
	"github.com/lernbox/lernbox/internal/progress"
	"github.com/lernbox/lernbox/internal/progression"
	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	sessionscreen "github.com/lernbox/lernbox/internal/screens/session"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/lernbox/lernbox/internal/ui/layout"
	"github.com/lernbox/lernbox/internal/ui/theme"
)

type progressLoadedMsg struct {
	Cache *store.StatsCache
	Err   error
}

// ThemeMapScreen displays the theme/level grid.
type ThemeMapScreen struct {
	profileID string
	bank      *exercises.Bank
	eventRepo store.EventRepo
	loader    *progress.Loader
	badgeSvc  *badges.Service

	themes      []catalog.Theme
	themeLevels map[string]int
	cursorTheme int
	cursorLevel int
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*ThemeMapScreen)(nil)
var _ screen.KeyHintProvider = (*ThemeMapScreen)(nil)

// New creates a ThemeMapScreen.
func New(profileID string, bank *exercises.Bank, eventRepo store.EventRepo, loader *progress.Loader, badgeSvc *badges.Service) *ThemeMapScreen {
	return &ThemeMapScreen{
		profileID:   profileID,
		bank:        bank,
		eventRepo:   eventRepo,
		loader:      loader,
		badgeSvc:    badgeSvc,
		themes:      catalog.Themes(),
		cursorLevel: 1,
	}
}

func (s *ThemeMapScreen) Init() tea.Cmd {
	return func() tea.Msg {
		cache, err := s.loader.Load(context.Background(), s.profileID)
		return progressLoadedMsg{Cache: cache, Err: err}
	}
}

func (s *ThemeMapScreen) Title() string {
	return "Theme Map"
}

func (s *ThemeMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Theme"},
		{Key: "←→", Description: "Level"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ThemeMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.themeLevels = msg.Cache.ThemeLevels
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursorTheme > 0 {
				s.cursorTheme--
			}
		case "down", "j":
			if s.cursorTheme < len(s.themes)-1 {
				s.cursorTheme++
			}
		case "left", "h":
			if s.cursorLevel > 1 {
				s.cursorLevel--
			}
		case "right", "l":
			if s.cursorLevel < progression.MaxThemeLevel {
				s.cursorLevel++
			}
		case "enter":
			return s, s.startSession()
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// startSession opens a practice session for the selected theme and level
// if progression allows it.
func (s *ThemeMapScreen) startSession() tea.Cmd {
	if !s.loaded || s.cursorTheme >= len(s.themes) {
		return nil
	}
	t := s.themes[s.cursorTheme]
	if !progression.IsAccessible(t.ID, s.cursorLevel, s.themeLevels, catalog.ThemeIDs()) {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(s.profileID, t.ID, s.cursorLevel, s.bank, s.eventRepo, s.loader, s.badgeSvc),
		}
	}
}

func (s *ThemeMapScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading your map...")
	}

	themeIDs := catalog.ThemeIDs()
	global := progression.GlobalLevel(s.themeLevels, themeIDs)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Global level %d", global)))
	b.WriteString("\n\n")

	for ti, t := range s.themes {
		b.WriteString(s.renderThemeRow(ti, t, width))
		b.WriteString("\n")
	}

	// Next unlock requirement.
	if msg, ok := progression.NextUnlockRequirement(s.themeLevels, themeIDs, catalog.ThemeNames()); ok {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(msg))
	} else {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).Bold(true).
			Render("Everything unlocked. Amazing!"))
	}

	return b.String()
}

func (s *ThemeMapScreen) renderThemeRow(ti int, t catalog.Theme, width int) string {
	themeIDs := catalog.ThemeIDs()

	name := fmt.Sprintf("%s %-10s", t.Icon, t.Name)
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if ti == s.cursorTheme {
		nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
	}

	var cells []string
	for lvl := 1; lvl <= progression.MaxThemeLevel; lvl++ {
		var cell string
		var style lipgloss.Style

		switch {
		case progression.IsCompleted(t.ID, lvl, s.themeLevels):
			cell = fmt.Sprintf("[✓ %d]", lvl)
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case progression.IsAccessible(t.ID, lvl, s.themeLevels, themeIDs):
			cell = fmt.Sprintf("[  %d]", lvl)
			style = lipgloss.NewStyle().Foreground(theme.Text)
		default:
			cell = fmt.Sprintf("[🔒%d]", lvl)
			style = lipgloss.NewStyle().Foreground(theme.Locked)
		}

		if ti == s.cursorTheme && lvl == s.cursorLevel {
			style = style.Bold(true).Underline(true)
		}
		cells = append(cells, style.Render(cell))
	}

	row := nameStyle.Render(name) + "   " + strings.Join(cells, "  ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}
