// Package home is the main menu shown after a profile is chosen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/badges"
	"github.com/lernbox/lernbox/internal/exercises"
	"github.com/lernbox/lernbox/internal/profile"
	"github.com/lernbox/lernbox/internal/progress"
	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/screens/badgecase"
	"github.com/lernbox/lernbox/internal/screens/dashboard"
	"github.com/lernbox/lernbox/internal/screens/settingsview"
	"github.com/lernbox/lernbox/internal/screens/statsview"
	"github.com/lernbox/lernbox/internal/screens/thememap"
	"github.com/lernbox/lernbox/internal/settings"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/lernbox/lernbox/internal/ui/components"
	"github.com/lernbox/lernbox/internal/ui/theme"
)

type statsLoadedMsg struct {
	TotalStars  int
	GlobalLevel int
	Exercises   int
	Err         error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	profile store.Profile
	loader  *progress.Loader
	menu    components.Menu

	totalStars  int
	globalLevel int
	exercises   int
	loaded      bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for the given profile. welcomeFactory builds
// the profile picker so switching profiles does not import it directly.
func New(p store.Profile, bank *exercises.Bank, eventRepo store.EventRepo, loader *progress.Loader, badgeSvc *badges.Service, profiles *profile.Service, settingsMgr *settings.Manager, welcomeFactory func() screen.Screen) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Practice", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: thememap.New(p.ID, bank, eventRepo, loader, badgeSvc)}
			}
		}},
		{Label: "Statistics", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsview.New(p.ID, loader)}
			}
		}},
		{Label: "Badge case", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badgecase.New(p.ID, eventRepo)}
			}
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settingsview.New(p.ID, settingsMgr)}
			}
		}},
		{Label: "Teacher area", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(profiles, loader, eventRepo)}
			}
		}},
		{Label: "Switch profile", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: welcomeFactory()}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		profile: p,
		loader:  loader,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		cache, err := h.loader.Load(context.Background(), h.profile.ID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{
			TotalStars:  cache.Summary.TotalStars,
			GlobalLevel: progress.GlobalLevel(cache),
			Exercises:   cache.Summary.Total,
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err == nil {
			h.totalStars = msg.TotalStars
			h.globalLevel = msg.GlobalLevel
			h.exercises = msg.Exercises
			h.loaded = true
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	greeting := fmt.Sprintf("%s Hello, %s!", h.profile.Avatar, h.profile.Name)
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render(greeting))

	if h.loaded {
		stats := fmt.Sprintf("★ %d stars   Level %d   %d exercises solved",
			h.totalStars, h.globalLevel, h.exercises)
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(stats))
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
