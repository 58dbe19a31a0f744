// Package welcome shows the profile picker that opens the app.
package welcome

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/profile"
	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/lernbox/lernbox/internal/ui/layout"
	"github.com/lernbox/lernbox/internal/ui/theme"
)

type profilesLoadedMsg struct {
	Profiles []store.Profile
	Err      error
}

type profileCreatedMsg struct {
	Profile *store.Profile
	Err     error
}

// WelcomeScreen lets the learner pick or create a profile before the
// home screen opens.
type WelcomeScreen struct {
	profiles    *profile.Service
	homeFactory func(p store.Profile) screen.Screen

	list     []store.Profile
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory once a profile is chosen.
func New(profiles *profile.Service, homeFactory func(p store.Profile) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		profiles:    profiles,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Choose"},
		{Key: "N", Description: "New profile"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		list, err := w.profiles.List(context.Background())
		return profilesLoadedMsg{Profiles: list, Err: err}
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
		} else {
			w.list = msg.Profiles
		}
		w.loaded = true
		return w, nil

	case profileCreatedMsg:
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		return w, w.choose(*msg.Profile)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if w.selected > 0 {
				w.selected--
			}
		case "down", "j":
			if w.selected < len(w.list)-1 {
				w.selected++
			}
		case "enter":
			if w.selected >= 0 && w.selected < len(w.list) {
				return w, w.choose(w.list[w.selected])
			}
		case "n", "N":
			return w, w.createProfile()
		}
	}
	return w, nil
}

func (w *WelcomeScreen) choose(p store.Profile) tea.Cmd {
	_ = w.profiles.SetActive(context.Background(), p.ID)
	home := w.homeFactory(p)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) createProfile() tea.Cmd {
	return func() tea.Msg {
		p, err := w.profiles.Create(context.Background(), "", "")
		return profileCreatedMsg{Profile: p, Err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Who is practicing today?"))
	sections = append(sections, "")

	switch {
	case w.errMsg != "":
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Error: "+w.errMsg))

	case !w.loaded:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Loading profiles..."))

	case len(w.list) == 0:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("No profiles yet. Press N to create one!"))

	default:
		for i, p := range w.list {
			label := fmt.Sprintf("%s  %s", p.Avatar, p.Name)
			if i == w.selected {
				sections = append(sections, lipgloss.NewStyle().
					Foreground(theme.Primary).
					Bold(true).
					Render("▸ "+label))
			} else {
				sections = append(sections, lipgloss.NewStyle().
					Foreground(theme.Text).
					Render("  "+label))
			}
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
