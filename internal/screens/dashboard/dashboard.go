// Package dashboard is the PIN-protected teacher area: per-profile
// overview and full history clearing.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/profile"
	"github.com/lernbox/lernbox/internal/progress"
	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/lernbox/lernbox/internal/ui/components"
	"github.com/lernbox/lernbox/internal/ui/layout"
	"github.com/lernbox/lernbox/internal/ui/theme"
)

type phase int

const (
	phasePIN phase = iota
	phaseOverview
	phaseConfirmClear
)

type pinCheckedMsg struct {
	OK bool
}

type overviewRow struct {
	Profile     store.Profile
	TotalStars  int
	GlobalLevel int
	Exercises   int
}

type overviewLoadedMsg struct {
	Rows []overviewRow
	Err  error
}

type historyClearedMsg struct {
	Err error
}

// DashboardScreen implements the teacher area.
type DashboardScreen struct {
	profiles  *profile.Service
	loader    *progress.Loader
	eventRepo store.EventRepo

	phase    phase
	pinInput components.TextInput
	pinError bool

	rows     []overviewRow
	selected int
	errMsg   string
	notice   string

	confirm      []components.Button
	confirmFocus int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen. The PIN gate is always shown first.
func New(profiles *profile.Service, loader *progress.Loader, eventRepo store.EventRepo) *DashboardScreen {
	return &DashboardScreen{
		profiles:  profiles,
		loader:    loader,
		eventRepo: eventRepo,
		pinInput:  components.NewTextInput("4-digit PIN", 4),
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return s.pinInput.Init()
}

func (s *DashboardScreen) Title() string {
	return "Teacher"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePIN:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Unlock"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseConfirmClear:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "C", Description: "Clear history"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pinCheckedMsg:
		if !msg.OK {
			s.pinError = true
			s.pinInput.Reset()
			return s, nil
		}
		s.phase = phaseOverview
		return s, s.loadOverview()

	case overviewLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Rows
		}
		return s, nil

	case historyClearedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.notice = "History cleared."
		s.phase = phaseOverview
		return s, s.loadOverview()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phasePIN {
		var cmd tea.Cmd
		s.pinInput, cmd = s.pinInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phasePIN:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			pin := s.pinInput.Value()
			return s, func() tea.Msg {
				err := s.profiles.VerifyPIN(context.Background(), pin)
				return pinCheckedMsg{OK: err == nil}
			}
		}
		var cmd tea.Cmd
		s.pinInput, cmd = s.pinInput.Update(msg)
		return s, cmd

	case phaseConfirmClear:
		switch key {
		case "y", "Y":
			return s, s.clearHistory()
		case "n", "N", "esc":
			s.phase = phaseOverview
		case "left", "right", "tab":
			s.confirmFocus = 1 - s.confirmFocus
			for i := range s.confirm {
				s.confirm[i].Active = i == s.confirmFocus
			}
		case "enter":
			var cmd tea.Cmd
			s.confirm[s.confirmFocus], cmd = s.confirm[s.confirmFocus].Update(msg)
			return s, cmd
		}
		return s, nil

	default:
		switch key {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
		case "c", "C":
			if len(s.rows) > 0 {
				s.enterConfirm()
			}
		}
		return s, nil
	}
}

// enterConfirm opens the clear-history dialog with the safe choice
// focused.
func (s *DashboardScreen) enterConfirm() {
	s.phase = phaseConfirmClear
	s.confirmFocus = 1
	s.confirm = []components.Button{
		components.NewButton("Yes, clear everything", false, s.clearHistory),
		components.NewButton("No, keep it", true, func() tea.Cmd {
			s.phase = phaseOverview
			return nil
		}),
	}
}

// loadOverview gathers per-profile progress for the table.
func (s *DashboardScreen) loadOverview() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		list, err := s.profiles.List(ctx)
		if err != nil {
			return overviewLoadedMsg{Err: err}
		}

		var rows []overviewRow
		for _, p := range list {
			cache, err := s.loader.Load(ctx, p.ID)
			if err != nil {
				return overviewLoadedMsg{Err: err}
			}
			rows = append(rows, overviewRow{
				Profile:     p,
				TotalStars:  cache.Summary.TotalStars,
				GlobalLevel: progress.GlobalLevel(cache),
				Exercises:   cache.Summary.Total,
			})
		}
		return overviewLoadedMsg{Rows: rows}
	}
}

// clearHistory wipes the selected profile's events and snapshots. The
// profile itself stays.
func (s *DashboardScreen) clearHistory() tea.Cmd {
	if s.selected >= len(s.rows) {
		return nil
	}
	profileID := s.rows[s.selected].Profile.ID
	return func() tea.Msg {
		err := s.eventRepo.ClearProfileHistory(context.Background(), profileID)
		return historyClearedMsg{Err: err}
	}
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	switch s.phase {
	case phasePIN:
		return s.renderPINGate(width, height)
	case phaseConfirmClear:
		return s.renderConfirm(width)
	default:
		return s.renderOverview(width)
	}
}

func (s *DashboardScreen) renderPINGate(width, height int) string {
	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render("Teacher area"))
	sections = append(sections, "")
	sections = append(sections, "PIN: "+s.pinInput.View())
	if s.pinError {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Wrong PIN, try again."))
	}
	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *DashboardScreen) renderConfirm(width int) string {
	name := ""
	if s.selected < len(s.rows) {
		name = s.rows[s.selected].Profile.Name
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Error).Bold(true).
		Render(fmt.Sprintf("Clear all history for %s?", name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Results, sessions, badges and statistics are deleted. This cannot be undone."))
	b.WriteString("\n\n")

	var views []string
	for _, btn := range s.confirm {
		views = append(views, btn.View())
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, views...)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Arrows switch, Enter confirms. Y clears, N keeps."))
	return b.String()
}

func (s *DashboardScreen) renderOverview(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).
			Render(s.notice))
		b.WriteString("\n\n")
	}

	if len(s.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No profiles yet."))
		return b.String()
	}

	header := fmt.Sprintf("  %-20s %-10s %-8s %-10s %s", "Profile", "Stars", "Level", "Exercises", "Last active")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")

	for i, row := range s.rows {
		lastActive := "never"
		if !row.Profile.LastActiveAt.IsZero() {
			lastActive = row.Profile.LastActiveAt.Format("Jan 02, 2006")
		}
		line := fmt.Sprintf("  %-20s %-10d %-8d %-10d %s",
			row.Profile.Avatar+" "+row.Profile.Name,
			row.TotalStars, row.GlobalLevel, row.Exercises, lastActive)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
