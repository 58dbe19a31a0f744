// Package statsview shows a profile's aggregated statistics.
package statsview

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/catalog"
	"github.com/lernbox/lernbox/internal/progress"
	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/stats"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/lernbox/lernbox/internal/ui/components"
	"github.com/lernbox/lernbox/internal/ui/layout"
	"github.com/lernbox/lernbox/internal/ui/theme"
)

type statsLoadedMsg struct {
	Cache *store.StatsCache
	Err   error
}

// grouping selects which breakdown tab is shown.
type grouping int

const (
	groupByType grouping = iota
	groupByArea
	groupByLevel
)

var groupingLabels = []string{"By type", "By area", "By level"}

// StatsScreen displays the aggregated statistics of one profile.
type StatsScreen struct {
	profileID string
	loader    *progress.Loader

	summary  *stats.Summary
	selected grouping
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(profileID string, loader *progress.Loader) *StatsScreen {
	return &StatsScreen{profileID: profileID, loader: loader}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		cache, err := s.loader.Load(context.Background(), s.profileID)
		return statsLoadedMsg{Cache: cache, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch grouping"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.summary = msg.Cache.Summary
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.selected = (s.selected + 1) % grouping(len(groupingLabels))
		case "shift+tab":
			s.selected = (s.selected + grouping(len(groupingLabels)) - 1) % grouping(len(groupingLabels))
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Crunching numbers...")
	}

	sum := s.summary
	if sum == nil || sum.Total == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Play a session first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Overall numbers.
	overall := fmt.Sprintf("Exercises: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Total, sum.Correct, sum.Accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(overall))
	b.WriteString("\n")

	stars := fmt.Sprintf("★ %d of %d stars        Avg attempts: %.1f        Avg time: %.0fs",
		sum.TotalStars, sum.MaxStars, sum.AverageAttempts, sum.AverageTimeSecs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
		Render(stars))
	b.WriteString("\n\n")

	// Star completion bar.
	bar := components.NewProgressBar("Stars", sum.StarCompletion/100, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Grouping tabs.
	var tabs []string
	for i, label := range groupingLabels {
		if grouping(i) == s.selected {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, line := range s.groupLines() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

// groupLines renders the selected grouping as aligned rows.
func (s *StatsScreen) groupLines() []string {
	var groups map[string]*stats.GroupStat
	label := func(key string) string { return key }

	switch s.selected {
	case groupByType:
		groups = s.summary.ByType
		label = catalog.TypeName
	case groupByArea:
		groups = s.summary.ByArea
		label = catalog.AreaName
	case groupByLevel:
		groups = s.summary.ByLevel
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, k := range keys {
		g := groups[k]
		line := fmt.Sprintf("  %-14s %4d done   %3.0f%% correct   ★ %-4d avg tries %.1f",
			label(k), g.Total, g.Accuracy, g.TotalStars, g.AverageAttempts)
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}
	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No data for this grouping yet"))
	}
	return lines
}
