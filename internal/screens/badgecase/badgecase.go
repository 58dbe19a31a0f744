// Package badgecase displays the learner's badge collection.
package badgecase

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/badges"
	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/lernbox/lernbox/internal/ui/layout"
	"github.com/lernbox/lernbox/internal/ui/theme"
)

type badgesLoadedMsg struct {
	Records []store.BadgeRecord
	Err     error
}

// BadgeCaseScreen displays the profile's badges grouped by type.
type BadgeCaseScreen struct {
	profileID    string
	eventRepo    store.EventRepo
	allBadges    []store.BadgeRecord
	selectedType int // index into AllBadgeTypes
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*BadgeCaseScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeCaseScreen)(nil)

// New creates a new BadgeCaseScreen.
func New(profileID string, eventRepo store.EventRepo) *BadgeCaseScreen {
	return &BadgeCaseScreen{
		profileID: profileID,
		eventRepo: eventRepo,
	}
}

func (s *BadgeCaseScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.BadgesForProfile(context.Background(), s.profileID)
		return badgesLoadedMsg{Records: records, Err: err}
	}
}

func (s *BadgeCaseScreen) Title() string {
	return "Badge Case"
}

func (s *BadgeCaseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch type"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeCaseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.allBadges = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			types := badges.AllBadgeTypes()
			s.selectedType = (s.selectedType + 1) % len(types)
			s.scrollOffset = 0
			return s, nil
		case "shift+tab":
			types := badges.AllBadgeTypes()
			s.selectedType = (s.selectedType - 1 + len(types)) % len(types)
			s.scrollOffset = 0
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			filtered := s.filteredBadges()
			if s.scrollOffset < len(filtered)-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *BadgeCaseScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading badges...")
	}

	var b strings.Builder

	// Total count.
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nTotal: %d badges\n", len(s.allBadges))))
	b.WriteString("\n")

	// Type tabs.
	types := badges.AllBadgeTypes()
	var tabs []string
	for i, t := range types {
		count := s.countByType(t)
		label := fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), count)
		if i == s.selectedType {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	tabLine := strings.Join(tabs, "     ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tabLine))
	b.WriteString("\n\n")

	// Divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Filtered badge list.
	filtered := s.filteredBadges()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No badges of this type yet"))
		return b.String()
	}

	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		rec := filtered[i]
		rarity := badges.Rarity(rec.Rarity)
		name := rec.BadgeKey
		if def, ok := badges.Lookup(rec.BadgeKey); ok {
			name = def.Name
		}
		dateStr := rec.Timestamp.Format("Jan 02, 2006")

		line := fmt.Sprintf("  %-10s %-24s %-36s %s",
			rarity.DisplayName(), name, rec.Reason, dateStr)

		style := lipgloss.NewStyle().Foreground(rarityColor(rarity))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *BadgeCaseScreen) filteredBadges() []store.BadgeRecord {
	types := badges.AllBadgeTypes()
	selectedType := string(types[s.selectedType])
	var filtered []store.BadgeRecord
	for _, rec := range s.allBadges {
		if rec.BadgeType == selectedType {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func (s *BadgeCaseScreen) countByType(t badges.BadgeType) int {
	count := 0
	for _, rec := range s.allBadges {
		if rec.BadgeType == string(t) {
			count++
		}
	}
	return count
}

func rarityColor(r badges.Rarity) color.Color {
	switch r {
	case badges.RarityCommon:
		return theme.Text
	case badges.RarityRare:
		return theme.Secondary
	case badges.RarityEpic:
		return theme.Primary
	case badges.RarityLegendary:
		return theme.Accent
	default:
		return theme.Text
	}
}
