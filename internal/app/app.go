package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/badges"
	"github.com/lernbox/lernbox/internal/exercises"
	"github.com/lernbox/lernbox/internal/profile"
	"github.com/lernbox/lernbox/internal/progress"
	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/screens/home"
	"github.com/lernbox/lernbox/internal/screens/welcome"
	"github.com/lernbox/lernbox/internal/settings"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/lernbox/lernbox/internal/ui/layout"
	"github.com/lernbox/lernbox/internal/ui/theme"
)

// Options carries the repositories the TUI needs. All fields are
// required.
type Options struct {
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	ProfileRepo  store.ProfileRepo
	SettingsRepo store.SettingsRepo
	Bank         *exercises.Bank
}

// headerInfoMsg refreshes the active-profile summary in the header.
type headerInfoMsg struct {
	info layout.HeaderInfo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	profiles *profile.Service
	loader   *progress.Loader
	header   layout.HeaderInfo
	width    int
	height   int
}

// newAppModel wires the services and starts at the profile picker.
func newAppModel(opts Options) AppModel {
	profileSvc := profile.NewService(opts.ProfileRepo, opts.SettingsRepo)
	settingsMgr := settings.NewManager(opts.SettingsRepo)
	badgeSvc := badges.NewService(opts.EventRepo)
	loader := progress.NewLoader(opts.EventRepo, opts.SnapshotRepo)

	// The welcome and home screens reference each other, so both are
	// built through factories.
	var homeFactory func(p store.Profile) screen.Screen
	welcomeFactory := func() screen.Screen {
		return welcome.New(profileSvc, homeFactory)
	}
	homeFactory = func(p store.Profile) screen.Screen {
		return home.New(p, opts.Bank, opts.EventRepo, loader, badgeSvc,
			profileSvc, settingsMgr, welcomeFactory)
	}

	return AppModel{
		router:   router.New(welcomeFactory()),
		profiles: profileSvc,
		loader:   loader,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerInfoMsg:
		m.header = msg.info
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	// Navigation changes what the header should show, so every
	// route change triggers a refresh alongside the router update.
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshHeader())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// refreshHeader reloads the active profile and its cached progress.
func (m AppModel) refreshHeader() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		id, err := m.profiles.ActiveProfileID(ctx)
		if err != nil || id == "" {
			return headerInfoMsg{}
		}
		p, err := m.profiles.Get(ctx, id)
		if err != nil {
			return headerInfoMsg{}
		}
		cache, err := m.loader.Load(ctx, id)
		if err != nil {
			return headerInfoMsg{}
		}

		return headerInfoMsg{info: layout.HeaderInfo{
			ProfileName: p.Name,
			Avatar:      p.Avatar,
			TotalStars:  cache.Summary.TotalStars,
			GlobalLevel: progress.GlobalLevel(cache),
		}}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.header, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints prefers the active screen's own hints when it provides
// them.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	// Apply the active profile's display settings before first paint.
	ctx := context.Background()
	profileSvc := profile.NewService(opts.ProfileRepo, opts.SettingsRepo)
	if id, err := profileSvc.ActiveProfileID(ctx); err == nil && id != "" {
		if s, err := settings.NewManager(opts.SettingsRepo).Load(ctx, id); err == nil {
			theme.SetHighContrast(s.HighContrast)
		}
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
