package welcome

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lernbox/lernbox/internal/profile"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/store"
)

type memProfiles struct {
	list []store.Profile
}

func (m *memProfiles) Create(_ context.Context, name, avatar string) (*store.Profile, error) {
	p := store.Profile{ID: "new", Name: name, Avatar: avatar, CreatedAt: time.Now()}
	m.list = append(m.list, p)
	return &p, nil
}
func (m *memProfiles) List(_ context.Context) ([]store.Profile, error) { return m.list, nil }
func (m *memProfiles) Get(_ context.Context, id string) (*store.Profile, error) {
	for i := range m.list {
		if m.list[i].ID == id {
			return &m.list[i], nil
		}
	}
	return nil, store.ErrProfileNotFound
}
func (m *memProfiles) Rename(_ context.Context, _, _ string) error { return nil }
func (m *memProfiles) Touch(_ context.Context, _ string) error     { return nil }
func (m *memProfiles) Delete(_ context.Context, _ string) error    { return nil }

type memSettings struct {
	values map[string]string
}

func (m *memSettings) Get(_ context.Context, profileID, key string) (string, bool, error) {
	v, ok := m.values[profileID+"/"+key]
	return v, ok, nil
}
func (m *memSettings) Set(_ context.Context, profileID, key, value string) error {
	m.values[profileID+"/"+key] = value
	return nil
}
func (m *memSettings) DeleteForProfile(_ context.Context, _ string) error { return nil }

type fakeHome struct{}

func (fakeHome) Init() tea.Cmd                             { return nil }
func (f fakeHome) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (fakeHome) View(int, int) string                      { return "home" }
func (fakeHome) Title() string                             { return "Home" }

func newTestScreen(list []store.Profile) *WelcomeScreen {
	svc := profile.NewService(&memProfiles{list: list}, &memSettings{values: map[string]string{}})
	return New(svc, func(store.Profile) screen.Screen { return fakeHome{} })
}

func TestEmptyListShowsHint(t *testing.T) {
	w := newTestScreen(nil)
	w.Update(profilesLoadedMsg{})

	view := w.View(80, 24)
	if !strings.Contains(view, "Press N to create one") {
		t.Fatalf("missing create hint in view:\n%s", view)
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	list := []store.Profile{
		{ID: "a", Name: "Mia", Avatar: "🦊"},
		{ID: "b", Name: "Ben", Avatar: "🐼"},
	}
	w := newTestScreen(list)
	w.Update(profilesLoadedMsg{Profiles: list})

	w.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if w.selected != 0 {
		t.Fatalf("selected = %d, want 0 at top", w.selected)
	}
	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if w.selected != 1 {
		t.Fatalf("selected = %d, want 1 at bottom", w.selected)
	}
}

func TestViewListsProfiles(t *testing.T) {
	list := []store.Profile{{ID: "a", Name: "Mia", Avatar: "🦊"}}
	w := newTestScreen(list)
	w.Update(profilesLoadedMsg{Profiles: list})

	view := w.View(80, 24)
	if !strings.Contains(view, "Mia") {
		t.Fatalf("profile name missing from view:\n%s", view)
	}
}
