package dashboard

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lernbox/lernbox/internal/profile"
	"github.com/lernbox/lernbox/internal/progress"
	"github.com/lernbox/lernbox/internal/stats"
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

type memEvents struct {
	cleared []string
}

func (m *memEvents) AppendResult(_ context.Context, _ store.ResultEventData) error { return nil }
func (m *memEvents) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *memEvents) AppendBadge(_ context.Context, _ store.BadgeEventData) error { return nil }
func (m *memEvents) ResultsForProfile(_ context.Context, _ string) ([]stats.Result, error) {
	return nil, nil
}
func (m *memEvents) LatestResultSequence(_ context.Context, _ string) (int64, error) {
	return 0, nil
}
func (m *memEvents) ExerciseFailureCounts(_ context.Context, _ string) (map[string]int, error) {
	return nil, nil
}
func (m *memEvents) QuerySessionSummaries(_ context.Context, _ string, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *memEvents) BadgesForProfile(_ context.Context, _ string) ([]store.BadgeRecord, error) {
	return nil, nil
}
func (m *memEvents) HasBadge(_ context.Context, _, _ string) (bool, error) { return false, nil }
func (m *memEvents) ClearProfileHistory(_ context.Context, profileID string) error {
	m.cleared = append(m.cleared, profileID)
	return nil
}

type memSnaps struct {
	latest *store.StatsCache
}

func (m *memSnaps) Save(_ context.Context, c *store.StatsCache) error { m.latest = c; return nil }
func (m *memSnaps) Latest(_ context.Context, _ string) (*store.StatsCache, error) {
	return m.latest, nil
}
func (m *memSnaps) Prune(_ context.Context, _ string, _ int) error { return nil }

func confirmScreen(t *testing.T) (*DashboardScreen, *memEvents) {
	t.Helper()
	events := &memEvents{}
	svc := profile.NewService(
		&memProfiles{list: []store.Profile{{ID: "p1", Name: "Mia", Avatar: "🦊"}}},
		&memSettings{values: map[string]string{}},
	)
	s := New(svc, progress.NewLoader(events, &memSnaps{}), events)
	s.phase = phaseOverview
	s.rows = []overviewRow{{Profile: store.Profile{ID: "p1", Name: "Mia", Avatar: "🦊"}}}
	return s, events
}

func TestConfirmDefaultsToKeeping(t *testing.T) {
	s, events := confirmScreen(t)

	s.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if s.phase != phaseConfirmClear {
		t.Fatalf("phase = %v, want confirm", s.phase)
	}
	if s.confirmFocus != 1 {
		t.Fatalf("focus = %d, want the keep button", s.confirmFocus)
	}

	// Enter on the focused keep button closes the dialog without clearing.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.phase != phaseOverview {
		t.Fatalf("phase = %v, want overview after keeping", s.phase)
	}
	if len(events.cleared) != 0 {
		t.Fatalf("cleared = %v, want none", events.cleared)
	}
}

func TestConfirmClearFiresThroughButton(t *testing.T) {
	s, events := confirmScreen(t)

	s.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.confirmFocus != 0 {
		t.Fatalf("focus = %d, want the clear button", s.confirmFocus)
	}
	if !s.confirm[0].Active || s.confirm[1].Active {
		t.Fatal("button active states must follow the focus")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("clear button must return a command")
	}
	msg := cmd()
	if _, ok := msg.(historyClearedMsg); !ok {
		t.Fatalf("got %T, want historyClearedMsg", msg)
	}
	if len(events.cleared) != 1 || events.cleared[0] != "p1" {
		t.Fatalf("cleared = %v, want [p1]", events.cleared)
	}
}

func TestConfirmEscCancels(t *testing.T) {
	s, events := confirmScreen(t)

	s.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.phase != phaseOverview {
		t.Fatalf("phase = %v, want overview after esc", s.phase)
	}
	if len(events.cleared) != 0 {
		t.Fatalf("cleared = %v, want none", events.cleared)
	}
}
