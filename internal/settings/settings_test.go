package settings

import (
	"context"
	"testing"
)

// memRepo implements store.SettingsRepo in memory.
type memRepo struct {
	values map[string]string
}

func (m *memRepo) Get(_ context.Context, profileID, key string) (string, bool, error) {
	v, ok := m.values[profileID+"/"+key]
	return v, ok, nil
}

func (m *memRepo) Set(_ context.Context, profileID, key, value string) error {
	m.values[profileID+"/"+key] = value
	return nil
}

func (m *memRepo) DeleteForProfile(_ context.Context, _ string) error {
	return nil
}

func TestLoadDefaults(t *testing.T) {
	mgr := NewManager(&memRepo{values: map[string]string{}})
	s, err := mgr.Load(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	mgr := NewManager(&memRepo{values: map[string]string{}})
	want := Settings{Sound: false, HighContrast: true, ReducedMotion: true, FontScale: 2}

	if err := mgr.Save(context.Background(), "p1", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := mgr.Load(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}

	// A second profile stays on defaults.
	other, _ := mgr.Load(context.Background(), "p2")
	if other != Defaults() {
		t.Fatalf("other profile = %+v, want defaults", other)
	}
}

func TestLoadIgnoresBadFontScale(t *testing.T) {
	repo := &memRepo{values: map[string]string{"p1/font_scale": "9"}}
	s, _ := NewManager(repo).Load(context.Background(), "p1")
	if s.FontScale != 1 {
		t.Fatalf("font scale = %d, want default 1", s.FontScale)
	}
}
