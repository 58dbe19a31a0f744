// Package settings exposes the per-profile preferences stored as
// key/value pairs.
package settings

import (
	"context"
	"strconv"

	"github.com/lernbox/lernbox/internal/store"
)

// Settings holds one profile's preferences.
type Settings struct {
	Sound         bool
	HighContrast  bool
	ReducedMotion bool
	FontScale     int
}

// Defaults returns the settings a fresh profile starts with.
func Defaults() Settings {
	return Settings{Sound: true, FontScale: 1}
}

const (
	keySound         = "sound"
	keyHighContrast  = "high_contrast"
	keyReducedMotion = "reduced_motion"
	keyFontScale     = "font_scale"
)

// Manager loads and saves profile settings.
type Manager struct {
	repo store.SettingsRepo
}

// NewManager creates a settings manager.
func NewManager(repo store.SettingsRepo) *Manager {
	return &Manager{repo: repo}
}

// Load returns the profile's settings, falling back to defaults for
// unset or unparseable keys.
func (m *Manager) Load(ctx context.Context, profileID string) (Settings, error) {
	s := Defaults()

	if v, ok, err := m.repo.Get(ctx, profileID, keySound); err != nil {
		return s, err
	} else if ok {
		s.Sound = v == "true"
	}
	if v, ok, _ := m.repo.Get(ctx, profileID, keyHighContrast); ok {
		s.HighContrast = v == "true"
	}
	if v, ok, _ := m.repo.Get(ctx, profileID, keyReducedMotion); ok {
		s.ReducedMotion = v == "true"
	}
	if v, ok, _ := m.repo.Get(ctx, profileID, keyFontScale); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 3 {
			s.FontScale = n
		}
	}
	return s, nil
}

// Save persists all of the profile's settings.
func (m *Manager) Save(ctx context.Context, profileID string, s Settings) error {
	pairs := []struct{ key, value string }{
		{keySound, strconv.FormatBool(s.Sound)},
		{keyHighContrast, strconv.FormatBool(s.HighContrast)},
		{keyReducedMotion, strconv.FormatBool(s.ReducedMotion)},
		{keyFontScale, strconv.Itoa(s.FontScale)},
	}
	for _, p := range pairs {
		if err := m.repo.Set(ctx, profileID, p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}
