// Package profile manages the learners on this machine and the teacher
// dashboard PIN.
package profile

import (
	"context"
	"errors"

	"github.com/lernbox/lernbox/internal/store"
)

// ErrEmptyName is returned when a profile name is blank after trimming.
var ErrEmptyName = errors.New("profile name must not be empty")

// Service wraps the profile repository with name handling and the
// active-profile setting.
type Service struct {
	profiles store.ProfileRepo
	settings store.SettingsRepo
}

// NewService creates a profile service.
func NewService(profiles store.ProfileRepo, settings store.SettingsRepo) *Service {
	return &Service{profiles: profiles, settings: settings}
}

// Create adds a profile. A blank name gets a generated one, a blank
// avatar a random one.
func (s *Service) Create(ctx context.Context, name, avatar string) (*store.Profile, error) {
	name = NormalizeName(name)
	if name == "" {
		name = GenerateName()
	}
	if avatar == "" {
		avatar = RandomAvatar()
	}
	return s.profiles.Create(ctx, name, avatar)
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]store.Profile, error) {
	return s.profiles.List(ctx)
}

// Get returns one profile.
func (s *Service) Get(ctx context.Context, profileID string) (*store.Profile, error) {
	return s.profiles.Get(ctx, profileID)
}

// Rename changes a profile's name. The new name must be non-empty.
func (s *Service) Rename(ctx context.Context, profileID, name string) error {
	name = NormalizeName(name)
	if name == "" {
		return ErrEmptyName
	}
	return s.profiles.Rename(ctx, profileID, name)
}

// Delete removes a profile and its per-profile settings. Event history
// stays until cleared from the teacher dashboard.
func (s *Service) Delete(ctx context.Context, profileID string) error {
	if err := s.profiles.Delete(ctx, profileID); err != nil {
		return err
	}
	if active, _ := s.ActiveProfileID(ctx); active == profileID {
		_ = s.settings.Set(ctx, "", activeProfileKey, "")
	}
	return s.settings.DeleteForProfile(ctx, profileID)
}

const activeProfileKey = "active_profile"

// ActiveProfileID returns the last selected profile, or "" when none is set.
func (s *Service) ActiveProfileID(ctx context.Context) (string, error) {
	id, _, err := s.settings.Get(ctx, "", activeProfileKey)
	return id, err
}

// SetActive marks the profile as the last selected one and touches its
// activity timestamp.
func (s *Service) SetActive(ctx context.Context, profileID string) error {
	if err := s.settings.Set(ctx, "", activeProfileKey, profileID); err != nil {
		return err
	}
	return s.profiles.Touch(ctx, profileID)
}
