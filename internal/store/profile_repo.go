package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lernbox/lernbox/ent"
	"github.com/lernbox/lernbox/ent/profile"
)

// ErrProfileNotFound is returned when a profile ID does not exist.
var ErrProfileNotFound = errors.New("profile not found")

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Create(ctx context.Context, name, avatar string) (*Profile, error) {
	if avatar == "" {
		avatar = "🦊"
	}
	p, err := r.client.Profile.Create().
		SetProfileID(uuid.NewString()).
		SetName(name).
		SetAvatar(avatar).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return entProfileToProfile(p), nil
}

func (r *profileRepo) List(ctx context.Context) ([]Profile, error) {
	rows, err := r.client.Profile.Query().
		Order(ent.Desc(profile.FieldLastActiveAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	profiles := make([]Profile, 0, len(rows))
	for _, p := range rows {
		profiles = append(profiles, *entProfileToProfile(p))
	}
	return profiles, nil
}

func (r *profileRepo) Get(ctx context.Context, profileID string) (*Profile, error) {
	p, err := r.client.Profile.Query().
		Where(profile.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return entProfileToProfile(p), nil
}

func (r *profileRepo) Rename(ctx context.Context, profileID, name string) error {
	n, err := r.client.Profile.Update().
		Where(profile.ProfileID(profileID)).
		SetName(name).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("rename profile: %w", err)
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *profileRepo) Touch(ctx context.Context, profileID string) error {
	_, err := r.client.Profile.Update().
		Where(profile.ProfileID(profileID)).
		SetLastActiveAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, profileID string) error {
	n, err := r.client.Profile.Delete().
		Where(profile.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func entProfileToProfile(p *ent.Profile) *Profile {
	return &Profile{
		ID:           p.ProfileID,
		Name:         p.Name,
		Avatar:       p.Avatar,
		CreatedAt:    p.CreatedAt,
		LastActiveAt: p.LastActiveAt,
	}
}
