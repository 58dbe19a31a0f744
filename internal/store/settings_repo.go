package store

import (
	"context"
	"fmt"

	"github.com/lernbox/lernbox/ent"
	"github.com/lernbox/lernbox/ent/setting"
)

type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, profileID, key string) (string, bool, error) {
	row, err := r.client.Setting.Query().
		Where(
			setting.ProfileID(profileID),
			setting.Key(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return row.Value, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, profileID, key, value string) error {
	n, err := r.client.Setting.Update().
		Where(
			setting.ProfileID(profileID),
			setting.Key(key),
		).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %s: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Setting.Create().
		SetProfileID(profileID).
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create setting %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) DeleteForProfile(ctx context.Context, profileID string) error {
	_, err := r.client.Setting.Delete().
		Where(setting.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
