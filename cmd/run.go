package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/lernbox/lernbox/internal/app"
	"github.com/lernbox/lernbox/internal/exercises"
	"github.com/lernbox/lernbox/internal/profile"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	bank, err := exercises.DefaultBank()
	if err != nil {
		return fmt.Errorf("load exercise bank: %w", err)
	}

	// A fresh database gets the default teacher PIN.
	profileSvc := profile.NewService(st.ProfileRepo(), st.SettingsRepo())
	if err := profileSvc.EnsurePIN(context.Background()); err != nil {
		return fmt.Errorf("initialize PIN: %w", err)
	}

	return app.Run(app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
		ProfileRepo:  st.ProfileRepo(),
		SettingsRepo: st.SettingsRepo(),
		Bank:         bank,
	})
}

// openStore is shared by the non-TUI subcommands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// findProfileByName resolves a profile by its display name, case-insensitive.
func findProfileByName(ctx context.Context, svc *profile.Service, name string) (*store.Profile, error) {
	list, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if strings.EqualFold(list[i].Name, name) {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("no profile named %q", name)
}
