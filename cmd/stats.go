package cmd

import (
	"fmt"
	"sort"

	"github.com/lernbox/lernbox/internal/catalog"
	"github.com/lernbox/lernbox/internal/profile"
	"github.com/lernbox/lernbox/internal/progress"
	"github.com/lernbox/lernbox/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <profile-name>",
	Short: "Show a profile's statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := profile.NewService(st.ProfileRepo(), st.SettingsRepo())
		p, err := findProfileByName(cmd.Context(), svc, args[0])
		if err != nil {
			return err
		}

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		loader := progress.NewLoader(eventRepo, st.SnapshotRepo())
		cache, err := loader.Load(cmd.Context(), p.ID)
		if err != nil {
			return fmt.Errorf("load statistics: %w", err)
		}

		s := cache.Summary
		fmt.Printf("%s %s\n\n", p.Avatar, p.Name)
		fmt.Printf("Exercises:    %d (%d correct, %.0f%%)\n", s.Total, s.Correct, s.Accuracy)
		fmt.Printf("Stars:        %d of %d (%.0f%%)\n", s.TotalStars, s.MaxStars, s.StarCompletion)
		fmt.Printf("Avg attempts: %.1f\n", s.AverageAttempts)
		fmt.Printf("Global level: %d\n", progress.GlobalLevel(cache))

		printGroup("By type", s.ByType, catalog.TypeName)
		printGroup("By area", s.ByArea, catalog.AreaName)
		printGroup("By level", s.ByLevel, func(k string) string { return "Level " + k })

		fmt.Println("\nTheme levels:")
		for _, t := range catalog.Themes() {
			fmt.Printf("  %-24s %d\n", t.Name, cache.ThemeLevels[t.ID])
		}
		return nil
	},
}

func printGroup(title string, group map[string]*stats.GroupStat, label func(string) string) {
	if len(group) == 0 {
		return
	}
	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("\n%s:\n", title)
	for _, k := range keys {
		g := group[k]
		fmt.Printf("  %-24s %d/%d correct (%.0f%%), %d stars\n",
			label(k), g.Correct, g.Total, g.Accuracy, g.TotalStars)
	}
}
