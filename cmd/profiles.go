package cmd

import (
	"fmt"

	"github.com/lernbox/lernbox/internal/profile"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := profile.NewService(st.ProfileRepo(), st.SettingsRepo())
		list, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No profiles yet. Create one with: lernbox profiles add <name>")
			return nil
		}
		for _, p := range list {
			last := "never"
			if !p.LastActiveAt.IsZero() {
				last = p.LastActiveAt.Format("2006-01-02")
			}
			fmt.Printf("%s %-20s last active %s\n", p.Avatar, p.Name, last)
		}
		return nil
	},
}

var profilesAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a profile (a name is generated when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		svc := profile.NewService(st.ProfileRepo(), st.SettingsRepo())
		p, err := svc.Create(cmd.Context(), name, "")
		if err != nil {
			return err
		}
		fmt.Printf("Created %s %s\n", p.Avatar, p.Name)
		return nil
	},
}

var profilesRenameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
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
		if err := svc.Rename(cmd.Context(), p.ID, args[1]); err != nil {
			return err
		}
		fmt.Printf("Renamed %s to %s\n", args[0], args[1])
		return nil
	},
}

var profilesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a profile and all its data",
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
			return err
		}
		if err := eventRepo.ClearProfileHistory(cmd.Context(), p.ID); err != nil {
			return err
		}
		if err := svc.Delete(cmd.Context(), p.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", p.Name)
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesAddCmd)
	profilesCmd.AddCommand(profilesRenameCmd)
	profilesCmd.AddCommand(profilesRemoveCmd)
}
