package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lernbox/lernbox/internal/profile"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset <profile-name>",
	Short: "Clear a profile's history",
	Long:  "Deletes every result, session and badge of a profile. The profile itself stays.",
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

		if !resetYes {
			fmt.Printf("Clear all history for %s? This cannot be undone. [y/N] ", p.Name)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		if err := eventRepo.ClearProfileHistory(cmd.Context(), p.ID); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Printf("History of %s cleared.\n", p.Name)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
