package cmd

import (
	"fmt"

	"github.com/lernbox/lernbox/internal/exercises"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <bank.json>",
	Short: "Validate an exercise bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := exercises.LoadFile(args[0])
		if err != nil {
			return err
		}
		themes := make(map[string]struct{})
		for _, e := range bank.Exercises {
			themes[e.ThemeID] = struct{}{}
		}
		fmt.Printf("OK: %d exercises across %d themes\n",
			len(bank.Exercises), len(themes))
		return nil
	},
}
