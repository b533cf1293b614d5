package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the default prompt profiles and the default project",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		profiles, projectCreated, err := a.Seed(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "profiles created: %d\ndefault project created: %v\n", profiles, projectCreated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
