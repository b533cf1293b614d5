package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		e.l.Infof(cmd.Context(), "Schema is up to date at %s", e.cfg.Database.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
