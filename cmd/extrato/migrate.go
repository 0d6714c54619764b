package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abarbosa/extrato/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			dbPath, err := databasePath()
			if err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("✓ Database schema is up to date: " + dbPath))

			return nil
		},
	}
}
