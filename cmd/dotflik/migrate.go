package main

import (
	"github.com/spf13/cobra"

	"github.com/dotflik/dotflik/internal/database"
)

func newMigrateCommand(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Database migration commands",
		Long:    `Apply or roll back the embedded schema migrations for the configured driver.`,
	}

	for _, dir := range []database.Direction{database.Up, database.Down} {
		dir := dir
		cmd.AddCommand(&cobra.Command{
			Use:   string(dir),
			Short: "Run migrations " + string(dir),
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				db, err := database.Connect(cfg.Database)
				if err != nil {
					return err
				}
				return database.Migrate(db, cfg.Database.DatabaseDriver(), dir)
			},
		})
	}

	return cmd
}
