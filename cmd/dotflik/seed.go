package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotflik/dotflik/internal/database"
	"github.com/dotflik/dotflik/internal/seed"
)

func newSeedCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load a catalog fixture into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			catalog, err := seed.ParseFile(args[0])
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			gdb, err := database.NewGormDB(db, cfg)
			if err != nil {
				return err
			}

			res, err := seed.NewLoader(gdb).Load(cmd.Context(), catalog)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d genres, %d stars, %d movies\n", res.Genres, res.Stars, res.Movies)
			return nil
		},
	}
}
