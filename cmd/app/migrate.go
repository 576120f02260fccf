package main

import (
	"user-directory-service/internal/config"
	"user-directory-service/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd(cfg config.Config, logger *logrus.Logger) *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply Postgres migrations",
		Long:  "Apply embedded goose migrations to the Postgres user store. Mongo and memory stores need none.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.OpenPostgres(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if statusOnly {
				return database.MigrationStatus(db)
			}
			if err := database.MigrateDB(db); err != nil {
				return err
			}
			logger.Info("Migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "print migration status instead of applying")
	return cmd
}
