package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	dbpostgres "github.com/orangepax/outlet-sales-sync/infrastructure/database/postgres"
	"github.com/orangepax/outlet-sales-sync/infrastructure/repository"
)

// migrateCmd creates the snapshot_artifact table ahead of the first postgres publish.
func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres table used by PUBLISHER_KIND=postgres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			conn, err := dbpostgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("connecting to postgres: %w", err)
			}
			defer conn.Close()

			if err := repository.NewSnapshotArtifactRepository(conn).EnsureSchema(ctx); err != nil {
				return err
			}

			logrus.Info("snapshot_artifact table ready")
			return nil
		},
	}
}
