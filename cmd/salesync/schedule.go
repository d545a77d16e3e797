package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orangepax/outlet-sales-sync/internal/api"
	"github.com/orangepax/outlet-sales-sync/internal/scheduler"
)

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run the sync on SYNC_CRON until interrupted",
		Long: `Schedule keeps the process alive and runs the sync on the SYNC_CRON expression.
Overlapping runs are skipped. With API_ENABLED the status API is served on HOST:PORT.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			p, err := buildPipeline(ctx, cfg)
			if err != nil {
				return err
			}
			defer p.cleanup()

			syncService := scheduler.NewSalesSnapshotSyncService(p.service, cfg)
			if err := syncService.Start(ctx); err != nil {
				return err
			}
			defer syncService.Stop()

			logrus.Info("sales snapshot scheduler started")

			if !cfg.Server.Enabled {
				<-ctx.Done()
				logrus.Info("shutting down scheduler")
				return nil
			}

			server, err := api.New(cfg, p.writer, syncService)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}
