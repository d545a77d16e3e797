package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var noPublish bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one sync and exit",
		Long: `Run fetches, aggregates, writes and publishes once. The exit code is non-zero when
the token, fetch, write or publish stage failed. A missing or broken store reference
only disables enrichment and does not fail the run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if noPublish {
				cfg.Publisher.Kind = "none"
			}

			p, err := buildPipeline(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer p.cleanup()

			report, err := p.service.Run(cmd.Context())
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"snapshot": report.SnapshotPath,
				"publish":  report.Publish.Status,
				"revision": report.Publish.Revision,
			}).Info("sync finished")

			return nil
		},
	}

	cmd.Flags().BoolVar(&noPublish, "no-publish", false, "write data.json but skip publishing")

	return cmd
}
