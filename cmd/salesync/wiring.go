package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	dbpostgres "github.com/orangepax/outlet-sales-sync/infrastructure/database/postgres"
	"github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp"
	"github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/erpclient"
	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher"
	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher/gcs"
	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher/git"
	pgpublisher "github.com/orangepax/outlet-sales-sync/infrastructure/publisher/postgres"
	"github.com/orangepax/outlet-sales-sync/infrastructure/reference"
	"github.com/orangepax/outlet-sales-sync/infrastructure/repository"
	"github.com/orangepax/outlet-sales-sync/infrastructure/snapshot"
	"github.com/orangepax/outlet-sales-sync/internal/config"
	"github.com/orangepax/outlet-sales-sync/internal/usecases/aggregating"
	"github.com/orangepax/outlet-sales-sync/internal/usecases/syncing"
)

type pipeline struct {
	service *syncing.Service
	writer  *snapshot.FileWriter
	cleanup func()
}

func buildPipeline(ctx context.Context, cfg *config.Config) (*pipeline, error) {
	artifactPublisher, cleanup, err := newPublisher(ctx, cfg)
	if err != nil {
		return nil, err
	}

	erpIntegrator := erp.New(cfg, erpclient.NewClient(cfg), erpclient.NewTokenProvider(cfg))
	mapper := reference.NewMapper(cfg)
	writer := snapshot.NewFileWriter(cfg)

	service := syncing.NewService(
		cfg,
		erpIntegrator,
		mapper,
		aggregating.NewSalesAggregator(),
		writer,
		artifactPublisher,
	)

	return &pipeline{service: service, writer: writer, cleanup: cleanup}, nil
}

// newPublisher picks the ArtifactPublisher named by PUBLISHER_KIND. The returned
// cleanup releases whatever connection the publisher holds.
func newPublisher(ctx context.Context, cfg *config.Config) (publisher.ArtifactPublisher, func(), error) {
	noop := func() {}

	switch cfg.Publisher.Kind {
	case "git":
		return git.New(cfg, git.NewExecRunner(cfg.Git.CommandTimeout)), noop, nil

	case "gcs":
		p, err := gcs.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return p, noop, nil

	case "postgres":
		conn, err := dbpostgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		logrus.Info("postgres connection established")

		repo := repository.NewSnapshotArtifactRepository(conn)
		return pgpublisher.New(repo, cfg.Database.ArtifactName), func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("error closing postgres connection")
			}
		}, nil

	case "none":
		return publisher.Noop{}, noop, nil
	}

	return nil, nil, fmt.Errorf("unknown publisher kind %q", cfg.Publisher.Kind)
}
