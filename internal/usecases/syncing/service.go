package syncing

import (
	"context"
	"errors"
	"time"

	"github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp"
	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher"
	"github.com/orangepax/outlet-sales-sync/infrastructure/reference"
	"github.com/orangepax/outlet-sales-sync/infrastructure/snapshot"
	"github.com/orangepax/outlet-sales-sync/internal/config"
	"github.com/orangepax/outlet-sales-sync/internal/domain"
	"github.com/orangepax/outlet-sales-sync/internal/usecases/aggregating"
	"github.com/orangepax/outlet-sales-sync/pkg/log"
)

const (
	StageAuth    = "auth"
	StageFetch   = "fetch"
	StageWrite   = "write"
	StagePublish = "publish"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type SyncService interface {
	Run(ctx context.Context) (*Report, error)
}

// Report summarises one run. It is returned even when the run failed after the snapshot stage.
type Report struct {
	RunID             string           `json:"runId"`
	StartedAt         time.Time        `json:"startedAt"`
	CompletedAt       time.Time        `json:"completedAt"`
	Windows           domain.Windows   `json:"-"`
	Records           int              `json:"records"`
	ReferenceStores   int              `json:"referenceStores"`
	ReferenceDegraded bool             `json:"referenceDegraded"`
	ReferenceError    string           `json:"referenceError,omitempty"`
	TodayRows         int              `json:"todayRows"`
	YesterdayRows     int              `json:"yesterdayRows"`
	MTDRows           int              `json:"mtdRows"`
	SnapshotPath      string           `json:"snapshotPath,omitempty"`
	Publish           publisher.Result `json:"publish"`
	FetchFailed       bool             `json:"fetchFailed"`
}

func (r *Report) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

type Service struct {
	cfg        *config.Config
	erp        erp.ERPIntegrator
	mapper     reference.ReferenceMapper
	aggregator aggregating.AggregatingService
	writer     snapshot.SnapshotWriter
	publisher  publisher.ArtifactPublisher
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	erpIntegrator erp.ERPIntegrator,
	mapper reference.ReferenceMapper,
	aggregator aggregating.AggregatingService,
	writer snapshot.SnapshotWriter,
	artifactPublisher publisher.ArtifactPublisher,
) *Service {
	return &Service{
		cfg:        cfg,
		erp:        erpIntegrator,
		mapper:     mapper,
		aggregator: aggregator,
		writer:     writer,
		publisher:  artifactPublisher,
		now:        time.Now,
	}
}

// WithClock replaces the wall clock used to compute the windows.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run executes token, fetch, reference, aggregate, write and publish once.
//
// A token failure aborts before anything is written. A fetch failure still writes a snapshot
// with empty views so the dashboard shows "no data" instead of stale numbers, and the run is
// reported as failed. Reference problems only disable enrichment. A publish failure keeps the
// local snapshot.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	if log.GetCorrelationID(ctx) == "" {
		ctx, _ = log.WithCorrelationID(ctx)
	}
	logger := log.ForContext(ctx)

	now := s.now()
	report := &Report{
		RunID:     log.GetCorrelationID(ctx),
		StartedAt: now,
		Windows:   domain.NewWindows(now),
	}
	w := report.Windows

	logger.WithFields(log.Fields{
		"fetch_start": w.Fetch.Start,
		"fetch_end":   w.Fetch.End,
	}).Info("sync: run started")

	token, err := s.erp.AcquireToken(ctx)
	if err != nil {
		return s.finish(ctx, report, &RunError{Stage: StageAuth, Err: err})
	}

	var runErr error

	records, err := s.erp.FetchTransactions(ctx, token, w.Fetch, erp.FieldsFromConfig(s.cfg))
	if err != nil {
		logger.WithError(err).Error("sync: fetch failed, writing an empty snapshot")
		report.FetchFailed = true
		records = nil
		runErr = &RunError{Stage: StageFetch, Err: err}
	}
	report.Records = len(records)

	refs, err := s.mapper.Load(ctx, s.cfg.Reference.Source)
	if err != nil {
		logger.WithError(err).Warn("sync: store reference unavailable, continuing without enrichment")
		report.ReferenceDegraded = true
		report.ReferenceError = err.Error()
		refs = nil
	}
	report.ReferenceStores = refs.Len()

	views := snapshot.Views{
		Today:     s.aggregator.Aggregate(records, w.Today, refs, aggregating.Options{}),
		Yesterday: s.aggregator.Aggregate(records, w.Yesterday, refs, aggregating.Options{}),
		MTD:       s.aggregator.Aggregate(records, w.MTD, refs, aggregating.Options{IncludeTarget: true}),
	}
	views.Metadata = s.aggregator.Metadata(views.Today, views.Yesterday, views.MTD)

	report.TodayRows = len(views.Today)
	report.YesterdayRows = len(views.Yesterday)
	report.MTDRows = len(views.MTD)

	path, err := s.writer.Write(ctx, views, now)
	if err != nil {
		return s.finish(ctx, report, errors.Join(runErr, &RunError{Stage: StageWrite, Err: err}))
	}
	report.SnapshotPath = path

	result, err := s.publisher.Publish(ctx, path)
	if err != nil {
		runErr = errors.Join(runErr, &RunError{Stage: StagePublish, Err: err})
	}
	report.Publish = result

	return s.finish(ctx, report, runErr)
}

func (s *Service) finish(ctx context.Context, report *Report, err error) (*Report, error) {
	report.CompletedAt = s.now()

	entry := log.ForContext(ctx).WithFields(log.Fields{
		"records":            report.Records,
		"reference_stores":   report.ReferenceStores,
		"reference_degraded": report.ReferenceDegraded,
		"today_rows":         report.TodayRows,
		"yesterday_rows":     report.YesterdayRows,
		"mtd_rows":           report.MTDRows,
		"publish":            report.Publish.Status,
		"duration":           log.Duration(report.Duration()),
	})

	if err != nil {
		entry.WithError(err).Error("sync: run failed")
		return report, err
	}

	entry.Info("sync: run completed")
	return report, nil
}
