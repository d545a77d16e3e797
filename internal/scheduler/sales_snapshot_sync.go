// Package scheduler runs the sales snapshot sync on a cron schedule and on demand.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/orangepax/outlet-sales-sync/internal/config"
	"github.com/orangepax/outlet-sales-sync/internal/usecases/syncing"
	"github.com/orangepax/outlet-sales-sync/pkg/log"
)

var ErrSyncInProgress = errors.New("sales snapshot sync already running")

type SalesSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	RunOnStart   bool
}

// SalesSnapshotSyncService owns the cron job. At most one run executes at a time,
// whether it was started by the schedule or by hand.
type SalesSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesSnapshotSyncConfig
	syncService         syncing.SyncService
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *syncing.Report
	lastError           string
}

func NewSalesSnapshotSyncService(syncService syncing.SyncService, cfg *config.Config) *SalesSnapshotSyncService {
	syncConfig := SalesSnapshotSyncConfig{
		CronSchedule: cfg.Sync.CronSchedule,
		SyncEnabled:  cfg.Sync.Enabled,
		RunOnStart:   cfg.Sync.RunOnStart,
	}

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"run_on_start":  syncConfig.RunOnStart,
	}).Info("sales snapshot scheduler configured")

	return &SalesSnapshotSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncService: syncService,
		baseCtx:     context.Background(),
	}
}

func (s *SalesSnapshotSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("sales snapshot schedule disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting sales snapshot scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunSync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("scheduled sales snapshot sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling sales snapshot sync: %w", err)
	}

	s.scheduler.StartAsync()

	if s.config.RunOnStart {
		s.TriggerManualSync()
	}

	go func() {
		<-ctx.Done()
		logrus.Info("stopping sales snapshot scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync executes one run in the caller's goroutine. It returns ErrSyncInProgress
// without touching anything when another run holds the slot.
func (s *SalesSnapshotSyncService) RunSync(ctx context.Context) (*syncing.Report, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("sales snapshot sync already running, skipping")
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	report, err := s.syncService.Run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastReport = report
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}

	return report, err
}

// TriggerManualSync starts a run in the background. It reports false when a run is already going.
func (s *SalesSnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("sales snapshot sync already running, ignoring manual request")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("starting manual sales snapshot sync")
	go func() {
		if _, err := s.RunSync(s.baseCtx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("manual sales snapshot sync failed")
		}
	}()

	return true
}

func (s *SalesSnapshotSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

func (s *SalesSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastReport != nil {
		status["last_report"] = s.lastReport
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	return status
}

// Stop halts the cron loop. A run already in progress finishes on its own.
func (s *SalesSnapshotSyncService) Stop() {
	s.scheduler.Stop()
}
