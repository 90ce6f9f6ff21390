package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/dataset-pricer/internal/metrics"
	"github.com/donaldgifford/dataset-pricer/internal/store"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// JobAutoReprice is the job name recorded in job_runs and scheduler_locks.
const JobAutoReprice = "auto_reprice"

const (
	defaultLockTTL    = 30 * time.Minute
	staleJobThreshold = 2 * time.Hour
)

// Scheduler runs the auto-reprice batch on a fixed interval. Each run takes
// a database lock so only one replica reprices at a time, and is recorded
// in job_runs. Failed runs are not retried; the next tick runs normally.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger

	holder         string
	lockTTL        time.Duration
	repriceEntryID cron.EntryID
}

// NewScheduler creates a new Scheduler that reprices every interval.
func NewScheduler(
	eng *Engine,
	s store.Store,
	interval time.Duration,
	lockTTL time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}

	sched := &Scheduler{
		cron:    cron.New(),
		engine:  eng,
		store:   s,
		log:     log,
		holder:  lockHolder(),
		lockTTL: lockTTL,
	}

	id, err := sched.cron.AddFunc("@every "+interval.String(), sched.runReprice)
	if err != nil {
		return nil, fmt.Errorf("registering %s job: %w", JobAutoReprice, err)
	}
	sched.repriceEntryID = id

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next scheduled run time as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	entry := s.cron.Entry(s.repriceEntryID)
	if entry.Next.IsZero() {
		return
	}
	metrics.SchedulerNextRepriceTimestamp.Set(float64(entry.Next.Unix()))
}

// RecoverStaleJobRuns marks runs left in 'running' by a crashed process.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobThreshold)
	if err != nil {
		s.log.Error("recovering stale job runs failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

// RunReprice runs the auto-reprice batch once under the scheduler lock.
func (s *Scheduler) RunReprice(ctx context.Context) error {
	return s.runJob(ctx, JobAutoReprice, s.lockTTL, func(ctx context.Context) (int, error) {
		outcomes, err := s.engine.RunAutoPricingForAll(ctx, SystemActor)
		return domain.Summarize(outcomes).Applied, err
	})
}

func (s *Scheduler) runReprice() {
	s.log.Info("scheduled auto-reprice starting")
	if err := s.RunReprice(context.Background()); err != nil {
		s.log.Error("scheduled auto-reprice failed", "error", err)
	}
	s.SyncNextRunTimestamps()
}

// runJob wraps fn with the distributed lock and job_runs bookkeeping. If
// another holder owns the lock the job is skipped without error.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	ttl time.Duration,
	fn func(context.Context) (int, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, ttl)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !acquired {
		s.log.Info("job skipped, lock held by another instance", "job", name)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), name, s.holder); err != nil {
			s.log.Error("releasing scheduler lock failed", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		return fmt.Errorf("recording start of %s: %w", name, err)
	}

	rows, jobErr := fn(ctx)

	status, errText := domain.JobSucceeded, ""
	if jobErr != nil {
		status, errText = domain.JobFailed, jobErr.Error()
	}
	metrics.SchedulerJobRunsTotal.WithLabelValues(name, status).Inc()

	if err := s.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, rows); err != nil {
		s.log.Error("recording end of job failed", "job", name, "run_id", runID, "error", err)
	}

	return jobErr
}

// lockHolder identifies this process in scheduler_locks.
func lockHolder() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return host + "-" + uuid.NewString()
}
