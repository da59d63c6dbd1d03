package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/store"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// ErrRunInProgress is returned when another instance holds the job lock.
var ErrRunInProgress = errors.New("abandonment run already in progress")

const (
	// defaultLockTTL bounds how long a crashed holder can block other instances.
	defaultLockTTL = 30 * time.Minute
	staleJobAge    = 2 * time.Hour
)

// Scheduler runs the abandonment job on a cron schedule. Each run takes the
// distributed lock and records a job_runs row, so several instances can share
// one database without double-notifying carts.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	store   store.Store
	log     *slog.Logger
	lockTTL time.Duration

	runEntryID cron.EntryID
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLockTTL overrides how long a run may hold the job lock. Non-positive
// values keep the default.
func WithLockTTL(ttl time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// NewScheduler registers the abandonment job. schedule accepts any
// robfig/cron expression, including "@every 15m".
func NewScheduler(
	eng *Engine,
	s store.Store,
	schedule string,
	log *slog.Logger,
	opts ...SchedulerOption,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:    c,
		engine:  eng,
		store:   s,
		log:     log,
		lockTTL: defaultLockTTL,
	}
	for _, opt := range opts {
		opt(sched)
	}

	id, err := c.AddFunc(schedule, sched.runScheduled)
	if err != nil {
		return nil, err
	}
	sched.runEntryID = id

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
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

// SyncNextRunTimestamps publishes the next scheduled run time.
func (s *Scheduler) SyncNextRunTimestamps() {
	e := s.cron.Entry(s.runEntryID)
	if e.Next.IsZero() {
		return
	}
	metrics.SchedulerNextRunTimestamp.Set(float64(e.Next.Unix()))
}

// RecoverStaleJobRuns marks job runs left in "running" by a crashed process.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobAge)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

// RunNow executes the job immediately under the same lock as scheduled runs.
func (s *Scheduler) RunNow(ctx context.Context) (*domain.RunSummary, error) {
	var summary *domain.RunSummary
	err := s.runJob(ctx, JobName, s.lockTTL, func(ctx context.Context) (int, error) {
		var err error
		summary, err = s.engine.Run(ctx)
		if summary == nil {
			return 0, err
		}
		success, _ := summary.Totals()
		return success, err
	})
	return summary, err
}

func (s *Scheduler) runScheduled() {
	ctx := context.Background()
	defer s.SyncNextRunTimestamps()

	s.log.Info("scheduled abandonment run starting")
	if _, err := s.RunNow(ctx); err != nil {
		if errors.Is(err, ErrRunInProgress) {
			s.log.Info("scheduled run skipped, lock held elsewhere")
			return
		}
		s.log.Error("scheduled abandonment run failed", "error", err)
	}
}

// runJob wraps fn with the scheduler lock and a job_runs record. fn returns
// the number of rows it affected.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	ttl time.Duration,
	fn func(ctx context.Context) (int, error),
) error {
	holder := s.engine.lockHolder

	ok, err := s.store.AcquireSchedulerLock(ctx, name, holder, ttl)
	if err != nil {
		return err
	}
	if !ok {
		metrics.SchedulerLockContendedTotal.Inc()
		return ErrRunInProgress
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), name, holder); err != nil {
			s.log.Error("releasing scheduler lock", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		return err
	}

	rows, jobErr := fn(ctx)

	status, errText := domain.JobStatusSucceeded, ""
	if jobErr != nil {
		status, errText = domain.JobStatusFailed, jobErr.Error()
	}
	if err := s.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, rows); err != nil {
		s.log.Error("completing job run", "job", name, "run_id", runID, "error", err)
	}

	return jobErr
}
