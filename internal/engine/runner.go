package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/tracing"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// JobName identifies the abandonment job in job_runs and scheduler_locks.
const JobName = domain.AbandonmentJobName

type storeTask struct {
	website domain.Website
	store   domain.Store
}

// Run executes one full pass over every enabled website and its stores.
// Websites or stores with broken configuration are skipped and noted in
// their StoreResult. Only failures that stop the whole pass, or persistence
// failures in any store, are returned.
func (eng *Engine) Run(ctx context.Context) (*domain.RunSummary, error) {
	ctx, span := tracing.Tracer().Start(ctx, "engine.Run")
	defer span.End()

	start := time.Now()
	summary := &domain.RunSummary{
		RunID:     uuid.NewString(),
		StartedAt: eng.nowFunc(),
	}
	span.SetAttributes(attribute.String("run.id", summary.RunID))

	log := eng.log.With("run_id", summary.RunID)
	log.Info("abandonment run starting")

	tasks, err := eng.collectTasks(ctx)
	if err != nil {
		metrics.RunsTotal.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("abandonment run aborted", "error", err)
		return summary, err
	}

	results := make([]domain.StoreResult, len(tasks))
	storeErrs := make([]error, len(tasks))

	var g errgroup.Group
	g.SetLimit(eng.concurrency)
	for i, task := range tasks {
		g.Go(func() error {
			res, err := eng.ProcessStore(ctx, task.website, task.store)
			if err != nil {
				res.Error = err.Error()
				var cfgErr *scope.ConfigError
				if errors.As(err, &cfgErr) {
					metrics.StoresSkippedTotal.WithLabelValues("config").Inc()
					log.Warn("store skipped", "store_id", task.store.ID, "error", err)
				} else {
					storeErrs[i] = err
					log.Error("store failed", "store_id", task.store.ID, "error", err)
				}
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	summary.Stores = results
	summary.FinishedAt = eng.nowFunc()
	metrics.RunDuration.Observe(time.Since(start).Seconds())

	success, failure := summary.Totals()
	runErr := errors.Join(storeErrs...)
	if runErr != nil {
		metrics.RunsTotal.WithLabelValues("failed").Inc()
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
	} else {
		metrics.RunsTotal.WithLabelValues("succeeded").Inc()
	}

	log.Info("abandonment run complete",
		"stores", len(results),
		"success_count", success,
		"failure_count", failure,
		"duration", time.Since(start),
	)
	return summary, runErr
}

// collectTasks lists the stores of every website with the feature enabled.
func (eng *Engine) collectTasks(ctx context.Context) ([]storeTask, error) {
	websites, err := eng.store.ListWebsites(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing websites: %w", err)
	}

	var tasks []storeTask
	for _, w := range websites {
		enabled, err := eng.settings.AbandonmentEnabled(ctx, w.ID)
		if err != nil {
			metrics.StoresSkippedTotal.WithLabelValues("config").Inc()
			eng.log.Warn("website skipped", "website_id", w.ID, "error", err)
			continue
		}
		if !enabled {
			metrics.StoresSkippedTotal.WithLabelValues("disabled").Inc()
			eng.log.Debug("cart abandonment disabled", "website_id", w.ID)
			continue
		}

		stores, err := eng.store.ListStores(ctx, w.ID)
		if err != nil {
			return nil, fmt.Errorf("listing stores for website %d: %w", w.ID, err)
		}
		for _, st := range stores {
			tasks = append(tasks, storeTask{website: w, store: st})
		}
	}
	return tasks, nil
}
