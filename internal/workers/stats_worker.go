package workers

import (
	"context"
	"time"

	"jobstreet_backend/internal/logger"
	"jobstreet_backend/internal/repositories"
)

// StatsWorker periodically recomputes the per-job counter rows from the
// source tables. Stats stay eventually consistent between runs; the
// on-demand refresh on GET /jobs/:id/stats covers the gap.
type StatsWorker struct {
	statRepo repositories.JobStatRepository
	interval time.Duration
}

func NewStatsWorker(statRepo repositories.JobStatRepository, interval time.Duration) *StatsWorker {
	return &StatsWorker{
		statRepo: statRepo,
		interval: interval,
	}
}

func (w *StatsWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *StatsWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stats worker stopped")
			return
		case <-ticker.C:
			refreshed, err := w.statRepo.RefreshAllActive(ctx)
			if err != nil {
				logger.WithError(err).Error("Failed to refresh job stats")
				continue
			}
			if refreshed > 0 {
				logger.Debug("Job stats refreshed", "jobs", refreshed)
			}
		}
	}
}
