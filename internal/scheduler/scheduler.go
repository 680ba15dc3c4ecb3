package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lead_scraper/internal/domain"
)

// EmailBatcher runs one scheduled email discovery batch.
type EmailBatcher interface {
	RunScheduled(ctx context.Context) (*domain.EmailBatchStats, error)
}

type Scheduler struct {
	batcher  EmailBatcher
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(batcher EmailBatcher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		batcher:  batcher,
		interval: interval,
		timeout:  5 * time.Minute,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start runs a batch every interval until ctx is cancelled. The first batch
// waits one full interval so a restart loop does not hammer the lookups.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runBatch(ctx)
		}
	}
}

func (s *Scheduler) runBatch(ctx context.Context) {
	batchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.batcher.RunScheduled(batchCtx)
	if errors.Is(err, domain.ErrJobRunning) {
		s.logger.Info("email batch already running, skipping")
		return
	}
	if err != nil {
		s.logger.Error("email batch failed", "error", err)
		return
	}
	s.logger.Debug("email batch finished", "processed", stats.Processed, "found", stats.Found)
}
