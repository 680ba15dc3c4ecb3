package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"lead_scraper/internal/config"
	"lead_scraper/internal/domain"
	"lead_scraper/internal/metrics"
)

const (
	maxEmailBatch = 100
	emailLockKey  = "find-emails"
)

type EmailService struct {
	uniqueLeads UniqueLeadStore
	finder      EmailFinder
	locker      Locker
	publisher   Publisher
	logger      *slog.Logger
	config      config.EmailConfig
}

func NewEmailService(
	uniqueLeads UniqueLeadStore,
	finder EmailFinder,
	locker Locker,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.EmailConfig,
) *EmailService {
	return &EmailService{
		uniqueLeads: uniqueLeads,
		finder:      finder,
		locker:      locker,
		publisher:   publisher,
		logger:      logger.With("component", "emails"),
		config:      cfg,
	}
}

// FindEmails enriches up to limit unique leads that have a website but no
// email. A non-positive limit uses the configured default.
func (s *EmailService) FindEmails(ctx context.Context, limit int) (*domain.EmailBatchStats, error) {
	if limit <= 0 {
		limit = s.config.DefaultLimit
	}
	return s.run(ctx, limit)
}

// RunScheduled is the batch the scheduler and cron endpoint trigger.
func (s *EmailService) RunScheduled(ctx context.Context) (*domain.EmailBatchStats, error) {
	return s.run(ctx, s.config.CronLimit)
}

func (s *EmailService) Stats(ctx context.Context) (domain.EmailStats, error) {
	stats, err := s.uniqueLeads.EmailStats(ctx)
	if err != nil {
		return stats, fmt.Errorf("email stats: %w", err)
	}
	return stats, nil
}

func (s *EmailService) run(ctx context.Context, limit int) (*domain.EmailBatchStats, error) {
	limit = min(max(limit, 1), maxEmailBatch)

	release, err := s.locker.TryAcquire(ctx, emailLockKey)
	if err != nil {
		return nil, err
	}
	defer release()

	startTime := time.Now()
	metrics.JobsInFlight.WithLabelValues("find_emails").Inc()
	defer metrics.JobsInFlight.WithLabelValues("find_emails").Dec()

	leads, err := s.uniqueLeads.ListMissingEmail(ctx, limit)
	if err != nil {
		metrics.JobDurationSeconds.WithLabelValues("find_emails", "failed").Observe(time.Since(startTime).Seconds())
		return nil, fmt.Errorf("list leads missing email: %w", err)
	}

	s.logger.Info("finding emails", "leads", len(leads), "limit", limit)

	pace := rate.Inf
	if s.config.BatchDelay > 0 {
		pace = rate.Every(s.config.BatchDelay)
	}
	limiter := rate.NewLimiter(pace, 1)

	stats := &domain.EmailBatchStats{
		Results: []domain.EmailLeadResult{},
		Misses:  []domain.EmailMiss{},
	}
	for _, lead := range leads {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		stats.Processed++

		if lead.Website == nil {
			continue
		}

		res := s.finder.Find(ctx, *lead.Website, lead.BusinessName)
		if res == nil {
			metrics.EmailLookupsTotal.WithLabelValues("not_found", "").Inc()
			stats.Misses = append(stats.Misses, domain.EmailMiss{
				LeadID:       lead.ID,
				BusinessName: lead.BusinessName,
				Website:      *lead.Website,
				Suggestions:  s.finder.Suggest(*lead.Website),
			})
			if err := s.uniqueLeads.MarkEmailChecked(ctx, lead.ID); err != nil {
				s.logger.Warn("failed to record email check",
					"lead_id", lead.ID,
					"error", err,
				)
			}
			continue
		}
		metrics.EmailLookupsTotal.WithLabelValues("found", string(res.Source)).Inc()

		updated, err := s.uniqueLeads.SetEmail(ctx, lead.ID, res.Email)
		if err != nil {
			s.logger.Warn("failed to save email",
				"lead_id", lead.ID,
				"business_name", lead.BusinessName,
				"error", err,
			)
			continue
		}
		if !updated {
			continue
		}

		stats.Found++
		stats.Results = append(stats.Results, domain.EmailLeadResult{
			LeadID:       lead.ID,
			BusinessName: lead.BusinessName,
			Email:        res.Email,
			Confidence:   res.Confidence,
			Source:       res.Source,
		})

		leadID := lead.ID
		s.publish(ctx, domain.Event{
			Type:   domain.EventLeadEmailFound,
			LeadID: &leadID,
			Data: map[string]any{
				"email":      res.Email,
				"confidence": res.Confidence,
				"source":     res.Source,
			},
		})
	}

	metrics.JobDurationSeconds.WithLabelValues("find_emails", "completed").Observe(time.Since(startTime).Seconds())

	s.logger.Info("email batch completed",
		"processed", stats.Processed,
		"found", stats.Found,
		"duration", time.Since(startTime),
	)

	return stats, nil
}

func (s *EmailService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "type", event.Type, "error", err)
	}
}
