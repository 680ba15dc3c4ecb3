package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lead_scraper/internal/config"
	"lead_scraper/internal/domain"
	"lead_scraper/internal/jobs"
	"lead_scraper/internal/metrics"
)

type ProcessingService struct {
	projects    ProjectStore
	staged      StagedLeadStore
	uniqueLeads UniqueLeadStore
	membership  MembershipStore
	leads       LeadStore
	txManager   TransactionManager
	locker      Locker
	runner      JobRunner
	publisher   Publisher
	logger      *slog.Logger
	config      config.ProcessingConfig
}

func NewProcessingService(
	projects ProjectStore,
	staged StagedLeadStore,
	uniqueLeads UniqueLeadStore,
	membership MembershipStore,
	leads LeadStore,
	txManager TransactionManager,
	locker Locker,
	runner JobRunner,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.ProcessingConfig,
) *ProcessingService {
	return &ProcessingService{
		projects:    projects,
		staged:      staged,
		uniqueLeads: uniqueLeads,
		membership:  membership,
		leads:       leads,
		txManager:   txManager,
		locker:      locker,
		runner:      runner,
		publisher:   publisher,
		logger:      logger.With("component", "processing"),
		config:      cfg,
	}
}

func processLockKey(projectID uuid.UUID) string {
	return "process-leads:" + projectID.String()
}

// Start schedules the processing job for a project. Only one job per project
// runs at a time.
func (s *ProcessingService) Start(ctx context.Context, ownerID, projectID uuid.UUID) (*jobs.Handle, error) {
	project, err := s.projects.Get(ctx, projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project.LeadsProcessed {
		return nil, domain.ErrAlreadyProcessed
	}
	if project.Status == domain.ProjectScraping {
		return nil, fmt.Errorf("project is still scraping: %w", domain.ErrInvalidState)
	}

	key := processLockKey(projectID)
	release, err := s.locker.TryAcquire(ctx, key)
	if err != nil {
		return nil, err
	}

	h := s.runner.Submit(key, func(ctx context.Context) error {
		defer release()

		if s.config.JobTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.config.JobTimeout)
			defer cancel()
		}

		_, err := s.Process(ctx, projectID)
		return err
	})

	select {
	case <-h.Done():
		if errors.Is(h.Err(), jobs.ErrShutdown) {
			release()
			return nil, h.Err()
		}
	default:
	}

	s.logger.Info("processing scheduled", "project_id", projectID)
	return h, nil
}

// Process drains a project's staging area. Every staged lead is handled in
// its own transaction; a failing row is logged and left unprocessed for the
// next run while the rest continue.
func (s *ProcessingService) Process(ctx context.Context, projectID uuid.UUID) (*domain.ProcessStats, error) {
	startTime := time.Now()
	metrics.JobsInFlight.WithLabelValues("process").Inc()
	defer metrics.JobsInFlight.WithLabelValues("process").Dec()

	logger := s.logger.With("project_id", projectID)

	pending, err := s.staged.ListUnprocessed(ctx, projectID)
	if err != nil {
		s.observe(startTime, "failed")
		return nil, fmt.Errorf("list staged leads: %w", err)
	}

	logger.Info("processing staged leads", "pending", len(pending))

	stats := &domain.ProcessStats{
		ProjectID: projectID,
		Pending:   len(pending),
	}

	var created []domain.Event
	for i := range pending {
		if err := ctx.Err(); err != nil {
			s.observe(startTime, "failed")
			return stats, err
		}

		lead := &pending[i]
		res, linked, err := s.processOne(ctx, lead)
		if err != nil {
			stats.Errors++
			metrics.LeadsProcessedTotal.WithLabelValues("error").Inc()
			logger.Warn("failed to process staged lead",
				"staged_lead_id", lead.ID,
				"business_name", lead.BusinessName,
				"error", err,
			)
			continue
		}

		if res.Created {
			stats.Created++
			metrics.UniqueLeadsCreatedTotal.Inc()
			leadID := res.ID
			created = append(created, domain.Event{
				Type:      domain.EventLeadCreated,
				ProjectID: &projectID,
				LeadID:    &leadID,
				Data:      map[string]any{"business_name": lead.BusinessName},
			})
		}

		if linked {
			stats.Linked++
			metrics.LeadsProcessedTotal.WithLabelValues("linked").Inc()
		} else {
			stats.Duplicates++
			metrics.LeadsProcessedTotal.WithLabelValues("duplicate").Inc()
		}
	}

	if err := s.projects.FinalizeProcessing(ctx, projectID, stats.Duplicates); err != nil {
		s.observe(startTime, "failed")
		return stats, fmt.Errorf("finalize processing: %w", err)
	}

	stats.Duration = time.Since(startTime)
	s.observe(startTime, "completed")

	for _, event := range created {
		s.publish(ctx, event)
	}
	s.publish(ctx, domain.Event{
		Type:      domain.EventProjectProcessed,
		ProjectID: &projectID,
		Data: map[string]any{
			"linked":     stats.Linked,
			"duplicates": stats.Duplicates,
			"created":    stats.Created,
			"errors":     stats.Errors,
		},
	})

	logger.Info("processing completed",
		"pending", stats.Pending,
		"linked", stats.Linked,
		"duplicates", stats.Duplicates,
		"created", stats.Created,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// processOne resolves, links and retires one staged lead atomically. linked
// is false when the lead was already a member of the project.
func (s *ProcessingService) processOne(ctx context.Context, lead *domain.StagedLead) (domain.Resolution, bool, error) {
	var res domain.Resolution
	var linked bool

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.uniqueLeads.Resolve(txCtx, lead.Place())
		if err != nil {
			return fmt.Errorf("resolve lead: %w", err)
		}

		termID := lead.SearchTermID
		err = s.membership.Link(txCtx, lead.ProjectID, res.ID, &termID)
		switch {
		case errors.Is(err, domain.ErrAlreadyLinked):
			linked = false
		case err != nil:
			return fmt.Errorf("link lead: %w", err)
		default:
			linked = true
			if err := s.leads.Insert(txCtx, legacyLead(lead, res.ID)); err != nil {
				return fmt.Errorf("insert lead: %w", err)
			}
		}

		if err := s.staged.MarkProcessed(txCtx, lead.ID); err != nil {
			return fmt.Errorf("mark processed: %w", err)
		}
		return nil
	})

	return res, linked, err
}

func legacyLead(lead *domain.StagedLead, uniqueLeadID uuid.UUID) *domain.Lead {
	termID := lead.SearchTermID
	return &domain.Lead{
		ProjectID:    lead.ProjectID,
		SearchTermID: &termID,
		UniqueLeadID: uniqueLeadID,
		BusinessName: lead.BusinessName,
		Address:      lead.Address,
		Phone:        lead.Phone,
		Website:      lead.Website,
		GoogleURL:    lead.GoogleURL,
		Rating:       lead.Rating,
		ReviewCount:  lead.ReviewCount,
	}
}

func (s *ProcessingService) observe(start time.Time, result string) {
	metrics.JobDurationSeconds.WithLabelValues("process", result).Observe(time.Since(start).Seconds())
}

func (s *ProcessingService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "type", event.Type, "error", err)
	}
}
