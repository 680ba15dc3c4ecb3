package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"lead_scraper/internal/config"
	"lead_scraper/internal/domain"
	"lead_scraper/internal/jobs"
	"lead_scraper/internal/metrics"
)

const (
	maxTermMessage = 200
	// guardGrace bounds how long a timed-out run gets to unwind before the
	// guard writes its verdict.
	guardGrace = 5 * time.Second
	// finalizeTimeout bounds status writes made after the run context is gone.
	finalizeTimeout = 10 * time.Second
)

type ScrapeService struct {
	projects  ProjectStore
	terms     SearchTermStore
	staged    StagedLeadStore
	searcher  Searcher
	runner    JobRunner
	publisher Publisher
	logger    *slog.Logger
	config    config.ScrapeConfig
}

func NewScrapeService(
	projects ProjectStore,
	terms SearchTermStore,
	staged StagedLeadStore,
	searcher Searcher,
	runner JobRunner,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.ScrapeConfig,
) *ScrapeService {
	return &ScrapeService{
		projects:  projects,
		terms:     terms,
		staged:    staged,
		searcher:  searcher,
		runner:    runner,
		publisher: publisher,
		logger:    logger.With("component", "scrape"),
		config:    cfg,
	}
}

// Start claims a draft project and schedules its scrape in the background.
// It returns as soon as the run is scheduled.
func (s *ScrapeService) Start(ctx context.Context, ownerID, projectID uuid.UUID) (*jobs.Handle, error) {
	project, err := s.projects.Get(ctx, projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	terms, err := s.terms.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list search terms: %w", err)
	}
	if len(terms) == 0 {
		return nil, domain.ErrNoSearchTerms
	}

	if project.Status != domain.ProjectDraft {
		return nil, fmt.Errorf("project is %s, reset it first: %w", project.Status, domain.ErrInvalidState)
	}

	runID := uuid.New()
	if err := s.projects.ClaimForScrape(ctx, projectID, ownerID, runID); err != nil {
		return nil, fmt.Errorf("claim project: %w", err)
	}

	s.logger.Info("scrape scheduled",
		"project_id", projectID,
		"run_id", runID,
		"terms", len(terms),
	)

	h := s.runner.Submit("scrape:"+projectID.String(), func(ctx context.Context) error {
		_, err := s.Run(ctx, projectID, runID, terms)
		return err
	})

	select {
	case <-h.Done():
		if errors.Is(h.Err(), jobs.ErrShutdown) {
			// the run never started; hand the project back as a draft
			if _, err := s.projects.ResetToDraft(context.WithoutCancel(ctx), projectID, ownerID); err != nil {
				s.logger.Error("failed to release scrape claim", "project_id", projectID, "error", err)
			}
			return nil, h.Err()
		}
	default:
	}

	return h, nil
}

// ErrScrapeTimedOut is returned by Run when the guard timer fails the run.
var ErrScrapeTimedOut = errors.New("scrape timed out")

type scrapeOutcome struct {
	stats *domain.ScrapeStats
	err   error
}

// Run scrapes every term of a claimed project. When a guard timeout is
// configured the scrape races a timer; if the timer wins the scrape is
// cancelled and the project and its in-flight terms are failed.
func (s *ScrapeService) Run(ctx context.Context, projectID, runID uuid.UUID, terms []domain.SearchTerm) (*domain.ScrapeStats, error) {
	startTime := time.Now()
	metrics.JobsInFlight.WithLabelValues("scrape").Inc()
	defer metrics.JobsInFlight.WithLabelValues("scrape").Dec()

	logger := s.logger.With("project_id", projectID, "run_id", runID)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan scrapeOutcome, 1)
	go func() {
		stats, err := s.scrape(runCtx, projectID, runID, terms)
		done <- scrapeOutcome{stats: stats, err: err}
	}()

	var guard <-chan time.Time
	if s.config.GuardTimeout > 0 {
		timer := time.NewTimer(s.config.GuardTimeout)
		defer timer.Stop()
		guard = timer.C
	}

	var out scrapeOutcome
	select {
	case out = <-done:
		out.err = s.finish(ctx, logger, projectID, runID, out)
	case <-guard:
		cancel()
		select {
		case out = <-done:
		case <-time.After(guardGrace):
			logger.Warn("scrape did not stop after cancel")
			out = scrapeOutcome{
				stats: &domain.ScrapeStats{ProjectID: projectID, RunID: runID, TermsTotal: len(terms)},
				err:   context.Canceled,
			}
		}
		if !errors.Is(out.err, context.Canceled) {
			// finished, or failed on its own, just as the timer fired
			out.err = s.finish(ctx, logger, projectID, runID, out)
			break
		}
		out.stats.TimedOut = true
		out.err = s.failTimedOut(ctx, logger, projectID, runID, out.stats)
	}

	out.stats.Duration = time.Since(startTime)

	result := "completed"
	if out.err != nil {
		result = "failed"
	}
	metrics.JobDurationSeconds.WithLabelValues("scrape", result).Observe(out.stats.Duration.Seconds())

	logger.Info("scrape finished",
		"result", result,
		"terms", out.stats.TermsTotal,
		"terms_failed", out.stats.TermsFailed,
		"staged", out.stats.Staged,
		"timed_out", out.stats.TimedOut,
		"duration", out.stats.Duration,
	)

	return out.stats, out.err
}

// scrape walks the terms in order. A provider error fails only its own term;
// any store error aborts the run.
func (s *ScrapeService) scrape(ctx context.Context, projectID, runID uuid.UUID, terms []domain.SearchTerm) (*domain.ScrapeStats, error) {
	stats := &domain.ScrapeStats{
		ProjectID:  projectID,
		RunID:      runID,
		TermsTotal: len(terms),
	}

	for _, term := range terms {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if err := s.terms.MarkScraping(ctx, runID, term.ID, "Searching for: "+term.Term); err != nil {
			return stats, fmt.Errorf("mark term scraping: %w", err)
		}

		places, err := s.searcher.Search(ctx, term.Term)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}

			s.logger.Warn("search term failed",
				"project_id", projectID,
				"term", term.Term,
				"error", err,
			)
			if err := s.terms.MarkFailed(ctx, runID, term.ID, termErrorMessage(err)); err != nil {
				return stats, fmt.Errorf("mark term failed: %w", err)
			}
			stats.TermsFailed++
			metrics.SearchTermsTotal.WithLabelValues(string(domain.TermFailed)).Inc()
			continue
		}

		for _, place := range places {
			if err := s.staged.Insert(ctx, runID, projectID, term.ID, place); err != nil {
				return stats, fmt.Errorf("stage lead: %w", err)
			}
			stats.Staged++
			metrics.StagedLeadsTotal.Inc()
		}

		message := fmt.Sprintf("Scraped %d leads - ready to process", len(places))
		if err := s.terms.MarkCompleted(ctx, runID, term.ID, len(places), message); err != nil {
			return stats, fmt.Errorf("mark term completed: %w", err)
		}
		metrics.SearchTermsTotal.WithLabelValues(string(domain.TermCompleted)).Inc()
	}

	if err := s.projects.CompleteScrape(ctx, projectID, runID, stats.Staged); err != nil {
		return stats, fmt.Errorf("complete project: %w", err)
	}

	return stats, nil
}

// finish records a scrape that ended on its own. A stale run means the
// project was reset underneath it and is not an error.
func (s *ScrapeService) finish(ctx context.Context, logger *slog.Logger, projectID, runID uuid.UUID, out scrapeOutcome) error {
	if out.err == nil {
		s.publish(ctx, domain.Event{
			Type:      domain.EventProjectScraped,
			ProjectID: &projectID,
			Data: map[string]any{
				"staged":       out.stats.Staged,
				"terms_total":  out.stats.TermsTotal,
				"terms_failed": out.stats.TermsFailed,
			},
		})
		return nil
	}

	if errors.Is(out.err, domain.ErrStaleRun) {
		logger.Info("scrape superseded, dropping results")
		return nil
	}

	logger.Error("scrape failed", "error", out.err)

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	if err := s.failRun(wctx, projectID, runID, out.stats.Staged, termErrorMessage(out.err)); err != nil {
		return errors.Join(out.err, err)
	}
	return out.err
}

func (s *ScrapeService) failTimedOut(ctx context.Context, logger *slog.Logger, projectID, runID uuid.UUID, stats *domain.ScrapeStats) error {
	metrics.ScrapeTimeoutsTotal.Inc()
	message := fmt.Sprintf("Timed out after %s", s.config.GuardTimeout)

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	if err := s.failRun(wctx, projectID, runID, stats.Staged, message); err != nil {
		return fmt.Errorf("fail timed out run: %w", err)
	}

	logger.Warn("scrape timed out", "timeout", s.config.GuardTimeout)
	return ErrScrapeTimedOut
}

// failRun fails the project first so that any straggling write from the run
// is fenced off, then fails the terms it left in flight.
func (s *ScrapeService) failRun(ctx context.Context, projectID, runID uuid.UUID, staged int, message string) error {
	err := s.projects.FailScrape(ctx, projectID, runID, staged)
	if errors.Is(err, domain.ErrStaleRun) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fail project: %w", err)
	}

	n, err := s.terms.FailInFlight(ctx, runID, projectID, message)
	if err != nil {
		return fmt.Errorf("fail in-flight terms: %w", err)
	}
	if n > 0 {
		metrics.SearchTermsTotal.WithLabelValues(string(domain.TermFailed)).Add(float64(n))
	}
	return nil
}

func (s *ScrapeService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "type", event.Type, "error", err)
	}
}

func termErrorMessage(err error) string {
	return "Error: " + truncate(err.Error(), maxTermMessage)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
