package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lead_scraper/internal/config"
	"lead_scraper/internal/domain"
	"lead_scraper/internal/jobs"
	"lead_scraper/internal/service/mocks"
	"lead_scraper/internal/testutil"
)

type ScrapeServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	projects  *mocks.MockProjectStore
	terms     *mocks.MockSearchTermStore
	staged    *mocks.MockStagedLeadStore
	searcher  *mocks.MockSearcher
	publisher *mocks.MockPublisher
	runner    *jobs.Runner

	logger *slog.Logger

	ownerID   uuid.UUID
	projectID uuid.UUID
	runID     uuid.UUID
}

func (s *ScrapeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.projects = mocks.NewMockProjectStore(s.ctrl)
	s.terms = mocks.NewMockSearchTermStore(s.ctrl)
	s.staged = mocks.NewMockStagedLeadStore(s.ctrl)
	s.searcher = mocks.NewMockSearcher(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.runner = jobs.NewRunner(s.logger)

	s.ownerID = uuid.New()
	s.projectID = uuid.New()
	s.runID = uuid.New()
}

func (s *ScrapeServiceTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.NoError(s.runner.Shutdown(ctx))
	s.ctrl.Finish()
}

func TestScrapeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScrapeServiceTestSuite))
}

func (s *ScrapeServiceTestSuite) newService(guard time.Duration) *ScrapeService {
	return NewScrapeService(
		s.projects,
		s.terms,
		s.staged,
		s.searcher,
		s.runner,
		s.publisher,
		s.logger,
		config.ScrapeConfig{GuardTimeout: guard},
	)
}

func (s *ScrapeServiceTestSuite) term(text string) domain.SearchTerm {
	return domain.SearchTerm{
		ID:        uuid.New(),
		ProjectID: s.projectID,
		Term:      text,
		Status:    domain.TermPending,
	}
}

func places(names ...string) []domain.Place {
	out := make([]domain.Place, 0, len(names))
	for _, name := range names {
		out = append(out, domain.Place{BusinessName: name, Address: testutil.Ptr("1 Main St")})
	}
	return out
}

func (s *ScrapeServiceTestSuite) TestRun_FailedTermDoesNotStopOthers() {
	ctx := context.Background()
	t1 := s.term("plumbers in austin")
	t2 := s.term("electricians in austin")

	gomock.InOrder(
		s.terms.EXPECT().MarkScraping(gomock.Any(), s.runID, t1.ID, "Searching for: plumbers in austin").Return(nil),
		s.searcher.EXPECT().Search(gomock.Any(), "plumbers in austin").Return(places("A", "B", "C"), nil),
		s.staged.EXPECT().Insert(gomock.Any(), s.runID, s.projectID, t1.ID, gomock.Any()).Return(nil).Times(3),
		s.terms.EXPECT().MarkCompleted(gomock.Any(), s.runID, t1.ID, 3, "Scraped 3 leads - ready to process").Return(nil),
		s.terms.EXPECT().MarkScraping(gomock.Any(), s.runID, t2.ID, "Searching for: electricians in austin").Return(nil),
		s.searcher.EXPECT().Search(gomock.Any(), "electricians in austin").Return(nil, errors.New("Google Places API error: bad key")),
		s.terms.EXPECT().MarkFailed(gomock.Any(), s.runID, t2.ID, "Error: Google Places API error: bad key").Return(nil),
		s.projects.EXPECT().CompleteScrape(gomock.Any(), s.projectID, s.runID, 3).Return(nil),
	)

	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			s.Equal(domain.EventProjectScraped, event.Type)
			s.Equal(3, event.Data["staged"])
			return nil
		},
	)

	stats, err := s.newService(0).Run(ctx, s.projectID, s.runID, []domain.SearchTerm{t1, t2})

	s.NoError(err)
	s.Equal(2, stats.TermsTotal)
	s.Equal(1, stats.TermsFailed)
	s.Equal(3, stats.Staged)
	s.False(stats.TimedOut)
}

func (s *ScrapeServiceTestSuite) TestRun_StoreErrorFailsRun() {
	ctx := context.Background()
	t1 := s.term("bakeries")
	dbErr := errors.New("connection reset")

	s.terms.EXPECT().MarkScraping(gomock.Any(), s.runID, t1.ID, gomock.Any()).Return(nil)
	s.searcher.EXPECT().Search(gomock.Any(), "bakeries").Return(places("A"), nil)
	s.staged.EXPECT().Insert(gomock.Any(), s.runID, s.projectID, t1.ID, gomock.Any()).Return(dbErr)

	s.projects.EXPECT().FailScrape(gomock.Any(), s.projectID, s.runID, 0).Return(nil)
	s.terms.EXPECT().FailInFlight(gomock.Any(), s.runID, s.projectID, "Error: stage lead: connection reset").Return(int64(1), nil)

	_, err := s.newService(0).Run(ctx, s.projectID, s.runID, []domain.SearchTerm{t1})

	s.ErrorIs(err, dbErr)
}

func (s *ScrapeServiceTestSuite) TestRun_StaleRunIsDropped() {
	ctx := context.Background()
	t1 := s.term("bakeries")

	s.terms.EXPECT().MarkScraping(gomock.Any(), s.runID, t1.ID, gomock.Any()).Return(domain.ErrStaleRun)

	stats, err := s.newService(0).Run(ctx, s.projectID, s.runID, []domain.SearchTerm{t1})

	s.NoError(err)
	s.Equal(0, stats.Staged)
}

func (s *ScrapeServiceTestSuite) TestRun_GuardTimeoutFailsRun() {
	ctx := context.Background()
	t1 := s.term("slow query")
	t2 := s.term("never reached")

	s.terms.EXPECT().MarkScraping(gomock.Any(), s.runID, t1.ID, gomock.Any()).Return(nil)
	s.searcher.EXPECT().Search(gomock.Any(), "slow query").DoAndReturn(
		func(ctx context.Context, _ string) ([]domain.Place, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)

	gomock.InOrder(
		s.projects.EXPECT().FailScrape(gomock.Any(), s.projectID, s.runID, 0).Return(nil),
		s.terms.EXPECT().FailInFlight(gomock.Any(), s.runID, s.projectID, "Timed out after 50ms").Return(int64(1), nil),
	)

	stats, err := s.newService(50*time.Millisecond).Run(ctx, s.projectID, s.runID, []domain.SearchTerm{t1, t2})

	s.ErrorIs(err, ErrScrapeTimedOut)
	s.True(stats.TimedOut)
}

func (s *ScrapeServiceTestSuite) TestRun_StoreErrorKeptWhenGuardFires() {
	ctx := context.Background()
	t1 := s.term("bakeries")
	dbErr := errors.New("connection reset")

	s.terms.EXPECT().MarkScraping(gomock.Any(), s.runID, t1.ID, gomock.Any()).Return(nil)
	s.searcher.EXPECT().Search(gomock.Any(), "bakeries").DoAndReturn(
		func(ctx context.Context, _ string) ([]domain.Place, error) {
			<-ctx.Done()
			return places("A"), nil
		},
	)
	s.staged.EXPECT().Insert(gomock.Any(), s.runID, s.projectID, t1.ID, gomock.Any()).Return(dbErr)

	s.projects.EXPECT().FailScrape(gomock.Any(), s.projectID, s.runID, 0).Return(nil)
	s.terms.EXPECT().FailInFlight(gomock.Any(), s.runID, s.projectID, "Error: stage lead: connection reset").Return(int64(1), nil)

	stats, err := s.newService(50*time.Millisecond).Run(ctx, s.projectID, s.runID, []domain.SearchTerm{t1})

	s.ErrorIs(err, dbErr)
	s.NotErrorIs(err, ErrScrapeTimedOut)
	s.False(stats.TimedOut)
}

func (s *ScrapeServiceTestSuite) TestRun_GuardTimeoutAfterReset() {
	ctx := context.Background()
	t1 := s.term("slow query")

	s.terms.EXPECT().MarkScraping(gomock.Any(), s.runID, t1.ID, gomock.Any()).Return(nil)
	s.searcher.EXPECT().Search(gomock.Any(), "slow query").DoAndReturn(
		func(ctx context.Context, _ string) ([]domain.Place, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)
	s.projects.EXPECT().FailScrape(gomock.Any(), s.projectID, s.runID, 0).Return(domain.ErrStaleRun)

	_, err := s.newService(50*time.Millisecond).Run(ctx, s.projectID, s.runID, []domain.SearchTerm{t1})

	s.ErrorIs(err, ErrScrapeTimedOut)
}

func (s *ScrapeServiceTestSuite) TestStart_RunsInBackground() {
	ctx := context.Background()
	t1 := s.term("cafes")

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: domain.ProjectDraft}, nil)
	s.terms.EXPECT().ListByProject(ctx, s.projectID).Return([]domain.SearchTerm{t1}, nil)

	var claimed uuid.UUID
	s.projects.EXPECT().ClaimForScrape(ctx, s.projectID, s.ownerID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _, runID uuid.UUID) error {
			claimed = runID
			return nil
		},
	)

	s.terms.EXPECT().MarkScraping(gomock.Any(), gomock.Any(), t1.ID, "Searching for: cafes").Return(nil)
	s.searcher.EXPECT().Search(gomock.Any(), "cafes").Return(nil, nil)
	s.terms.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), t1.ID, 0, "Scraped 0 leads - ready to process").Return(nil)
	s.projects.EXPECT().CompleteScrape(gomock.Any(), s.projectID, gomock.Any(), 0).DoAndReturn(
		func(_ context.Context, _, runID uuid.UUID, _ int) error {
			s.Equal(claimed, runID)
			return nil
		},
	)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	h, err := s.newService(time.Minute).Start(ctx, s.ownerID, s.projectID)
	s.Require().NoError(err)

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		s.FailNow("scrape job did not finish")
	}
	s.NoError(h.Err())
	s.NotEqual(uuid.Nil, claimed)
}

func (s *ScrapeServiceTestSuite) TestStart_NoSearchTerms() {
	ctx := context.Background()

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: domain.ProjectDraft}, nil)
	s.terms.EXPECT().ListByProject(ctx, s.projectID).Return([]domain.SearchTerm{}, nil)

	_, err := s.newService(0).Start(ctx, s.ownerID, s.projectID)

	s.ErrorIs(err, domain.ErrNoSearchTerms)
}

func (s *ScrapeServiceTestSuite) TestStart_NotDraft() {
	ctx := context.Background()

	for _, status := range []domain.ProjectStatus{domain.ProjectScraping, domain.ProjectCompleted, domain.ProjectFailed} {
		s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: status}, nil)
		s.terms.EXPECT().ListByProject(ctx, s.projectID).Return([]domain.SearchTerm{s.term("x")}, nil)

		_, err := s.newService(0).Start(ctx, s.ownerID, s.projectID)

		s.ErrorIs(err, domain.ErrInvalidState, "status %s", status)
	}
}

func (s *ScrapeServiceTestSuite) TestStart_LostClaim() {
	ctx := context.Background()

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: domain.ProjectDraft}, nil)
	s.terms.EXPECT().ListByProject(ctx, s.projectID).Return([]domain.SearchTerm{s.term("x")}, nil)
	s.projects.EXPECT().ClaimForScrape(ctx, s.projectID, s.ownerID, gomock.Any()).Return(domain.ErrInvalidState)

	h, err := s.newService(0).Start(ctx, s.ownerID, s.projectID)

	s.ErrorIs(err, domain.ErrInvalidState)
	s.Nil(h)
}

func (s *ScrapeServiceTestSuite) TestStart_AfterShutdown() {
	ctx := context.Background()

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	s.Require().NoError(s.runner.Shutdown(shutdownCtx))

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: domain.ProjectDraft}, nil)
	s.terms.EXPECT().ListByProject(ctx, s.projectID).Return([]domain.SearchTerm{s.term("x")}, nil)
	gomock.InOrder(
		s.projects.EXPECT().ClaimForScrape(ctx, s.projectID, s.ownerID, gomock.Any()).Return(nil),
		s.projects.EXPECT().ResetToDraft(gomock.Any(), s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID}, nil),
	)

	h, err := s.newService(0).Start(ctx, s.ownerID, s.projectID)

	s.ErrorIs(err, jobs.ErrShutdown)
	s.Nil(h)
}

func (s *ScrapeServiceTestSuite) TestStart_ProjectNotFound() {
	ctx := context.Background()

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(nil, domain.ErrNotFound)

	_, err := s.newService(0).Start(ctx, s.ownerID, s.projectID)

	s.ErrorIs(err, domain.ErrNotFound)
}

func TestTermErrorMessage(t *testing.T) {
	long := strings.Repeat("x", 250)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"short", errors.New("quota exceeded"), "Error: quota exceeded"},
		{"exactly limit", errors.New(strings.Repeat("y", 200)), "Error: " + strings.Repeat("y", 200)},
		{"truncated", errors.New(long), "Error: " + strings.Repeat("x", 200) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := termErrorMessage(tt.err); got != tt.want {
				t.Errorf("termErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
