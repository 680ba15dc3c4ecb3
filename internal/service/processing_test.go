package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
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

type ProcessingServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	projects    *mocks.MockProjectStore
	staged      *mocks.MockStagedLeadStore
	uniqueLeads *mocks.MockUniqueLeadStore
	membership  *mocks.MockMembershipStore
	leads       *mocks.MockLeadStore
	txManager   *mocks.MockTransactionManager
	locker      *mocks.MockLocker
	publisher   *mocks.MockPublisher
	runner      *jobs.Runner

	service *ProcessingService

	ownerID   uuid.UUID
	projectID uuid.UUID
}

func (s *ProcessingServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.projects = mocks.NewMockProjectStore(s.ctrl)
	s.staged = mocks.NewMockStagedLeadStore(s.ctrl)
	s.uniqueLeads = mocks.NewMockUniqueLeadStore(s.ctrl)
	s.membership = mocks.NewMockMembershipStore(s.ctrl)
	s.leads = mocks.NewMockLeadStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.locker = mocks.NewMockLocker(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.runner = jobs.NewRunner(logger)

	s.service = NewProcessingService(
		s.projects,
		s.staged,
		s.uniqueLeads,
		s.membership,
		s.leads,
		s.txManager,
		s.locker,
		s.runner,
		s.publisher,
		logger,
		config.ProcessingConfig{JobTimeout: time.Minute},
	)

	s.ownerID = uuid.New()
	s.projectID = uuid.New()
}

func (s *ProcessingServiceTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.NoError(s.runner.Shutdown(ctx))
	s.ctrl.Finish()
}

func TestProcessingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessingServiceTestSuite))
}

func (s *ProcessingServiceTestSuite) expectTransactions(n int) {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Times(n)
}

func (s *ProcessingServiceTestSuite) stagedLead(name string) domain.StagedLead {
	return domain.StagedLead{
		ID:           uuid.New(),
		ProjectID:    s.projectID,
		SearchTermID: uuid.New(),
		BusinessName: name,
		Address:      testutil.Ptr("1 Main St"),
		Website:      testutil.Ptr("https://example.com"),
	}
}

func (s *ProcessingServiceTestSuite) TestProcess_CountsDuplicatesAndErrors() {
	ctx := context.Background()

	fresh := s.stagedLead("Acme Plumbing")
	dup := s.stagedLead("Bolt Electric")
	broken := s.stagedLead("Cursed Cafe")
	freshID, dupID := uuid.New(), uuid.New()

	s.staged.EXPECT().ListUnprocessed(ctx, s.projectID).Return([]domain.StagedLead{fresh, dup, broken}, nil)
	s.expectTransactions(3)

	s.uniqueLeads.EXPECT().Resolve(gomock.Any(), fresh.Place()).Return(domain.Resolution{ID: freshID, Created: true, TimesFound: 1}, nil)
	s.membership.EXPECT().Link(gomock.Any(), s.projectID, freshID, &fresh.SearchTermID).Return(nil)
	s.leads.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, lead *domain.Lead) error {
			s.Equal(freshID, lead.UniqueLeadID)
			s.Equal("Acme Plumbing", lead.BusinessName)
			return nil
		},
	)
	s.staged.EXPECT().MarkProcessed(gomock.Any(), fresh.ID).Return(nil)

	s.uniqueLeads.EXPECT().Resolve(gomock.Any(), dup.Place()).Return(domain.Resolution{ID: dupID, TimesFound: 4}, nil)
	s.membership.EXPECT().Link(gomock.Any(), s.projectID, dupID, gomock.Any()).Return(domain.ErrAlreadyLinked)
	s.staged.EXPECT().MarkProcessed(gomock.Any(), dup.ID).Return(nil)

	s.uniqueLeads.EXPECT().Resolve(gomock.Any(), broken.Place()).Return(domain.Resolution{}, errors.New("deadlock detected"))

	s.projects.EXPECT().FinalizeProcessing(ctx, s.projectID, 1).Return(nil)

	var published []domain.EventType
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			published = append(published, event.Type)
			return nil
		},
	).Times(2)

	stats, err := s.service.Process(ctx, s.projectID)

	s.Require().NoError(err)
	s.Equal(3, stats.Pending)
	s.Equal(1, stats.Linked)
	s.Equal(1, stats.Duplicates)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Errors)
	s.Equal([]domain.EventType{domain.EventLeadCreated, domain.EventProjectProcessed}, published)
}

func (s *ProcessingServiceTestSuite) TestProcess_ExistingLeadLinkedToNewProject() {
	ctx := context.Background()
	lead := s.stagedLead("Acme Plumbing")
	leadID := uuid.New()

	s.staged.EXPECT().ListUnprocessed(ctx, s.projectID).Return([]domain.StagedLead{lead}, nil)
	s.expectTransactions(1)
	s.uniqueLeads.EXPECT().Resolve(gomock.Any(), lead.Place()).Return(domain.Resolution{ID: leadID, TimesFound: 2}, nil)
	s.membership.EXPECT().Link(gomock.Any(), s.projectID, leadID, gomock.Any()).Return(nil)
	s.leads.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	s.staged.EXPECT().MarkProcessed(gomock.Any(), lead.ID).Return(nil)
	s.projects.EXPECT().FinalizeProcessing(ctx, s.projectID, 0).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Process(ctx, s.projectID)

	s.Require().NoError(err)
	s.Equal(1, stats.Linked)
	s.Equal(0, stats.Created)
	s.Equal(0, stats.Duplicates)
}

func (s *ProcessingServiceTestSuite) TestProcess_FinalizeError() {
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	s.staged.EXPECT().ListUnprocessed(ctx, s.projectID).Return([]domain.StagedLead{}, nil)
	s.projects.EXPECT().FinalizeProcessing(ctx, s.projectID, 0).Return(dbErr)

	_, err := s.service.Process(ctx, s.projectID)

	s.ErrorIs(err, dbErr)
}

func (s *ProcessingServiceTestSuite) TestStart_AlreadyProcessed() {
	ctx := context.Background()

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{
		ID:             s.projectID,
		Status:         domain.ProjectCompleted,
		LeadsProcessed: true,
	}, nil)

	h, err := s.service.Start(ctx, s.ownerID, s.projectID)

	s.ErrorIs(err, domain.ErrAlreadyProcessed)
	s.Nil(h)
}

func (s *ProcessingServiceTestSuite) TestStart_StillScraping() {
	ctx := context.Background()

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: domain.ProjectScraping}, nil)

	_, err := s.service.Start(ctx, s.ownerID, s.projectID)

	s.ErrorIs(err, domain.ErrInvalidState)
}

func (s *ProcessingServiceTestSuite) TestStart_JobAlreadyRunning() {
	ctx := context.Background()

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: domain.ProjectCompleted}, nil)
	s.locker.EXPECT().TryAcquire(ctx, "process-leads:"+s.projectID.String()).Return(nil, domain.ErrJobRunning)

	_, err := s.service.Start(ctx, s.ownerID, s.projectID)

	s.ErrorIs(err, domain.ErrJobRunning)
}

func (s *ProcessingServiceTestSuite) TestStart_ReleasesLockWhenDone() {
	ctx := context.Background()
	var released atomic.Int32

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: domain.ProjectCompleted}, nil)
	s.locker.EXPECT().TryAcquire(ctx, processLockKey(s.projectID)).Return(func() { released.Add(1) }, nil)
	s.staged.EXPECT().ListUnprocessed(gomock.Any(), s.projectID).Return([]domain.StagedLead{}, nil)
	s.projects.EXPECT().FinalizeProcessing(gomock.Any(), s.projectID, 0).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	h, err := s.service.Start(ctx, s.ownerID, s.projectID)
	s.Require().NoError(err)

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		s.FailNow("processing job did not finish")
	}
	s.NoError(h.Err())
	s.Equal(int32(1), released.Load())
}

func (s *ProcessingServiceTestSuite) TestStart_AfterShutdown() {
	ctx := context.Background()
	var released atomic.Int32

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	s.Require().NoError(s.runner.Shutdown(shutdownCtx))

	s.projects.EXPECT().Get(ctx, s.projectID, s.ownerID).Return(&domain.Project{ID: s.projectID, Status: domain.ProjectCompleted}, nil)
	s.locker.EXPECT().TryAcquire(ctx, processLockKey(s.projectID)).Return(func() { released.Add(1) }, nil)

	_, err := s.service.Start(ctx, s.ownerID, s.projectID)

	s.ErrorIs(err, jobs.ErrShutdown)
	s.Equal(int32(1), released.Load())
}
