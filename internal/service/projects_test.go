package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lead_scraper/internal/domain"
	"lead_scraper/internal/service/mocks"
	"lead_scraper/internal/testutil"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	projects    *mocks.MockProjectStore
	terms       *mocks.MockSearchTermStore
	leads       *mocks.MockLeadStore
	uniqueLeads *mocks.MockUniqueLeadStore
	txManager   *mocks.MockTransactionManager

	service *ProjectService
	ownerID uuid.UUID
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.projects = mocks.NewMockProjectStore(s.ctrl)
	s.terms = mocks.NewMockSearchTermStore(s.ctrl)
	s.leads = mocks.NewMockLeadStore(s.ctrl)
	s.uniqueLeads = mocks.NewMockUniqueLeadStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewProjectService(s.projects, s.terms, s.leads, s.uniqueLeads, s.txManager, logger)
	s.ownerID = uuid.New()
}

func (s *ProjectServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

func (s *ProjectServiceTestSuite) inTransaction() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *ProjectServiceTestSuite) TestCreate_Validation() {
	ctx := context.Background()

	tests := []struct {
		name  string
		pname string
		terms []string
	}{
		{"empty name", "", []string{"plumbers"}},
		{"blank name", "   ", []string{"plumbers"}},
		{"no terms", "Austin trades", nil},
		{"only blank terms", "Austin trades", []string{"", "  "}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Create(ctx, s.ownerID, tt.pname, tt.terms)

			var verr *domain.ValidationError
			s.Require().ErrorAs(err, &verr)
			s.Equal("Project name and at least one search term are required", verr.Message)
		})
	}
}

func (s *ProjectServiceTestSuite) TestCreate_TrimsAndStoresTerms() {
	ctx := context.Background()
	projectID := uuid.New()

	s.inTransaction()
	s.projects.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Project) error {
			s.Equal("Austin trades", p.Name)
			s.Equal(s.ownerID, p.OwnerID)
			p.ID = projectID
			p.Status = domain.ProjectDraft
			return nil
		},
	)
	s.terms.EXPECT().CreateBatch(gomock.Any(), projectID, []string{"plumbers", "electricians"}).Return([]domain.SearchTerm{
		{ID: uuid.New(), ProjectID: projectID, Term: "plumbers", Status: domain.TermPending},
		{ID: uuid.New(), ProjectID: projectID, Term: "electricians", Status: domain.TermPending},
	}, nil)

	detail, err := s.service.Create(ctx, s.ownerID, "  Austin trades ", []string{" plumbers", "", "electricians "})

	s.Require().NoError(err)
	s.Equal(projectID, detail.Project.ID)
	s.Equal(domain.ProjectDraft, detail.Project.Status)
	s.Len(detail.SearchTerms, 2)
}

func (s *ProjectServiceTestSuite) TestCreate_TermInsertFails() {
	ctx := context.Background()
	dbErr := errors.New("unique violation")

	s.inTransaction()
	s.projects.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.terms.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	detail, err := s.service.Create(ctx, s.ownerID, "p", []string{"t"})

	s.ErrorIs(err, dbErr)
	s.Nil(detail)
}

func (s *ProjectServiceTestSuite) TestReset_ProjectAndTermsTogether() {
	ctx := context.Background()
	projectID := uuid.New()

	s.inTransaction()
	gomock.InOrder(
		s.projects.EXPECT().ResetToDraft(gomock.Any(), projectID, s.ownerID).Return(&domain.Project{ID: projectID, Status: domain.ProjectDraft}, nil),
		s.terms.EXPECT().ResetAll(gomock.Any(), projectID).Return(nil),
	)

	project, err := s.service.Reset(ctx, s.ownerID, projectID)

	s.Require().NoError(err)
	s.Equal(domain.ProjectDraft, project.Status)
}

func (s *ProjectServiceTestSuite) TestReset_NotFound() {
	ctx := context.Background()
	projectID := uuid.New()

	s.inTransaction()
	s.projects.EXPECT().ResetToDraft(gomock.Any(), projectID, s.ownerID).Return(nil, domain.ErrNotFound)

	_, err := s.service.Reset(ctx, s.ownerID, projectID)

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ProjectServiceTestSuite) TestStatus() {
	ctx := context.Background()
	projectID := uuid.New()
	msg := "Scraped 4 leads - ready to process"

	s.projects.EXPECT().Get(ctx, projectID, s.ownerID).Return(&domain.Project{
		ID:             projectID,
		Status:         domain.ProjectCompleted,
		TempLeadsCount: 4,
	}, nil)
	s.terms.EXPECT().ListByProject(ctx, projectID).Return([]domain.SearchTerm{
		{Term: "plumbers", Status: domain.TermCompleted, LeadsCount: 4, ProgressMessage: testutil.Ptr(msg)},
	}, nil)

	report, err := s.service.Status(ctx, s.ownerID, projectID)

	s.Require().NoError(err)
	s.Equal(domain.ProjectCompleted, report.Status)
	s.Equal(4, report.TempLeadsCount)
	s.False(report.LeadsProcessed)
	s.Require().Len(report.SearchTerms, 1)
	s.Equal(msg, *report.SearchTerms[0].ProgressMessage)
}

func (s *ProjectServiceTestSuite) TestLeads_OtherOwnersProject() {
	ctx := context.Background()
	projectID := uuid.New()

	s.projects.EXPECT().Get(ctx, projectID, s.ownerID).Return(nil, domain.ErrNotFound)

	_, err := s.service.Leads(ctx, s.ownerID, projectID)

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ProjectServiceTestSuite) TestDelete() {
	ctx := context.Background()
	projectID := uuid.New()

	s.projects.EXPECT().Delete(ctx, projectID, s.ownerID).Return(nil)

	s.NoError(s.service.Delete(ctx, s.ownerID, projectID))
}

func (s *ProjectServiceTestSuite) TestAllLeads_PassesSearch() {
	ctx := context.Background()

	s.uniqueLeads.EXPECT().ListForOwner(ctx, s.ownerID, "acme").Return([]domain.OwnedLead{
		{UniqueLead: domain.UniqueLead{BusinessName: "Acme"}, TotalProjects: 2},
	}, nil)

	leads, err := s.service.AllLeads(ctx, s.ownerID, "acme")

	s.Require().NoError(err)
	s.Require().Len(leads, 1)
	s.Equal(2, leads[0].TotalProjects)
}
