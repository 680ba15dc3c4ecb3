package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"lead_scraper/internal/domain"
)

type ProjectService struct {
	projects    ProjectStore
	terms       SearchTermStore
	leads       LeadStore
	uniqueLeads UniqueLeadStore
	txManager   TransactionManager
	logger      *slog.Logger
}

func NewProjectService(
	projects ProjectStore,
	terms SearchTermStore,
	leads LeadStore,
	uniqueLeads UniqueLeadStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *ProjectService {
	return &ProjectService{
		projects:    projects,
		terms:       terms,
		leads:       leads,
		uniqueLeads: uniqueLeads,
		txManager:   txManager,
		logger:      logger.With("component", "projects"),
	}
}

// ProjectDetail is a project together with its search terms.
type ProjectDetail struct {
	Project     *domain.Project     `json:"project"`
	SearchTerms []domain.SearchTerm `json:"search_terms"`
}

func (s *ProjectService) Create(ctx context.Context, ownerID uuid.UUID, name string, searchTerms []string) (*ProjectDetail, error) {
	name = strings.TrimSpace(name)

	terms := make([]string, 0, len(searchTerms))
	for _, t := range searchTerms {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}

	if name == "" || len(terms) == 0 {
		return nil, domain.NewValidationError("Project name and at least one search term are required")
	}

	detail := &ProjectDetail{Project: &domain.Project{Name: name, OwnerID: ownerID}}
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.projects.Create(txCtx, detail.Project); err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		created, err := s.terms.CreateBatch(txCtx, detail.Project.ID, terms)
		if err != nil {
			return fmt.Errorf("create search terms: %w", err)
		}
		detail.SearchTerms = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", detail.Project.ID,
		"owner_id", ownerID,
		"terms", len(terms),
	)
	return detail, nil
}

func (s *ProjectService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, ownerID, projectID uuid.UUID) (*ProjectDetail, error) {
	project, err := s.projects.Get(ctx, projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	terms, err := s.terms.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list search terms: %w", err)
	}

	return &ProjectDetail{Project: project, SearchTerms: terms}, nil
}

// Leads returns the per-project lead rows, with emails found later on the
// shared lead filled in.
func (s *ProjectService) Leads(ctx context.Context, ownerID, projectID uuid.UUID) ([]domain.Lead, error) {
	if _, err := s.projects.Get(ctx, projectID, ownerID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	leads, err := s.leads.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

// AllLeads returns every unique lead found by any of the owner's projects.
func (s *ProjectService) AllLeads(ctx context.Context, ownerID uuid.UUID, search string) ([]domain.OwnedLead, error) {
	leads, err := s.uniqueLeads.ListForOwner(ctx, ownerID, search)
	if err != nil {
		return nil, fmt.Errorf("list owner leads: %w", err)
	}
	return leads, nil
}

func (s *ProjectService) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	if err := s.projects.Delete(ctx, projectID, ownerID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.logger.Info("project deleted", "project_id", projectID)
	return nil
}

func (s *ProjectService) Status(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.ProjectStatusReport, error) {
	detail, err := s.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	p := detail.Project
	return &domain.ProjectStatusReport{
		ProjectID:         p.ID,
		Status:            p.Status,
		TotalLeads:        p.TotalLeads,
		DuplicatesRemoved: p.DuplicatesRemoved,
		TempLeadsCount:    p.TempLeadsCount,
		LeadsProcessed:    p.LeadsProcessed,
		SearchTerms:       detail.SearchTerms,
	}, nil
}

// Reset forces a project back to draft and every term back to pending. A
// scrape still running for the project loses its fence and stops writing.
func (s *ProjectService) Reset(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
	var project *domain.Project

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		project, err = s.projects.ResetToDraft(txCtx, projectID, ownerID)
		if err != nil {
			return fmt.Errorf("reset project: %w", err)
		}

		if err := s.terms.ResetAll(txCtx, projectID); err != nil {
			return fmt.Errorf("reset search terms: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project reset", "project_id", projectID)
	return project, nil
}
