package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"lead_scraper/internal/domain"
	"lead_scraper/internal/jobs"
)

type ProjectStore interface {
	Create(ctx context.Context, project *domain.Project) error
	Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ClaimForScrape(ctx context.Context, id, ownerID, runID uuid.UUID) error
	CompleteScrape(ctx context.Context, id, runID uuid.UUID, staged int) error
	FailScrape(ctx context.Context, id, runID uuid.UUID, staged int) error
	ResetToDraft(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)
	FinalizeProcessing(ctx context.Context, id uuid.UUID, duplicates int) error
}

type SearchTermStore interface {
	CreateBatch(ctx context.Context, projectID uuid.UUID, terms []string) ([]domain.SearchTerm, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.SearchTerm, error)
	MarkScraping(ctx context.Context, runID, termID uuid.UUID, message string) error
	MarkCompleted(ctx context.Context, runID, termID uuid.UUID, leadsCount int, message string) error
	MarkFailed(ctx context.Context, runID, termID uuid.UUID, message string) error
	FailInFlight(ctx context.Context, runID, projectID uuid.UUID, message string) (int64, error)
	ResetAll(ctx context.Context, projectID uuid.UUID) error
}

type StagedLeadStore interface {
	Insert(ctx context.Context, runID, projectID, termID uuid.UUID, place domain.Place) error
	ListUnprocessed(ctx context.Context, projectID uuid.UUID) ([]domain.StagedLead, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}

type UniqueLeadStore interface {
	Resolve(ctx context.Context, place domain.Place) (domain.Resolution, error)
	ListMissingEmail(ctx context.Context, limit int) ([]domain.UniqueLead, error)
	SetEmail(ctx context.Context, id uuid.UUID, email string) (bool, error)
	MarkEmailChecked(ctx context.Context, id uuid.UUID) error
	EmailStats(ctx context.Context) (domain.EmailStats, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, search string) ([]domain.OwnedLead, error)
}

type MembershipStore interface {
	Link(ctx context.Context, projectID, uniqueLeadID uuid.UUID, termID *uuid.UUID) error
}

type LeadStore interface {
	Insert(ctx context.Context, lead *domain.Lead) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Lead, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.Place, error)
}

type EmailFinder interface {
	Find(ctx context.Context, website, businessName string) *domain.EmailResult
	Suggest(website string) []string
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

type Locker interface {
	TryAcquire(ctx context.Context, key string) (release func(), err error)
}

type JobRunner interface {
	Submit(name string, fn func(ctx context.Context) error) *jobs.Handle
}
