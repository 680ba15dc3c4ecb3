package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lead_scraper/internal/domain"
)

const projectColumns = `
	id, name, owner_id, status, total_leads, duplicates_removed,
	temp_leads_count, leads_processed, scrape_run_id, created_at, updated_at`

type ProjectStore struct {
	db *sqlx.DB
}

func NewProjectStore(db *sqlx.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (name, owner_id, status)
		VALUES ($1, $2, 'draft')
		RETURNING ` + projectColumns

	return sqlx.GetContext(ctx, GetExecutor(ctx, s.db), project, query, project.Name, project.OwnerID)
}

func (s *ProjectStore) Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND owner_id = $2`

	var project domain.Project
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &project, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectStore) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 ORDER BY created_at DESC`

	projects := []domain.Project{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &projects, query, ownerID)
	return projects, err
}

// Delete removes a project. Search terms, staged leads, memberships and
// legacy leads go with it through ON DELETE CASCADE; unique leads stay.
func (s *ProjectStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM projects WHERE id = $1 AND owner_id = $2",
		id, ownerID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrNotFound)
}

// ClaimForScrape moves a draft project to scraping and stamps it with the
// run's fencing token. Only one caller can win the claim.
func (s *ProjectStore) ClaimForScrape(ctx context.Context, id, ownerID, runID uuid.UUID) error {
	query := `
		UPDATE projects SET
			status = 'scraping',
			scrape_run_id = $3,
			temp_leads_count = 0,
			leads_processed = FALSE,
			updated_at = now()
		WHERE id = $1 AND owner_id = $2 AND status = 'draft'`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, ownerID, runID)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrInvalidState)
}

func (s *ProjectStore) CompleteScrape(ctx context.Context, id, runID uuid.UUID, staged int) error {
	return s.finishScrape(ctx, id, runID, domain.ProjectCompleted, staged)
}

func (s *ProjectStore) FailScrape(ctx context.Context, id, runID uuid.UUID, staged int) error {
	return s.finishScrape(ctx, id, runID, domain.ProjectFailed, staged)
}

func (s *ProjectStore) finishScrape(ctx context.Context, id, runID uuid.UUID, status domain.ProjectStatus, staged int) error {
	query := `
		UPDATE projects SET
			status = $3,
			temp_leads_count = $4,
			leads_processed = FALSE,
			updated_at = now()
		WHERE id = $1 AND scrape_run_id = $2 AND status = 'scraping'`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, runID, status, staged)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrStaleRun)
}

// ResetToDraft forces a project back to draft and drops its fencing token so
// writes from a run still in flight become no-ops.
func (s *ProjectStore) ResetToDraft(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	query := `
		UPDATE projects SET
			status = 'draft',
			scrape_run_id = NULL,
			updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + projectColumns

	var project domain.Project
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &project, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FinalizeProcessing records the outcome of a processing run. total_leads is
// recounted from memberships so partial earlier runs are not lost.
func (s *ProjectStore) FinalizeProcessing(ctx context.Context, id uuid.UUID, duplicates int) error {
	query := `
		UPDATE projects SET
			total_leads = (SELECT COUNT(*) FROM project_leads WHERE project_id = $1),
			duplicates_removed = duplicates_removed + $2,
			leads_processed = TRUE,
			updated_at = now()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, duplicates)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrNotFound)
}

func requireAffected(res sql.Result, errNone error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errNone
	}
	return nil
}
