package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lead_scraper/internal/domain"
)

type StagedLeadStore struct {
	db *sqlx.DB
}

func NewStagedLeadStore(db *sqlx.DB) *StagedLeadStore {
	return &StagedLeadStore{db: db}
}

// Insert stages a raw place for later processing. The row is only written
// while the project is still scraping under runID.
func (s *StagedLeadStore) Insert(ctx context.Context, runID, projectID, termID uuid.UUID, place domain.Place) error {
	query := `
		INSERT INTO staged_leads (
			project_id, search_term_id, business_name, address, phone,
			website, google_url, rating, review_count
		)
		SELECT p.id, $3::uuid, $4::text, $5::text, $6::text,
			$7::text, $8::text, $9::double precision, $10::integer
		FROM projects p
		WHERE p.id = $1 AND p.scrape_run_id = $2 AND p.status = 'scraping'`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		projectID, runID, termID,
		place.BusinessName, place.Address, place.Phone,
		place.Website, place.GoogleURL, place.Rating, place.ReviewCount,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrStaleRun)
}

func (s *StagedLeadStore) ListUnprocessed(ctx context.Context, projectID uuid.UUID) ([]domain.StagedLead, error) {
	query := `
		SELECT id, project_id, search_term_id, business_name, address, phone,
			website, google_url, rating, review_count, processed, created_at
		FROM staged_leads
		WHERE project_id = $1 AND NOT processed
		ORDER BY created_at, id`

	leads := []domain.StagedLead{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &leads, query, projectID)
	return leads, err
}

func (s *StagedLeadStore) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE staged_leads SET processed = TRUE WHERE id = $1",
		id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrNotFound)
}
