package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lead_scraper/internal/domain"
)

type LeadStore struct {
	db *sqlx.DB
}

func NewLeadStore(db *sqlx.DB) *LeadStore {
	return &LeadStore{db: db}
}

func (s *LeadStore) Insert(ctx context.Context, lead *domain.Lead) error {
	query := `
		INSERT INTO leads (
			project_id, search_term_id, unique_lead_id, business_name, address,
			phone, website, google_url, email, rating, review_count
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING id, created_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		lead.ProjectID, lead.SearchTermID, lead.UniqueLeadID, lead.BusinessName, lead.Address,
		lead.Phone, lead.Website, lead.GoogleURL, lead.Email, lead.Rating, lead.ReviewCount,
	).Scan(&lead.ID, &lead.CreatedAt)
}

func (s *LeadStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Lead, error) {
	query := `
		SELECT l.id, l.project_id, l.search_term_id, l.unique_lead_id, l.business_name,
			l.address, l.phone, l.website, l.google_url,
			COALESCE(l.email, ul.email) AS email,
			l.rating, l.review_count, l.created_at
		FROM leads l
		JOIN unique_leads ul ON ul.id = l.unique_lead_id
		WHERE l.project_id = $1
		ORDER BY l.created_at, l.id`

	leads := []domain.Lead{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &leads, query, projectID)
	return leads, err
}
