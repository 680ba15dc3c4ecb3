package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lead_scraper/internal/domain"
)

// MembershipStore tracks which unique leads belong to which project.
type MembershipStore struct {
	db *sqlx.DB
}

func NewMembershipStore(db *sqlx.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

func (s *MembershipStore) IsMember(ctx context.Context, projectID, uniqueLeadID uuid.UUID) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists, `
		SELECT EXISTS (
			SELECT 1 FROM project_leads WHERE project_id = $1 AND unique_lead_id = $2
		)`,
		projectID, uniqueLeadID,
	)
	return exists, err
}

// Link adds the lead to the project. A lead that is already a member yields
// domain.ErrAlreadyLinked and leaves the existing row untouched.
func (s *MembershipStore) Link(ctx context.Context, projectID, uniqueLeadID uuid.UUID, termID *uuid.UUID) error {
	query := `
		INSERT INTO project_leads (project_id, unique_lead_id, search_term_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (project_id, unique_lead_id) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query, projectID, uniqueLeadID, termID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrAlreadyLinked
	}
	return err
}
