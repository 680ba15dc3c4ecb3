package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lead_scraper/internal/domain"
)

const uniqueLeadColumns = `
	ul.id, ul.business_name, ul.address, ul.phone, ul.website, ul.google_url,
	ul.rating, ul.review_count, ul.email, ul.times_found, ul.first_seen_at, ul.last_updated_at`

type UniqueLeadStore struct {
	db *sqlx.DB
}

func NewUniqueLeadStore(db *sqlx.DB) *UniqueLeadStore {
	return &UniqueLeadStore{db: db}
}

// Resolve maps a place onto its unique lead, creating one for a key seen for
// the first time. A repeat sighting bumps times_found and fills contact
// fields that were missing. The identity constraint makes concurrent first
// sightings collapse onto one row.
func (s *UniqueLeadStore) Resolve(ctx context.Context, place domain.Place) (domain.Resolution, error) {
	query := `
		INSERT INTO unique_leads (
			business_name, address, name_key, address_key, phone,
			website, google_url, rating, review_count
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (name_key, address_key) DO UPDATE SET
			times_found = unique_leads.times_found + 1,
			last_updated_at = now(),
			phone = COALESCE(unique_leads.phone, EXCLUDED.phone),
			website = COALESCE(unique_leads.website, EXCLUDED.website),
			google_url = COALESCE(unique_leads.google_url, EXCLUDED.google_url),
			rating = COALESCE(EXCLUDED.rating, unique_leads.rating),
			review_count = COALESCE(EXCLUDED.review_count, unique_leads.review_count)
		RETURNING id, (xmax = 0) AS created, times_found`

	var address string
	if place.Address != nil {
		address = *place.Address
	}

	var res domain.Resolution
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &res, query,
		place.BusinessName, place.Address,
		domain.NormalizeKey(place.BusinessName), domain.NormalizeKey(address),
		place.Phone, place.Website, place.GoogleURL, place.Rating, place.ReviewCount,
	)
	return res, err
}

func (s *UniqueLeadStore) Get(ctx context.Context, id uuid.UUID) (*domain.UniqueLead, error) {
	query := `SELECT ` + uniqueLeadColumns + ` FROM unique_leads ul WHERE ul.id = $1`

	var lead domain.UniqueLead
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &lead, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// ListMissingEmail returns leads that have a website but no email yet.
// Never-checked leads come first, then the ones checked longest ago.
func (s *UniqueLeadStore) ListMissingEmail(ctx context.Context, limit int) ([]domain.UniqueLead, error) {
	query := `
		SELECT ` + uniqueLeadColumns + `
		FROM unique_leads ul
		WHERE ul.email IS NULL AND ul.website IS NOT NULL AND ul.website <> ''
		ORDER BY ul.email_checked_at NULLS FIRST, ul.first_seen_at, ul.id
		LIMIT $1`

	leads := []domain.UniqueLead{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &leads, query, limit)
	return leads, err
}

// SetEmail stores an email unless one was recorded in the meantime. It
// reports whether the row changed.
func (s *UniqueLeadStore) SetEmail(ctx context.Context, id uuid.UUID, email string) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE unique_leads SET
			email = $2,
			last_updated_at = now()
		WHERE id = $1 AND email IS NULL`,
		id, email,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkEmailChecked records a lookup that found nothing.
func (s *UniqueLeadStore) MarkEmailChecked(ctx context.Context, id uuid.UUID) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE unique_leads SET email_checked_at = now() WHERE id = $1`, id)
	return err
}

func (s *UniqueLeadStore) EmailStats(ctx context.Context) (domain.EmailStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_leads,
			COUNT(*) FILTER (WHERE email IS NOT NULL) AS leads_with_email,
			COUNT(*) FILTER (WHERE website IS NOT NULL AND website <> '') AS leads_with_website,
			COUNT(*) FILTER (WHERE email IS NULL AND website IS NOT NULL AND website <> '') AS leads_without_email
		FROM unique_leads`

	var stats domain.EmailStats
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &stats, query)
	return stats, err
}

// ListForOwner returns every unique lead reachable from the owner's
// projects, with the project it was first found in. An optional search
// string filters on name, address or email.
func (s *UniqueLeadStore) ListForOwner(ctx context.Context, ownerID uuid.UUID, search string) ([]domain.OwnedLead, error) {
	query := `
		SELECT ` + uniqueLeadColumns + `,
			first.project_name AS source_project,
			first.found_at AS first_found_date,
			counts.total_projects
		FROM unique_leads ul
		JOIN LATERAL (
			SELECT p.name AS project_name, pl.found_at
			FROM project_leads pl
			JOIN projects p ON p.id = pl.project_id
			WHERE pl.unique_lead_id = ul.id AND p.owner_id = $1
			ORDER BY pl.found_at, pl.id
			LIMIT 1
		) first ON TRUE
		JOIN LATERAL (
			SELECT COUNT(*) AS total_projects
			FROM project_leads pl
			JOIN projects p ON p.id = pl.project_id
			WHERE pl.unique_lead_id = ul.id AND p.owner_id = $1
		) counts ON TRUE
		WHERE ($2 = '' OR ul.business_name ILIKE $3 OR ul.address ILIKE $3 OR ul.email ILIKE $3)
		ORDER BY first.found_at DESC, ul.id`

	search = strings.TrimSpace(search)
	pattern := "%" + escapeLike(search) + "%"

	leads := []domain.OwnedLead{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &leads, query, ownerID, search, pattern)
	return leads, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
