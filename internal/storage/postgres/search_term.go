package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lead_scraper/internal/domain"
)

const searchTermColumns = `id, project_id, term, status, leads_count, progress_message, created_at, updated_at`

type SearchTermStore struct {
	db *sqlx.DB
}

func NewSearchTermStore(db *sqlx.DB) *SearchTermStore {
	return &SearchTermStore{db: db}
}

func (s *SearchTermStore) CreateBatch(ctx context.Context, projectID uuid.UUID, terms []string) ([]domain.SearchTerm, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO search_terms (project_id, term) VALUES ")
	valueArgs := make([]interface{}, 0, len(terms)+1)
	valueArgs = append(valueArgs, projectID)

	for i, term := range terms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, term)
	}
	sb.WriteString(" RETURNING " + searchTermColumns)

	var created []domain.SearchTerm
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &created, sb.String(), valueArgs...)
	return created, err
}

func (s *SearchTermStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.SearchTerm, error) {
	query := `SELECT ` + searchTermColumns + ` FROM search_terms WHERE project_id = $1 ORDER BY created_at, id`

	terms := []domain.SearchTerm{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &terms, query, projectID)
	return terms, err
}

func (s *SearchTermStore) MarkScraping(ctx context.Context, runID, termID uuid.UUID, message string) error {
	return s.updateFenced(ctx, runID, termID, domain.TermScraping, nil, message)
}

func (s *SearchTermStore) MarkCompleted(ctx context.Context, runID, termID uuid.UUID, leadsCount int, message string) error {
	return s.updateFenced(ctx, runID, termID, domain.TermCompleted, &leadsCount, message)
}

func (s *SearchTermStore) MarkFailed(ctx context.Context, runID, termID uuid.UUID, message string) error {
	return s.updateFenced(ctx, runID, termID, domain.TermFailed, nil, message)
}

// updateFenced only writes while the owning project is still scraping under
// runID.
func (s *SearchTermStore) updateFenced(ctx context.Context, runID, termID uuid.UUID, status domain.TermStatus, leadsCount *int, message string) error {
	query := `
		UPDATE search_terms st SET
			status = $3,
			leads_count = COALESCE($4, st.leads_count),
			progress_message = $5,
			updated_at = now()
		FROM projects p
		WHERE st.id = $1
			AND p.id = st.project_id
			AND p.scrape_run_id = $2
			AND p.status = 'scraping'`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, termID, runID, status, leadsCount, message)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrStaleRun)
}

// FailInFlight marks every term of the run still scraping as failed. It is
// fenced on the run only, so it still applies after the project itself has
// been failed.
func (s *SearchTermStore) FailInFlight(ctx context.Context, runID, projectID uuid.UUID, message string) (int64, error) {
	query := `
		UPDATE search_terms st SET
			status = 'failed',
			progress_message = $3,
			updated_at = now()
		FROM projects p
		WHERE st.project_id = $1
			AND st.status = 'scraping'
			AND p.id = st.project_id
			AND p.scrape_run_id = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, projectID, runID, message)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SearchTermStore) ResetAll(ctx context.Context, projectID uuid.UUID) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE search_terms SET
			status = 'pending',
			progress_message = NULL,
			updated_at = now()
		WHERE project_id = $1`,
		projectID,
	)
	return err
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
