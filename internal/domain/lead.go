package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Place is a raw business record as returned by a search provider.
type Place struct {
	BusinessName string
	Address      *string
	Phone        *string
	Website      *string
	GoogleURL    *string
	Rating       *float64
	ReviewCount  *int
}

// StagedLead is a raw scrape result waiting for identity resolution.
type StagedLead struct {
	ID           uuid.UUID `db:"id"`
	ProjectID    uuid.UUID `db:"project_id"`
	SearchTermID uuid.UUID `db:"search_term_id"`
	BusinessName string    `db:"business_name"`
	Address      *string   `db:"address"`
	Phone        *string   `db:"phone"`
	Website      *string   `db:"website"`
	GoogleURL    *string   `db:"google_url"`
	Rating       *float64  `db:"rating"`
	ReviewCount  *int      `db:"review_count"`
	Processed    bool      `db:"processed"`
	CreatedAt    time.Time `db:"created_at"`
}

func (s StagedLead) Place() Place {
	return Place{
		BusinessName: s.BusinessName,
		Address:      s.Address,
		Phone:        s.Phone,
		Website:      s.Website,
		GoogleURL:    s.GoogleURL,
		Rating:       s.Rating,
		ReviewCount:  s.ReviewCount,
	}
}

// UniqueLead is the canonical business identity shared by all projects.
type UniqueLead struct {
	ID            uuid.UUID `db:"id" json:"id"`
	BusinessName  string    `db:"business_name" json:"business_name"`
	Address       *string   `db:"address" json:"address"`
	Phone         *string   `db:"phone" json:"phone"`
	Website       *string   `db:"website" json:"website"`
	GoogleURL     *string   `db:"google_url" json:"google_url"`
	Rating        *float64  `db:"rating" json:"rating"`
	ReviewCount   *int      `db:"review_count" json:"review_count"`
	Email         *string   `db:"email" json:"email"`
	TimesFound    int       `db:"times_found" json:"times_found"`
	FirstSeenAt   time.Time `db:"first_seen_at" json:"first_seen_at"`
	LastUpdatedAt time.Time `db:"last_updated_at" json:"last_updated_at"`
}

// OwnedLead is a unique lead as seen from one owner's projects.
type OwnedLead struct {
	UniqueLead
	SourceProject  string    `db:"source_project" json:"source_project"`
	FirstFoundDate time.Time `db:"first_found_date" json:"first_found_date"`
	TotalProjects  int       `db:"total_projects" json:"total_projects"`
}

// Resolution is the outcome of mapping a place onto a unique lead.
type Resolution struct {
	ID         uuid.UUID `db:"id"`
	Created    bool      `db:"created"`
	TimesFound int       `db:"times_found"`
}

// Lead is the per-project denormalized copy kept for older dashboard views.
type Lead struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ProjectID    uuid.UUID  `db:"project_id" json:"project_id"`
	SearchTermID *uuid.UUID `db:"search_term_id" json:"search_term_id"`
	UniqueLeadID uuid.UUID  `db:"unique_lead_id" json:"unique_lead_id"`
	BusinessName string     `db:"business_name" json:"business_name"`
	Address      *string    `db:"address" json:"address"`
	Phone        *string    `db:"phone" json:"phone"`
	Website      *string    `db:"website" json:"website"`
	GoogleURL    *string    `db:"google_url" json:"google_url"`
	Email        *string    `db:"email" json:"email"`
	Rating       *float64   `db:"rating" json:"rating"`
	ReviewCount  *int       `db:"review_count" json:"review_count"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// EmailStats summarizes email coverage of the unique lead pool.
type EmailStats struct {
	TotalLeads        int `db:"total_leads" json:"total_leads"`
	LeadsWithEmail    int `db:"leads_with_email" json:"leads_with_email"`
	LeadsWithWebsite  int `db:"leads_with_website" json:"leads_with_website"`
	LeadsWithoutEmail int `db:"leads_without_email" json:"leads_without_email"`
}

// NormalizeKey folds a business name or address into its identity form:
// accents stripped, case folded and whitespace collapsed.
func NormalizeKey(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFKC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
