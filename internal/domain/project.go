package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectScraping  ProjectStatus = "scraping"
	ProjectCompleted ProjectStatus = "completed"
	ProjectFailed    ProjectStatus = "failed"
)

type TermStatus string

const (
	TermPending   TermStatus = "pending"
	TermScraping  TermStatus = "scraping"
	TermCompleted TermStatus = "completed"
	TermFailed    TermStatus = "failed"
)

type Project struct {
	ID                uuid.UUID     `db:"id" json:"id"`
	Name              string        `db:"name" json:"name"`
	OwnerID           uuid.UUID     `db:"owner_id" json:"user_id"`
	Status            ProjectStatus `db:"status" json:"status"`
	TotalLeads        int           `db:"total_leads" json:"total_leads"`
	DuplicatesRemoved int           `db:"duplicates_removed" json:"duplicates_removed"`
	TempLeadsCount    int           `db:"temp_leads_count" json:"temp_leads_count"`
	LeadsProcessed    bool          `db:"leads_processed" json:"leads_processed"`
	ScrapeRunID       *uuid.UUID    `db:"scrape_run_id" json:"-"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at" json:"updated_at"`
}

type SearchTerm struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	ProjectID       uuid.UUID  `db:"project_id" json:"project_id"`
	Term            string     `db:"term" json:"term"`
	Status          TermStatus `db:"status" json:"status"`
	LeadsCount      int        `db:"leads_count" json:"leads_count"`
	ProgressMessage *string    `db:"progress_message" json:"progress_message"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// ProjectStatusReport is what the dashboard polls while a run is in progress.
type ProjectStatusReport struct {
	ProjectID         uuid.UUID     `json:"project_id"`
	Status            ProjectStatus `json:"status"`
	TotalLeads        int           `json:"total_leads"`
	DuplicatesRemoved int           `json:"duplicates_removed"`
	TempLeadsCount    int           `json:"temp_leads_count"`
	LeadsProcessed    bool          `json:"leads_processed"`
	SearchTerms       []SearchTerm  `json:"search_terms"`
}
