package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScrapeStats holds statistics about one scrape run.
type ScrapeStats struct {
	ProjectID   uuid.UUID
	RunID       uuid.UUID
	TermsTotal  int
	TermsFailed int
	Staged      int
	TimedOut    bool
	Duration    time.Duration
}

// ProcessStats holds statistics about one lead processing run.
type ProcessStats struct {
	ProjectID  uuid.UUID
	Pending    int
	Linked     int
	Duplicates int
	Created    int
	Errors     int
	Duration   time.Duration
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type EmailSource string

const (
	EmailSourceScraped EmailSource = "scraped"
	EmailSourceAPI     EmailSource = "api"
)

// EmailResult is a discovered contact address.
type EmailResult struct {
	Email      string      `json:"email"`
	Confidence Confidence  `json:"confidence"`
	Source     EmailSource `json:"source"`
	FoundAt    time.Time   `json:"found_at"`
}

// EmailLeadResult reports one enriched lead from a find-emails batch.
type EmailLeadResult struct {
	LeadID       uuid.UUID   `json:"lead_id"`
	BusinessName string      `json:"business_name"`
	Email        string      `json:"email"`
	Confidence   Confidence  `json:"confidence"`
	Source       EmailSource `json:"source"`
}

// EmailMiss is a lead the batch found nothing for, with role addresses worth
// trying by hand.
type EmailMiss struct {
	LeadID       uuid.UUID `json:"lead_id"`
	BusinessName string    `json:"business_name"`
	Website      string    `json:"website"`
	Suggestions  []string  `json:"suggestions"`
}

// EmailBatchStats summarizes a find-emails batch.
type EmailBatchStats struct {
	Processed int               `json:"processed"`
	Found     int               `json:"found"`
	Results   []EmailLeadResult `json:"results"`
	Misses    []EmailMiss       `json:"misses"`
}
