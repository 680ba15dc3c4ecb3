package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventLeadCreated      EventType = "lead.created"
	EventLeadEmailFound   EventType = "lead.email_found"
	EventProjectScraped   EventType = "project.scraped"
	EventProjectProcessed EventType = "project.processed"
)

// Event is a notification about lead pipeline progress for downstream consumers.
type Event struct {
	Type      EventType      `json:"type"`
	ProjectID *uuid.UUID     `json:"project_id,omitempty"`
	LeadID    *uuid.UUID     `json:"lead_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
