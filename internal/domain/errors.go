package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrNoSearchTerms    = errors.New("project has no search terms")
	ErrAlreadyProcessed = errors.New("leads already processed for this project")
	ErrInvalidState     = errors.New("project is not in a valid state for this operation")
	ErrJobRunning       = errors.New("a job for this resource is already running")
	ErrAlreadyLinked    = errors.New("lead already linked to project")
	// ErrStaleRun is returned by fenced writes once the run that issued them
	// has been superseded by a reset or a timeout.
	ErrStaleRun = errors.New("scrape run is no longer current")
)

// ValidationError carries a user-facing message about rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
