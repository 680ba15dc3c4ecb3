package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lead_scraper/internal/domain"
	"lead_scraper/internal/jobs"
)

// respondError maps service errors onto status codes. Anything unrecognised
// is logged and reported as a bare 500.
func (s *Server) respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, domain.ErrNoSearchTerms):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No search terms found"})
	case errors.Is(err, domain.ErrAlreadyProcessed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Leads already processed for this project"})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "Project is not in a valid state for this operation"})
	case errors.Is(err, domain.ErrJobRunning):
		c.JSON(http.StatusConflict, gin.H{"error": "A job for this resource is already running"})
	case errors.Is(err, jobs.ErrShutdown):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "server is shutting down"})
	default:
		s.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
