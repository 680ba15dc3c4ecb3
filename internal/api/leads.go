package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"lead_scraper/internal/domain"
)

type findEmailsRequest struct {
	Limit int `json:"limit"`
}

func (s *Server) allLeads(c *gin.Context) {
	leads, err := s.projects.AllLeads(c.Request.Context(), ownerID(c), c.Query("q"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// findEmails runs an enrichment batch synchronously. The body is optional.
func (s *Server) findEmails(c *gin.Context) {
	var req findEmailsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stats, err := s.emails.FindEmails(c.Request.Context(), req.Limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, batchResponse(stats))
}

func (s *Server) cronFindEmails(c *gin.Context) {
	stats, err := s.emails.RunScheduled(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, batchResponse(stats))
}

func (s *Server) emailStats(c *gin.Context) {
	stats, err := s.emails.Stats(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_leads":         stats.TotalLeads,
		"leads_with_email":    stats.LeadsWithEmail,
		"leads_with_website":  stats.LeadsWithWebsite,
		"leads_without_email": stats.LeadsWithoutEmail,
		"ready_to_process":    stats.LeadsWithoutEmail,
	})
}

func batchResponse(stats *domain.EmailBatchStats) gin.H {
	message := fmt.Sprintf("Processed %d leads, found %d emails", stats.Processed, stats.Found)
	if stats.Processed == 0 {
		message = "No leads without emails found"
	}
	return gin.H{
		"success":   true,
		"processed": stats.Processed,
		"found":     stats.Found,
		"results":   stats.Results,
		"misses":    stats.Misses,
		"message":   message,
	}
}
