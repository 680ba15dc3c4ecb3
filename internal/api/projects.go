package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createProjectRequest struct {
	Name        string   `json:"name"`
	SearchTerms []string `json:"searchTerms"`
}

func (s *Server) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	detail, err := s.projects.Create(c.Request.Context(), ownerID(c), req.Name, req.SearchTerms)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"project":      detail.Project,
		"search_terms": detail.SearchTerms,
	})
}

func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.projects.List(c.Request.Context(), ownerID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) getProject(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	detail, err := s.projects.Get(c.Request.Context(), ownerID(c), projectID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) deleteProject(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	if err := s.projects.Delete(c.Request.Context(), ownerID(c), projectID); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Project deleted successfully",
		"projectId": projectID,
	})
}

func (s *Server) projectLeads(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	leads, err := s.projects.Leads(c.Request.Context(), ownerID(c), projectID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

func (s *Server) projectStatus(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	report, err := s.projects.Status(c.Request.Context(), ownerID(c), projectID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// startScrape answers as soon as the run is claimed; progress is polled
// through the status endpoint.
func (s *Server) startScrape(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	if _, err := s.scraper.Start(c.Request.Context(), ownerID(c), projectID); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Scraping started",
		"projectId": projectID,
	})
}

func (s *Server) resetProject(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	project, err := s.projects.Reset(c.Request.Context(), ownerID(c), projectID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Project reset successfully",
		"project": project,
	})
}

func (s *Server) processLeads(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	if _, err := s.processor.Start(c.Request.Context(), ownerID(c), projectID); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Processing started",
		"projectId": projectID,
	})
}

// projectParam parses the :id path segment. A malformed id cannot name an
// existing project, so it is answered like a missing one.
func projectParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return uuid.Nil, false
	}
	return id, true
}
