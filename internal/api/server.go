// Package api exposes the lead pipeline over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lead_scraper/internal/config"
	"lead_scraper/internal/domain"
	"lead_scraper/internal/jobs"
	"lead_scraper/internal/service"
)

type Projects interface {
	Create(ctx context.Context, ownerID uuid.UUID, name string, searchTerms []string) (*service.ProjectDetail, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	Get(ctx context.Context, ownerID, projectID uuid.UUID) (*service.ProjectDetail, error)
	Leads(ctx context.Context, ownerID, projectID uuid.UUID) ([]domain.Lead, error)
	AllLeads(ctx context.Context, ownerID uuid.UUID, search string) ([]domain.OwnedLead, error)
	Delete(ctx context.Context, ownerID, projectID uuid.UUID) error
	Status(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.ProjectStatusReport, error)
	Reset(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
}

// JobStarter schedules a background job for one of the owner's projects.
type JobStarter interface {
	Start(ctx context.Context, ownerID, projectID uuid.UUID) (*jobs.Handle, error)
}

type Emails interface {
	FindEmails(ctx context.Context, limit int) (*domain.EmailBatchStats, error)
	RunScheduled(ctx context.Context) (*domain.EmailBatchStats, error)
	Stats(ctx context.Context) (domain.EmailStats, error)
}

type Server struct {
	projects  Projects
	scraper   JobStarter
	processor JobStarter
	emails    Emails
	auth      config.AuthConfig
	logger    *slog.Logger
}

func NewServer(
	projects Projects,
	scraper JobStarter,
	processor JobStarter,
	emails Emails,
	auth config.AuthConfig,
	logger *slog.Logger,
) *Server {
	return &Server{
		projects:  projects,
		scraper:   scraper,
		processor: processor,
		emails:    emails,
		auth:      auth,
		logger:    logger.With("component", "api"),
	}
}

// Handler builds the gin engine with every route mounted.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	cron := api.Group("/cron", RequireCronSecret(s.auth.CronSecret))
	cron.GET("/find-emails", s.cronFindEmails)

	authed := api.Group("", RequireAuth([]byte(s.auth.JWTSecret)))

	projects := authed.Group("/projects")
	projects.POST("", s.createProject)
	projects.GET("", s.listProjects)
	projects.GET("/:id", s.getProject)
	projects.DELETE("/:id", s.deleteProject)
	projects.GET("/:id/leads", s.projectLeads)
	projects.GET("/:id/status", s.projectStatus)
	projects.POST("/:id/scrape", s.startScrape)
	projects.POST("/:id/reset", s.resetProject)
	projects.POST("/:id/process-leads", s.processLeads)

	leads := authed.Group("/leads")
	leads.GET("", s.allLeads)
	leads.POST("/find-emails", s.findEmails)
	leads.GET("/find-emails", s.emailStats)

	return r
}
