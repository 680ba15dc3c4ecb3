package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lead_scraper/internal/api"
	"lead_scraper/internal/jobs"
	"lead_scraper/internal/metrics"
	"lead_scraper/internal/scheduler"
	"lead_scraper/internal/service"
	"lead_scraper/internal/source/places"
	"lead_scraper/internal/storage/postgres"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background jobs",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	metrics.Register()
	gin.SetMode(gin.ReleaseMode)

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	pub, closePublisher, err := openPublisher()
	if err != nil {
		return err
	}
	defer closePublisher()

	locker, closeLocker, err := openLocker(ctx)
	if err != nil {
		return err
	}
	defer closeLocker()

	runner := jobs.NewRunner(logger)

	projectStore := postgres.NewProjectStore(db)
	termStore := postgres.NewSearchTermStore(db)
	stagedStore := postgres.NewStagedLeadStore(db)
	uniqueStore := postgres.NewUniqueLeadStore(db)
	membershipStore := postgres.NewMembershipStore(db)
	leadStore := postgres.NewLeadStore(db)
	txManager := postgres.NewTransactionManager(db)

	searcher := places.New(places.Config{
		APIKey:         cfg.Places.APIKey,
		BaseURL:        cfg.Places.BaseURL,
		Timeout:        cfg.Places.Timeout,
		MaxPages:       cfg.Places.MaxPages,
		MaxResults:     cfg.Places.MaxResults,
		RequestDelay:   cfg.Places.RequestDelay,
		MaxAttempts:    cfg.Places.Retry.MaxAttempts,
		InitialBackoff: cfg.Places.Retry.InitialBackoff,
		MaxBackoff:     cfg.Places.Retry.MaxBackoff,
	}, logger)

	projectService := service.NewProjectService(projectStore, termStore, leadStore, uniqueStore, txManager, logger)
	scrapeService := service.NewScrapeService(projectStore, termStore, stagedStore, searcher, runner, pub, logger, cfg.Scrape)
	processingService := service.NewProcessingService(
		projectStore,
		stagedStore,
		uniqueStore,
		membershipStore,
		leadStore,
		txManager,
		locker,
		runner,
		pub,
		logger,
		cfg.Processing,
	)
	emailService := newEmailService(db, locker, pub)

	server := api.NewServer(projectService, scrapeService, processingService, emailService, cfg.Auth, logger)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		httpErr := httpServer.Shutdown(shutdownCtx)
		jobsErr := runner.Shutdown(shutdownCtx)
		return errors.Join(httpErr, jobsErr)
	})

	if cfg.Email.ScheduleInterval > 0 {
		sched := scheduler.NewScheduler(emailService, cfg.Email.ScheduleInterval, logger)
		g.Go(func() error {
			if err := sched.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
