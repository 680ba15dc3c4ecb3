package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"lead_scraper/internal/emailfinder"
	"lead_scraper/internal/lock"
	"lead_scraper/internal/publisher"
	"lead_scraper/internal/service"
	"lead_scraper/internal/storage/postgres"
)

func openDB(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")
	return db, nil
}

// openPublisher returns a nil Publisher when event publishing is disabled.
func openPublisher() (service.Publisher, func(), error) {
	if !cfg.RabbitMQ.Enabled {
		return nil, func() {}, nil
	}

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return rabbitMQ, func() { _ = rabbitMQ.Close() }, nil
}

// openLocker shares job locks through Redis when configured so several
// instances never run the same job. Otherwise locks are in-process.
func openLocker(ctx context.Context) (service.Locker, func(), error) {
	if cfg.Redis.Addr == "" {
		return lock.NewLocal(), func() {}, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("using redis job locks", "addr", cfg.Redis.Addr)

	ttl := cfg.Processing.JobTimeout + time.Minute
	return lock.NewRedis(rdb, ttl, logger), func() { _ = rdb.Close() }, nil
}

func newEmailService(db *sqlx.DB, locker service.Locker, pub service.Publisher) *service.EmailService {
	finder := emailfinder.New(emailfinder.Config{
		HunterAPIKey:  cfg.Email.HunterAPIKey,
		HunterBaseURL: cfg.Email.HunterBaseURL,
		FetchTimeout:  cfg.Email.FetchTimeout,
	}, logger)

	return service.NewEmailService(
		postgres.NewUniqueLeadStore(db),
		finder,
		locker,
		pub,
		logger,
		cfg.Email,
	)
}
