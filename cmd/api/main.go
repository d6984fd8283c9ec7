package main

import (
	"context"
	"database/sql"
	"fmt"

	"monitoring-srv/config"
	configPostgre "monitoring-srv/config/postgre"
	configRedis "monitoring-srv/config/redis"
	crisisInmem "monitoring-srv/internal/crisis/repository/inmem"
	crisisUsecase "monitoring-srv/internal/crisis/usecase"
	"monitoring-srv/internal/httpserver"
	"monitoring-srv/internal/ingest"
	mentionRepo "monitoring-srv/internal/mention/repository"
	mentionInmem "monitoring-srv/internal/mention/repository/inmem"
	mentionPostgre "monitoring-srv/internal/mention/repository/postgre"
	mentionUsecase "monitoring-srv/internal/mention/usecase"
	"monitoring-srv/internal/metrics"
	ruleInmem "monitoring-srv/internal/rule/repository/inmem"
	ruleUsecase "monitoring-srv/internal/rule/usecase"
	trackerInmem "monitoring-srv/internal/tracker/repository/inmem"
	trackerUsecase "monitoring-srv/internal/tracker/usecase"
	"monitoring-srv/pkg/log"
	"monitoring-srv/pkg/notify"
	pkgRedis "monitoring-srv/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize the mention store. Postgres when configured, in-memory
	// otherwise (tests, demos, single-node deployments).
	var (
		db           *sql.DB
		mentionStore mentionRepo.Repository
	)
	if cfg.Postgres.Host != "" {
		db, err = configPostgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer configPostgre.Disconnect(ctx, db)
		logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

		mentionStore = mentionPostgre.New(logger, db)
	} else {
		logger.Info(ctx, "PostgreSQL not configured, using in-memory mention store")
		mentionStore = mentionInmem.New(logger)
	}

	// Initialize the notifier: redis pub/sub for queued channels plus an
	// optional direct webhook sender.
	var (
		redisClient pkgRedis.IRedis
		notifier    notify.Notifier = &notify.Noop{}
		pub         *notify.RedisPublisher
		webhook     *notify.WebhookSender
	)
	if cfg.Redis.Host != "" {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect(redisClient)
		logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

		pub = notify.NewRedisPublisher(logger, redisClient.GetClient(), cfg.Notify.ChannelPrefix)
	} else {
		logger.Info(ctx, "Redis not configured, queued notification channels disabled")
	}

	if cfg.Notify.WebhookURL != "" {
		webhook, err = notify.NewWebhookSender(logger, notify.DefaultWebhookConfig(cfg.Notify.WebhookURL))
		if err != nil {
			logger.Error(ctx, "Failed to initialize webhook sender: ", err)
			return
		}
		defer webhook.Close()
	}
	if pub != nil || webhook != nil {
		notifier = notify.NewFanout(logger, pub, webhook)
	}

	// Initialize domain usecases and the pipeline
	agg := metrics.New(logger)
	trackerUC := trackerUsecase.New(logger, trackerInmem.New(logger))
	mentionUC := mentionUsecase.New(logger, mentionStore)
	ruleUC := ruleUsecase.New(logger, ruleInmem.New(logger), agg, notifier)
	crisisUC := crisisUsecase.New(logger, cfg.Crisis.ToDomainConfig(), crisisInmem.New(logger), agg, notifier)

	engine := ingest.New(logger, cfg.Ingest.ToEngineConfig(), trackerUC, mentionUC, ruleUC, crisisUC, agg)

	// Optional demo seed
	if cfg.SeedDemo {
		if err := seedDemoData(ctx, logger, trackerUC, ruleUC, mentionUC, agg); err != nil {
			logger.Errorf(ctx, "Failed to seed demo data: %v", err)
			return
		}
		logger.Info(ctx, "Demo data seeded")
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host: cfg.HTTPServer.Host,
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		TrackerUC: trackerUC,
		RuleUC:    ruleUC,
		CrisisUC:  crisisUC,
		MentionUC: mentionUC,

		Engine:     engine,
		Aggregator: agg,

		InternalKey: cfg.Internal.InternalKey,

		DB:    db,
		Redis: redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
