package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"notepress/internal/assets"
	"notepress/internal/config"
	"notepress/internal/domain"
	"notepress/internal/publisher"
	"notepress/internal/scheduler"
	"notepress/internal/service"
	"notepress/internal/source/ghost"
	"notepress/internal/source/notes"
	"notepress/internal/storage/postgres"
	"notepress/internal/storage/s3"
	"notepress/internal/transform"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	objectStorage, err := s3.New(ctx, s3.Config{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		Bucket:        cfg.Storage.Bucket,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	blogStore := postgres.NewBlogStore(db)
	postStore := postgres.NewPostStore(db)
	assetRecordStore := postgres.NewAssetStore(db)
	publishTagStore := postgres.NewPublishTagStore(db)
	credentialStore := postgres.NewCredentialStore(db)
	txManager := postgres.NewTransactionManager(db)

	assetStore := assets.New(objectStorage, assetRecordStore, logger)

	transformer := transform.New(assetStore, transform.Config{
		LocalURLPrefix: cfg.Storage.PublicBaseURL,
		ExcerptLength:  cfg.Sync.ExcerptLength,
	}, logger)

	noteClient := notes.New(notes.Config{
		BaseURL: cfg.NoteAPI.BaseURL,
		Timeout: cfg.NoteAPI.Timeout,
		Retry: notes.NewRetryPolicy(
			cfg.NoteAPI.Retry.MaxAttempts,
			cfg.NoteAPI.Retry.InitialBackoff,
			cfg.NoteAPI.Retry.MaxBackoff,
			cfg.NoteAPI.Retry.ShortWaitCap,
			logger,
		),
	}, logger)

	ghostClient := ghost.New(ghost.Config{
		BaseURL:  cfg.GhostAPI.BaseURL,
		APIKey:   cfg.GhostAPI.APIKey,
		PageSize: cfg.GhostAPI.PageSize,
		Timeout:  cfg.GhostAPI.Timeout,
	}, logger)

	noteSync := service.NewSyncService(
		noteClient,
		credentialStore,
		blogStore,
		postStore,
		publishTagStore,
		transformer,
		txManager,
		rabbitMQ,
		logger,
		cfg.Sync,
	)

	ghostSync := service.NewGhostSyncService(
		ghostClient,
		blogStore,
		postStore,
		transformer,
		txManager,
		rabbitMQ,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(map[domain.SourceKind]scheduler.Syncer{
		domain.SourceNotes: noteSync,
		domain.SourceGhost: ghostSync,
	}, blogStore, cfg.Sync.Interval, logger)

	logger.Info("starting blog syncer",
		"interval", cfg.Sync.Interval,
		"publish_tag", cfg.Sync.PublishTagName,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
