package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/metasoft/restyle-platform/internal/api"
	"github.com/metasoft/restyle-platform/internal/core/service"
	"github.com/metasoft/restyle-platform/internal/infrastructure/config"
	mongodb "github.com/metasoft/restyle-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/metasoft/restyle-platform/internal/infrastructure/db/redis"
	"github.com/metasoft/restyle-platform/internal/infrastructure/notify"
	"github.com/metasoft/restyle-platform/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "restyle-api",
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Indexes and role seeding ---
	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	roleRepo := mongodb.NewRoleRepository(db)
	if err := service.SeedRoles(ctx, roleRepo, log); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	// --- Notification dispatcher ---
	dedup := redisdb.NewDedupChecker(rdb)
	notifier := notify.NewEmailNotifier(dedup, log)
	dispatcher := notify.NewDispatcher(cfg.NotifyWorkers, notifier, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	tokens := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	e := api.NewRouter(db, rdb, tokens, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewRoleRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewBusinessRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProjectRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewRequestRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewReviewRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewProfileRepository(db).EnsureIndexes(ctx)
}
