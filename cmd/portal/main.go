package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99minutos/logistics-portal/internal/api"
	"github.com/99minutos/logistics-portal/internal/api/handler"
	"github.com/99minutos/logistics-portal/internal/core/service"
	"github.com/99minutos/logistics-portal/internal/infrastructure/config"
	mongodb "github.com/99minutos/logistics-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/logistics-portal/internal/infrastructure/db/redis"
	"github.com/99minutos/logistics-portal/internal/infrastructure/session"
	"github.com/99minutos/logistics-portal/pkg/logger"
)

// @title           Logistics Portal Authorization API
// @version         1.0
// @description     Session validation and role-based authorization for the logistics portal.
// @BasePath        /
// @securityDefinitions.apikey SessionCookie
// @in              cookie
// @name            session
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.Production(),
		Service: "logistics-portal",
		Env:     cfg.Env,
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "logistics-portal",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	revocations := redisdb.NewRevocationStore(redisClient)
	identity := session.NewJWTProvider(cfg.JWTSecret, cfg.SessionCookie, revocations)
	accounts := mongodb.NewAccountRepository(db, cfg.Mongo.AccountsCollection)

	authz := service.NewAuthzService(nil)
	sessions := service.NewSessionService(identity, accounts, log)

	e := api.NewRouter(api.Dependencies{
		Sessions:      sessions,
		Authz:         authz,
		Identity:      identity,
		Revoker:       revocations,
		SessionCookie: cfg.SessionCookie,
		Log:           log,
		Checks: map[string]handler.DependencyCheck{
			"mongo": mongodb.Ping(mongoClient),
			"redis": redisdb.Ping(redisClient),
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
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
