package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/minusd/favorite-places/internal/api"
	"github.com/minusd/favorite-places/internal/api/handler"
	"github.com/minusd/favorite-places/internal/core/service"
	mongostore "github.com/minusd/favorite-places/internal/infrastructure/db/mongo"
	redisstore "github.com/minusd/favorite-places/internal/infrastructure/db/redis"
	"github.com/minusd/favorite-places/internal/infrastructure/hashing"
	"github.com/minusd/favorite-places/internal/pkg/config"
	"github.com/minusd/favorite-places/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to read .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log, err := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "favorite-places",
	})
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to initialise logger")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := mongostore.NewUserRepository(db)
	places := mongostore.NewPlaceRepository(db)
	if err := mongostore.EnsureIndexes(ctx, users, places); err != nil {
		return err
	}

	hasher := hashing.NewBcryptHasher(cfg.Bcrypt.Cost)
	credentials, err := service.NewCredentialStore(users, hasher)
	if err != nil {
		return err
	}
	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL,
		Issuer: cfg.JWT.Issuer,
	})
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Dependencies{
		Logger: logger.Component("http"),
		Auth:   service.NewAuthService(credentials, hasher, tokens, logger.Component("auth")),
		Tokens: tokens,
		Places: service.NewPlaceService(places, logger.Component("places")),
		Users:  service.NewUserService(users),
		RateLimitStore: redisstore.NewAttemptCounter(
			rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger.Component("ratelimit"),
		),
		ReadinessChecks: map[string]handler.Check{
			"mongodb": mongostore.Pinger(db),
			"redis":   redisstore.Pinger(rdb),
		},
		TrustProxyHeaders: cfg.RateLimit.TrustProxyHeaders,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
