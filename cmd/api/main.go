package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"clinic-backend/internal/config"
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"
	"clinic-backend/internal/routes"
	"clinic-backend/internal/services"
	"clinic-backend/pkg/utils"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Error while initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	utils.SetHashCost(cfg.BcryptCost)

	db, err := config.ConnectDB(cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		return err
	}
	if err := config.Migrate(db); err != nil {
		return err
	}
	if err := config.SeedAdmin(db, logger, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return err
	}

	var store services.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		client, err := config.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		store = services.NewRedisSessionStore(client)
	default:
		store = services.NewDBSessionStore(db)
	}

	sessions := services.NewSessionAuthority(store, utils.NewTokenSigner(cfg.JWTSecret), cfg.SessionTTL, logger)
	go sessions.RunSweep(ctx, time.Hour)
	directory := services.NewDirectory(db, logger)
	h := handlers.New(
		services.NewLoginService(services.NewCredentialStore(db, logger), sessions),
		sessions,
		services.NewRegistration(db, sessions, logger),
		directory,
		services.NewLedger(db, directory, logger),
		logger,
	)

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	go limiter.RunCleanup(time.Minute, 3*time.Minute, ctx.Done())

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	routes.SetupRoutes(r, h, sessions, limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port), zap.String("db_driver", cfg.DBDriver), zap.String("session_backend", cfg.SessionBackend))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
