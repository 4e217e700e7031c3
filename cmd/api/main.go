package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/benjaminbelloeil/portfolio-api/api/middleware"
	"github.com/benjaminbelloeil/portfolio-api/api/routes"
	"github.com/benjaminbelloeil/portfolio-api/internal/ratelimit"
	"github.com/benjaminbelloeil/portfolio-api/internal/submission"
	"github.com/benjaminbelloeil/portfolio-api/pkg/config"
	"github.com/benjaminbelloeil/portfolio-api/pkg/logger"
	"github.com/benjaminbelloeil/portfolio-api/pkg/redis"
	"github.com/benjaminbelloeil/portfolio-api/pkg/resend"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	// Rate-limit counters live in Redis when a URL is configured so
	// multiple instances share one quota; otherwise they stay in-process.
	var counterStore middleware.CounterStore
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		counterStore = redisClient
	} else {
		logg.Info(context.Background(), "redis not configured, using in-process rate limit counters")
		counterStore = ratelimit.NewMemoryStore()
	}

	// A missing provider key degrades the submission endpoints instead of
	// blocking boot: the catalog and health routes still serve.
	var mailer submission.Mailer
	if resendClient, err := resend.New(cfg.Resend); err != nil {
		logg.Warn(context.Background(), "email provider not configured, submissions will fail")
	} else {
		mailer = resendClient
	}

	submissionService := submission.NewService(submission.ServiceParams{
		Mailer: mailer,
		Resend: cfg.Resend,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:         addr,
		Handler:      routes.NewRouter(cfg, logg, submissionService, counterStore),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
