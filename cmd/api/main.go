package main

import (
	"context"
	"time"

	"stylistapi/config"
	"stylistapi/controllers"
	"stylistapi/dbhelper"
	"stylistapi/logging"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.MustLoad()
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger := logging.With("api")

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Env,
		Release:          cfg.Sentry.Release,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("sentry.Init")
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db, err := dbhelper.SetupDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("database")
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Broker.Address})
	defer asynqClient.Close()

	awsService := services.NewAWSService(cfg.Storage)
	if err := awsService.InitPresignClient(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize AWS provider: S3")
	}
	urlCache, err := services.NewURLCacheService(awsService, cfg.Storage.BucketName, logging.With("urlcache"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize URL cache service")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewOutfitMetrics(reg)

	sessions, err := services.NewOutfitSessionStore(db, cfg.Outfit, metrics, logging.With("outfits"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize outfit sessions")
	}

	var gatherer prometheus.Gatherer
	if cfg.Server.EnableMetrics {
		gatherer = reg
	}
	e := controllers.SetupServer(cfg, db, awsService, urlCache, sessions, asynqClient, gatherer)
	e.HideBanner = true
	if cfg.Server.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RateLimit))))
	}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	logger.Info().Str("address", cfg.Server.Address).Msg("listening")
	e.Logger.Fatal(e.Start(cfg.Server.Address))
}
