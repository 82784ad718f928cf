package main

import (
	"context"
	"net/http"
	"time"

	"stylistapi/config"
	"stylistapi/dbhelper"
	"stylistapi/logging"
	"stylistapi/services"
	"stylistapi/tasks"

	firebase "firebase.google.com/go/v4"
	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const metricsAddress = ":9091"

func runScheduler(cfg *config.Config, logger zerolog.Logger) {
	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: cfg.Broker.Address}, &asynq.SchedulerOpts{
		LogLevel: asynq.InfoLevel,
	})

	entries := []struct {
		cron string
		task *asynq.Task
		desc string
	}{
		{cron: cfg.Outfit.DailyCron, task: tasks.NewDailyOutfitTask(), desc: "Outfit of the day"},
	}
	for _, t := range entries {
		entryID, err := scheduler.Register(t.cron, t.task)
		if err != nil {
			logger.Fatal().Err(err).Str("task", t.desc).Msg("[Queue] Failed to register task")
		}
		logger.Info().Str("task", t.desc).Str("entry_id", entryID).Str("cron", t.cron).Msg("[Queue] Registered task")
	}

	if err := scheduler.Run(); err != nil {
		logger.Fatal().Err(err).Msg("[Queue] Scheduler failed")
	}
}

func main() {
	cfg := config.MustLoad()
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger := logging.With("worker")

	if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Env, Release: cfg.Sentry.Release}); err != nil {
		logger.Fatal().Err(err).Msg("sentry.Init")
	}
	defer sentry.Flush(2 * time.Second)

	db, err := dbhelper.SetupDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("database")
	}

	// Without credentials pushes are skipped, outfits are still generated.
	app, err := firebase.NewApp(context.Background(), nil)
	if err != nil {
		logger.Warn().Err(err).Msg("[Push] firebase disabled")
		app = nil
	}

	metrics := services.NewOutfitMetrics(prometheus.DefaultRegisterer)
	if cfg.Server.EnableMetrics {
		go func() {
			if err := http.ListenAndServe(metricsAddress, promhttp.Handler()); err != nil {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	sessions, err := services.NewOutfitSessionStore(db, cfg.Outfit, metrics, logging.With("outfits"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize outfit sessions")
	}

	handler := &tasks.OutfitTaskHandler{
		DB:       db,
		Sessions: sessions,
		Notifier: &services.FirebaseNotifier{App: app, DB: db, Logger: logging.With("push")},
		Config:   cfg.Outfit,
		Logger:   logger,
	}
	mux := asynq.NewServeMux()
	handler.Register(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Broker.Address},
		asynq.Config{Concurrency: cfg.Broker.Concurrency, Queues: map[string]int{
			tasks.QueueOutfits: 7,
		}},
	)

	go runScheduler(cfg, logger)
	if err := srv.Run(mux); err != nil {
		logger.Fatal().Err(err).Msg("[Queue] worker stopped")
	}
}
