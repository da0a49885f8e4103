package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padelton/internal/archive"
	"github.com/mauv0809/padelton/internal/config"
	"github.com/mauv0809/padelton/internal/database"
	server "github.com/mauv0809/padelton/internal/http"
	"github.com/mauv0809/padelton/internal/http/handlers"
	"github.com/mauv0809/padelton/internal/live"
	"github.com/mauv0809/padelton/internal/metrics"
	"github.com/mauv0809/padelton/internal/notifier"
	"github.com/mauv0809/padelton/internal/notifier/slack"
	"github.com/mauv0809/padelton/internal/processor"
	"github.com/mauv0809/padelton/internal/pubsub"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping default", "level", cfg.LogLevel)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var results archive.ResultStore
	if cfg.ArchiveEnabled() {
		db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		log.Info("Database initialization time recorded", "duration_ms", time.Since(startTime).Milliseconds())
		if err != nil {
			log.Fatalf("Failed to initialize database: %s", err)
		}
		defer func() {
			log.Info("Closing database connection")
			dbTeardown()
		}()
		results = archive.New(db)
	} else {
		log.Info("No DB_NAME or TURSO_PRIMARY_URL set, LUNAR results are not archived")
	}

	var slackNotifier notifier.Notifier
	if cfg.Slack.Enabled() {
		slackNotifier = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Info("Slack is not configured, match results are not posted")
	}

	var pubsubClient pubsub.PubSubClient
	if cfg.ProjectID != "" {
		client, err := pubsub.New(ctx, cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer client.Close()
		pubsubClient = client
	}

	proc := processor.New(results, slackNotifier, metricsSvc, pubsubClient, cfg.Topic)

	store := scoreboard.New(cfg.OnlineThreshold)
	hub := live.NewHub(cfg.AllowedOrigins)
	go hub.Run(ctx, cfg.BroadcastEvery, func() ([]byte, error) {
		return handlers.CourtsSnapshot(store)
	})

	s := server.NewServer(
		store,
		metricsSvc,
		metricsHandler,
		cfg,
		proc,
		results,
		hub,
		pubsubClient,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port, "static", cfg.StaticDir, "onlineThreshold", cfg.OnlineThreshold)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Live viewers hold hijacked connections that Shutdown does not wait for.
		stop()
		hub.Close()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
