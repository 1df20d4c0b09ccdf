package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/streamcart-lab/streamcart/internal/core/config"
	"github.com/streamcart-lab/streamcart/internal/core/storage"
	"github.com/streamcart-lab/streamcart/internal/core/storage/postgres"
	"github.com/streamcart-lab/streamcart/internal/ingestion"
	"github.com/streamcart-lab/streamcart/internal/migrations"
	"github.com/streamcart-lab/streamcart/internal/records"
	"github.com/streamcart-lab/streamcart/internal/server"
	"github.com/streamcart-lab/streamcart/internal/validation"
)

func main() {
	configPath := flag.String("config", "streamcart.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config", cfg)

	// 2. Initialize Sink Storage (PostgreSQL)
	tables := storage.SinkTables{
		Raw:       cfg.Sinks.RawTable,
		Processed: cfg.Sinks.ProcessedTable,
		Error:     cfg.Sinks.ErrorTable,
	}

	// Migrations run against a plain connection first so the adapter's
	// schema check passes on a fresh database.
	if cfg.Database.AutoMigrate {
		if err := runMigrations(cfg); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
	}

	sinkAdapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		tables,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize sink database", "error", err)
		os.Exit(1)
	}
	defer sinkAdapter.Close()

	// 3. Initialize Validation
	rules, err := validation.LoadRules(cfg.Validation.RulesPath)
	if err != nil {
		slog.Error("Failed to load schema rules", "error", err)
		os.Exit(1)
	}
	validator := validation.NewValidator(rules)
	slog.Info("Schema rules loaded",
		"event_types", rules.EventTypes,
		"devices", rules.Devices,
	)

	// 4. Initialize Ingestion
	transcoder := records.NewTranscoder(cfg.Sinks.Source)
	ingestionSvc := ingestion.NewService(validator, transcoder, sinkAdapter, cfg.Server.MaxBodySizeMB)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), sinkAdapter.DB(), cfg.Server.Mode)
	ingestionSvc.RegisterRoutes(srv.Engine)

	// 6. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// runMigrations opens a short-lived connection just for schema setup.
func runMigrations(cfg *corecfg.Config) error {
	db, err := migrations.OpenForMigrations(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	return migrations.RunMigrations(db, true)
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
