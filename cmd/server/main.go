package main

import (
	"os"
	"path/filepath"
	"time"

	"lindash/internal/config"
	"lindash/internal/ingest"
	"lindash/internal/server"
	"lindash/internal/snapshot"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Open the snapshot store; the service degrades to memory-only serving
	// when it cannot be opened
	if err := os.MkdirAll(filepath.Dir(cfg.SnapshotDBPath), 0o755); err != nil {
		logger.Warn().Err(err).Msg("Failed to create snapshot directory")
	}
	store, err := snapshot.Open(cfg.SnapshotDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Snapshot store unavailable, previously ingested data will not survive restarts")
		store = nil
	} else {
		logger.Info().Str("path", cfg.SnapshotDBPath).Msg("Snapshot store opened")
	}

	// Ingestion service; rehydrate the previous export if one was persisted
	svc := ingest.New(logger, store, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
	if d := svc.Current(); d != nil {
		logger.Info().Str("export_id", d.ExportID).Msg("Previous export restored")
	} else {
		logger.Info().Msg("No previous export found, waiting for upload")
	}

	// Create and initialize server
	srv := server.New(cfg, store, svc, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
