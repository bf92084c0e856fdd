package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	httpadapter "evacplanner/internal/adapter/http"
	metricsinmem "evacplanner/internal/adapter/metrics/inmemory"
	ebitenview "evacplanner/internal/adapter/view/ebiten"
	"evacplanner/internal/app/ports"
	"evacplanner/internal/app/replication"
	"evacplanner/internal/app/session"
	"evacplanner/internal/config"
)

func main() {
	configPath := flag.String("config", strings.TrimSpace(os.Getenv("EVAC_CONFIG")), "path to the planner YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Active() {
		log.Println("no building grid configured (set building.id, width and height); nothing to show")
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := newLogger(cfg.Log.Verbose)

	client, err := httpadapter.NewClient(httpadapter.Config{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		SessionCookie: cfg.API.SessionCookie,
	})
	if err != nil {
		log.Fatalf("build api client: %v", err)
	}
	probeHealth(client, logger, cfg.API.Timeout)

	recorder := metricsinmem.NewRecorder()
	replicator := replication.New(client, replication.Options{
		QueueSize: cfg.Sync.QueueSize,
		Timeout:   cfg.API.Timeout,
		Logger:    logger,
		Metrics:   recorder,
	})

	s, err := buildSession(cfg, replicator, client, recorder, logger)
	if err != nil {
		replicator.Close()
		log.Fatalf("build session: %v", err)
	}

	game := ebitenview.New(s, ebitenview.Options{
		CellSize:       cfg.View.CellSize,
		Title:          cfg.View.Title,
		RequestTimeout: cfg.API.Timeout,
		Metrics:        recorder,
		Logger:         logger,
	})
	logger.Printf("[app] building %d %dx%d against %s", cfg.Building.ID, cfg.Building.Width, cfg.Building.Height, cfg.API.BaseURL)
	runErr := game.Run()
	replicator.Close()
	if runErr != nil {
		log.Fatalf("run window: %v", runErr)
	}
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

func buildSession(cfg config.Config, replicator ports.HazardReplicator, planner ports.PathAPI, metrics ports.PathMetrics, logger *log.Logger) (*session.Session, error) {
	s, err := session.New(session.Config{
		BuildingID: cfg.Building.ID,
		Width:      cfg.Building.Width,
		Height:     cfg.Building.Height,
	}, session.Deps{
		Replicator: replicator,
		Planner:    planner,
		Metrics:    metrics,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	if seeds := cfg.SeedHazards(); len(seeds) > 0 {
		skipped := s.Seed(seeds)
		logger.Printf("[app] seeded %d hazards (%d skipped)", len(seeds)-len(skipped), len(skipped))
	}
	return s, nil
}

// probeHealth logs the backend's health. An unreachable backend is not
// fatal; the session still works locally.
func probeHealth(hc ports.HealthChecker, logger *log.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	h, err := hc.Health(ctx)
	if err != nil {
		logger.Printf("[app] health probe failed: %v", err)
		return
	}
	logger.Printf("[app] backend %s %s: %s", h.Service, h.Version, h.Status)
}
