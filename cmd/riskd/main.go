package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creditvision/riskd/internal/api"
	"github.com/creditvision/riskd/internal/config"
	"github.com/creditvision/riskd/internal/events"
	"github.com/creditvision/riskd/internal/modelinfo"
	"github.com/creditvision/riskd/internal/ocr"
	"github.com/creditvision/riskd/internal/risk"
	"github.com/creditvision/riskd/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scorer
	weights := risk.WeightSet{
		Late90:         cfg.Scoring.Weights.Late90,
		Late60:         cfg.Scoring.Weights.Late60,
		Late30:         cfg.Scoring.Weights.Late30,
		Utilization:    cfg.Scoring.Weights.Utilization,
		UtilizationCap: cfg.Scoring.Weights.UtilizationCap,
		DebtRatio:      cfg.Scoring.Weights.DebtRatio,
		DebtRatioCap:   cfg.Scoring.Weights.DebtRatioCap,
		DependentPer:   cfg.Scoring.Weights.DependentPer,
		DependentCap:   cfg.Scoring.Weights.DependentCap,
	}
	if err := weights.Validate(); err != nil {
		logger.Error("invalid scoring weights", "error", err)
		os.Exit(1)
	}
	scorer := risk.NewScorer(weights, logger)

	// Assessment history (optional)
	var db store.Store
	if cfg.Database.URL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		db = pg
		defer pg.Close()
		logger.Info("assessment history enabled")
	}

	// Event publishing (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event bus, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event bus")
		}
	}

	// Text recognition backend
	var recognizer ocr.Recognizer
	switch cfg.OCR.Backend {
	case "remote":
		recognizer = ocr.NewRemoteRecognizer(cfg.OCR.RemoteURL, cfg.OCR.RemoteToken)
	case "tesseract", "":
		recognizer = ocr.NewTesseractRecognizer(cfg.OCR.Language)
	default:
		logger.Error("unknown OCR backend", "backend", cfg.OCR.Backend)
		os.Exit(1)
	}
	logger.Info("text recognition ready", "backend", cfg.OCR.Backend)

	// Model insight provider
	provider, err := modelinfo.NewProvider(cfg.Model.InfoPath)
	if err != nil {
		logger.Error("failed to load model info", "error", err)
		os.Exit(1)
	}

	// API server
	router := api.NewRouter(scorer, recognizer, db, eventsClient, provider, cfg, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
