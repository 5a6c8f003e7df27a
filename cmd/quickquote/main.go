package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/config"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/db"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/estimate"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/logging"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/pricing"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/pricing/market"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/store"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	priceStore := store.NewPriceStore(database)

	labor := pricing.DefaultLaborRates()
	labor.HourlyRate = cfg.LaborRate

	var fetcher *pricing.Fetcher
	if cfg.OpenAIAPIKey != "" {
		logger.Info("market pricing enabled", "model", cfg.OpenAIModel)
		quoter := market.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		fetcher = pricing.NewFetcher(priceStore, quoter, pricing.DefaultFallbackTable(), labor, cfg.PriceCacheTTL, logger)
	} else {
		logger.Info("no api key configured, pricing will use cache and fallback table only")
		fetcher = pricing.NewFetcher(priceStore, nil, pricing.DefaultFallbackTable(), labor, cfg.PriceCacheTTL, logger)
	}

	server := web.NewServer(fetcher, estimate.DefaultCostbook(), logger)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
