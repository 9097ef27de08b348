// Command api is the Scorepulse live-scores API server.
//
// Usage:
//
//	scorepulse-api
//	API_PORT=8080 scorepulse-api

// @title Scorepulse API
// @version 1.0.0
// @description Multi-sport live scores and player stats API. Normalizes ESPN scoreboard, team, player, standings, and leaderboard payloads into one canonical shape across ten sports.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Scorepulse
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/scorepulse/internal/api"
	"github.com/albapepper/scorepulse/internal/cache"
	"github.com/albapepper/scorepulse/internal/config"
	"github.com/albapepper/scorepulse/internal/provider/cfbd"
	"github.com/albapepper/scorepulse/internal/provider/espn"

	_ "github.com/albapepper/scorepulse/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg := config.Load()

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Initialize caches
	appCache := cache.New()
	playerCache := cache.NewPlayerCache()
	logger.Info("Caches initialized",
		"response_ttl_live", cache.TTLLive,
		"response_ttl_static", cache.TTLStatic,
		"player_fresh_window", cache.FreshWindow)

	// Upstream clients
	espnClient := espn.NewClient(cfg.ESPNRequestsPerMinute, logger)
	cfbdClient := cfbd.NewClient(cfg.CFBDAPIKey, cfg.CFBDRequestsPerMinute, logger)
	if cfbdClient != nil {
		logger.Info("CFBD betting lines enabled")
	} else {
		logger.Info("CFBD betting lines disabled (no CFBD_API_KEY)")
	}

	// Create router
	router := api.NewRouter(espnClient, cfbdClient, appCache, playerCache, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Scorepulse API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
