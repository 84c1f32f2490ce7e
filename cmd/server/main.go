package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracklog/internal/github"
	"tracklog/internal/server/api"
	"tracklog/internal/server/config"
	"tracklog/internal/server/service"
)

func main() {
	// Structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load config
	cfg := config.Load()
	slog.Info("configuration loaded",
		"port", cfg.Port,
		"github_owner", cfg.GitHubOwner,
		"github_repo", cfg.GitHubRepo,
		"github_branch", cfg.GitHubBranch,
		"tracks_root", cfg.TracksRoot,
	)

	if cfg.GitHubOwner == "" || cfg.GitHubRepo == "" {
		slog.Error("GITHUB_OWNER and GITHUB_REPO must be set")
		os.Exit(1)
	}

	// GitHub source and track service
	var opts []github.Option
	if cfg.GitHubToken != "" {
		opts = append(opts, github.WithToken(cfg.GitHubToken))
	}
	source := github.NewClient(cfg.GitHubOwner, cfg.GitHubRepo, cfg.GitHubBranch,
		cfg.HTTPTimeout, opts...)
	svc := service.NewTrackService(source, cfg.TracksRoot)

	// Setup HTTP router
	handler := api.NewHandler(svc)
	e := api.SetupRouter(handler, cfg)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		slog.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil {
			slog.Info("server stopped", "reason", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutting down", "signal", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server exited cleanly")
}
