package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/confscout/eventscout/internal/agent"
	"github.com/confscout/eventscout/internal/api"
	"github.com/confscout/eventscout/internal/cache"
	"github.com/confscout/eventscout/internal/config"
	"github.com/confscout/eventscout/internal/fetcher"
	"github.com/confscout/eventscout/internal/llm"
	"github.com/confscout/eventscout/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Loading configuration failed", nil, err)
		os.Exit(1)
	}
	logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stdout))

	f := fetcher.New(cfg.RequestTimeout, cfg.MaxRetries, cfg.UserAgent)
	discovery := agent.NewDiscovery(f, cache.New(cfg.CacheExpiry))

	client := llm.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	srv := api.NewServer(
		discovery,
		agent.NewProposal(client),
		agent.NewScholarship(client),
		agent.NewTravel(client),
	)

	httpServer := &http.Server{
		Addr:              cfg.APIBindAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		logger.Info("API server starting", logger.Fields{"addr": cfg.APIBindAddr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped", nil, err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", nil, err)
	}
}
