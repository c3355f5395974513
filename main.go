package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"financing-agent/config"
	httpLayer "financing-agent/http"
	"financing-agent/repository"
	"financing-agent/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "financing-agent",
		Short:        "Device financing offer scoring agent",
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newEvaluateCmd(),
		newTrainCmd(),
		newCasesCmd(),
	)
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(config.Load())
		},
	}
}

func serve(cfg config.Config) error {
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	agentCfg, err := config.LoadAgentConfig(cfg.AgentFile)
	if err != nil {
		return err
	}

	var cache repository.CacheRepository = repository.NewMockCache()
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL, logger)
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := redisCache.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warn("redis unavailable, using in-memory cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			cache = redisCache
		}
	}

	catalog := service.NewCatalogService(repository.NewCatalogRepository())
	agent := service.NewAgentService(agentCfg, logger)
	advisor := service.NewAdvisorService(cfg.OpenAIKey, cfg.OpenAIURL, cache, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Dependencies{
		Agent:        agent,
		Catalog:      catalog,
		Quotes:       service.NewQuoteService(),
		Advisor:      advisor,
		Metrics:      httpLayer.NewMetrics(reg),
		Limiter:      rateLimiter,
		Logger:       logger,
		TrainingSize: cfg.TrainingSize,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("agent", agent.Config().Name),
			zap.Int("cases", len(catalog.Cases())),
			zap.Bool("llmSummaries", advisor.Enabled()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return err
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
		return err
	}

	logger.Info("server exited")
	return nil
}
