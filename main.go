package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sjsage522/competitorshots/config"
	"sjsage522/competitorshots/internal/crawler"
	"sjsage522/competitorshots/internal/registry"
	"sjsage522/competitorshots/logger"
	"sjsage522/competitorshots/services/cache"
	"sjsage522/competitorshots/services/publisher"
	"sjsage522/competitorshots/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load competitor registry")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("output_root", cfg.OutputRoot).
		Int("competitors", reg.Len()).
		Int("max_screenshots", cfg.MaxScreenshotsPerSource).
		Msg("Starting screenshot run")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	}()

	services := initializeServices(cfg)
	defer services.Cleanup()

	crawlers := crawler.CreateCrawlers(cfg, services.Cache)

	w := worker.NewWorker(reg, crawlers, services.Publisher, cfg.OutputRoot, cfg.InterCompetitorDelay)
	w.Run(ctx)
}

// loadRegistry reads REGISTRY_FILE when set, otherwise uses the built-in registry
func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	if cfg.RegistryFile == "" {
		return registry.Default(), nil
	}
	return registry.Load(cfg.RegistryFile)
}

// Services holds the optional backing services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
}

// initializeServices connects the services that are configured and reachable.
// Both are optional; a run never fails because one is missing.
func initializeServices(cfg *config.Config) *Services {
	services := &Services{}

	if cfg.MemcacheAddr != "" {
		memcacheService := cache.NewMemcacheService(cfg.MemcacheAddr, time.Second)
		if err := memcacheService.Ping(); err != nil {
			logger.ForCache().Warn().Err(err).Str("addr", cfg.MemcacheAddr).Msg("Memcache unavailable, rate-limit blocking disabled")
		} else {
			services.Cache = memcacheService
			logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)
		}
	}

	if cfg.RedisAddr != "" {
		redisPublisher := publisher.NewRedisPublisher(
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamMaxLength,
		)
		if err := redisPublisher.Ping(); err != nil {
			logger.ForPublisher().Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, reports disabled")
			redisPublisher.Close()
		} else {
			services.Publisher = redisPublisher
			logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
				cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
		}
	}

	return services
}
