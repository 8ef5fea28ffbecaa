package main

// @title Salar Zonal Stats API
// @version 1.0.0
// @description Зональная статистика спектральных индексов Landsat по классам покрытия саларов с текстовой интерпретацией.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/salar-zonal-stats/docs"
	"github.com/salar-zonal-stats/internal/config"
	httpDelivery "github.com/salar-zonal-stats/internal/delivery/http"
	"github.com/salar-zonal-stats/internal/delivery/http/handler"
	"github.com/salar-zonal-stats/internal/domain/repository"
	"github.com/salar-zonal-stats/internal/infrastructure/anthropic"
	"github.com/salar-zonal-stats/internal/pkg/logger"
	"github.com/salar-zonal-stats/internal/repository/cache"
	"github.com/salar-zonal-stats/internal/repository/memory"
	"github.com/salar-zonal-stats/internal/repository/postgres"
	"github.com/salar-zonal-stats/internal/usecase"
	"github.com/salar-zonal-stats/internal/zonal"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Salar Zonal Stats")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Duration("generator_latency", cfg.Generator.Latency),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 3. Salar catalog
	var salarRepo repository.SalarRepository
	var db *postgres.DB
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		db, err = postgres.New(ctx, &cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
		salarRepo = postgres.NewSalarRepository(db, log)
		log.Info("PostgreSQL catalog connected")
	} else {
		salarRepo = memory.NewSalarRepository()
	}

	// 4. Interpretation cache (опционально)
	var redisClient *cache.Redis
	var cacheRepo repository.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(ctx, &cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, interpretation cache disabled", zap.Error(err))
		} else {
			cacheRepo = cache.NewCacheRepository(redisClient)
			log.Info("Redis connected")
		}
	}

	// 5. Generator and interpreter
	generatorOpts := []zonal.Option{zonal.WithLatency(cfg.Generator.Latency)}
	if cfg.Generator.Seed != 0 {
		generatorOpts = append(generatorOpts, zonal.WithSource(rand.NewPCG(cfg.Generator.Seed, cfg.Generator.Seed)))
	}
	generator := zonal.NewGenerator(generatorOpts...)

	if cfg.Anthropic.APIKey == "" {
		log.Warn("ANTHROPIC_API_KEY is not set, interpretations will return a placeholder")
	}
	interpreter := anthropic.NewInterpreter(&cfg.Anthropic, log)

	// 6. Initialize Use Cases
	catalogUC := usecase.NewCatalogUseCase(salarRepo, log)
	interpretationUC := usecase.NewInterpretationUseCase(
		interpreter,
		cacheRepo,
		log,
		cfg.Cache.InterpretationTTL,
	)
	zonalUC := usecase.NewZonalStatsUseCase(generator, catalogUC, interpretationUC, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewZonalHandler(zonalUC, interpretationUC, log),
		handler.NewCatalogHandler(catalogUC, log),
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
