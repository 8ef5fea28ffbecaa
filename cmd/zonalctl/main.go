package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/config"
	"github.com/salar-zonal-stats/internal/domain/repository"
	"github.com/salar-zonal-stats/internal/infrastructure/anthropic"
	"github.com/salar-zonal-stats/internal/pkg/logger"
	"github.com/salar-zonal-stats/internal/repository/memory"
	"github.com/salar-zonal-stats/internal/usecase"
	"github.com/salar-zonal-stats/internal/zonal"
)

// app - зависимости команд CLI
type app struct {
	zonalUC   *usecase.ZonalStatsUseCase
	catalogUC *usecase.CatalogUseCase
}

// generatorFlags - параметры генератора, общие для generate и interpret
type generatorFlags struct {
	latency time.Duration
	seed    uint64
}

// appFactory собирает зависимости. Подменяется в тестах.
type appFactory func(flags generatorFlags) (*app, error)

func main() {
	if err := newRootCmd(defaultApp).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(factory appFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zonalctl",
		Short:         "Synthetic zonal statistics for Chilean salars",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(generateCmd(factory))
	rootCmd.AddCommand(interpretCmd(factory))
	rootCmd.AddCommand(salarsCmd(factory))

	return rootCmd
}

func defaultApp(flags generatorFlags) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Лог в stderr, чтобы не смешивать с выводом команды
	log := zap.NewNop()
	if cfg.Log.Level == "debug" {
		if log, err = logger.New(cfg.Log.Level, "console", "stderr"); err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	opts := []zonal.Option{zonal.WithLatency(flags.latency)}
	if flags.seed != 0 {
		opts = append(opts, zonal.WithSource(rand.NewPCG(flags.seed, flags.seed)))
	}

	return newApp(zonal.NewGenerator(opts...), anthropic.NewInterpreter(&cfg.Anthropic, log), log), nil
}

func newApp(generator usecase.StatisticsGenerator, interpreter repository.Interpreter, log *zap.Logger) *app {
	catalogUC := usecase.NewCatalogUseCase(memory.NewSalarRepository(), log)
	interpretationUC := usecase.NewInterpretationUseCase(interpreter, nil, log, 0)

	return &app{
		zonalUC:   usecase.NewZonalStatsUseCase(generator, catalogUC, interpretationUC, log),
		catalogUC: catalogUC,
	}
}
