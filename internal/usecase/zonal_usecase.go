package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/domain"
	"github.com/salar-zonal-stats/internal/usecase/dto"
)

// StatisticsGenerator - источник зональной статистики
type StatisticsGenerator interface {
	Generate(areaName string, index domain.SpectralIndex, year int, season domain.Season) *domain.ZonalResult
}

// ZonalStatsUseCase - use case для расчёта зональной статистики
type ZonalStatsUseCase struct {
	generator      StatisticsGenerator
	catalog        *CatalogUseCase
	interpretation *InterpretationUseCase
	logger         *zap.Logger
}

// NewZonalStatsUseCase - создание нового ZonalStatsUseCase
func NewZonalStatsUseCase(
	generator StatisticsGenerator,
	catalog *CatalogUseCase,
	interpretation *InterpretationUseCase,
	logger *zap.Logger,
) *ZonalStatsUseCase {
	return &ZonalStatsUseCase{
		generator:      generator,
		catalog:        catalog,
		interpretation: interpretation,
		logger:         logger,
	}
}

// Generate - расчёт статистики для зоны
func (uc *ZonalStatsUseCase) Generate(ctx context.Context, req dto.ZonalStatsRequest) (*domain.ZonalResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	areaName := uc.canonicalName(ctx, strings.TrimSpace(req.AreaName))
	index := domain.SpectralIndex(req.Index)
	if !index.IsKnown() {
		uc.logger.Warn("Unknown spectral index, using generic distribution",
			zap.String("index", req.Index),
		)
	}

	start := time.Now()
	result := uc.generator.Generate(areaName, index, req.Year, domain.Season(req.Season))

	uc.logger.Info("Zonal statistics generated",
		zap.String("area", result.AreaName),
		zap.String("index", string(result.IndexUsed)),
		zap.Int("year", req.Year),
		zap.Int("total_area_ha", result.TotalArea),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// Analyze - расчёт статистики с последующей интерпретацией
func (uc *ZonalStatsUseCase) Analyze(ctx context.Context, req dto.ZonalStatsRequest) (*dto.AnalysisResponse, error) {
	result, err := uc.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return &dto.AnalysisResponse{
		Result:         result,
		Interpretation: uc.interpretation.Interpret(ctx, result),
	}, nil
}

// canonicalName заменяет имя на каталожное, если салар известен
func (uc *ZonalStatsUseCase) canonicalName(ctx context.Context, name string) string {
	if uc.catalog == nil {
		return name
	}

	salar, err := uc.catalog.Resolve(ctx, name)
	if err != nil {
		uc.logger.Warn("Catalog lookup failed, using area name as is",
			zap.String("area", name),
			zap.Error(err),
		)
		return name
	}
	if salar == nil {
		return name
	}
	return salar.Name
}
