package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/domain"
	"github.com/salar-zonal-stats/internal/domain/repository"
)

const (
	// PlaceholderUnavailable возвращается, когда сервис интерпретации недоступен
	PlaceholderUnavailable = "AI analysis unavailable (check your API key)."
	// PlaceholderEmpty возвращается, когда модель не вернула текст
	PlaceholderEmpty = "Could not generate the analysis."
)

// InterpretationUseCase - use case для текстовой интерпретации статистики
type InterpretationUseCase struct {
	interpreter repository.Interpreter
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewInterpretationUseCase - создание нового InterpretationUseCase. cacheRepo может быть nil
func NewInterpretationUseCase(
	interpreter repository.Interpreter,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *InterpretationUseCase {
	return &InterpretationUseCase{
		interpreter: interpreter,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Interpret - интерпретация результата. Никогда не возвращает ошибку,
// при сбое возвращается текст-заглушка.
func (uc *InterpretationUseCase) Interpret(ctx context.Context, result *domain.ZonalResult) string {
	prompt := BuildPrompt(result)
	hash := promptHash(prompt)

	if uc.cacheRepo != nil {
		text, found, err := uc.cacheRepo.GetInterpretation(ctx, hash)
		if err != nil {
			uc.logger.Warn("Failed to get interpretation from cache", zap.Error(err))
		} else if found {
			uc.logger.Debug("Interpretation cache hit", zap.String("hash", hash))
			return text
		}
	}

	text, err := uc.interpreter.Interpret(ctx, prompt)
	if err != nil {
		uc.logger.Warn("Interpretation failed",
			zap.String("area", result.AreaName),
			zap.String("index", string(result.IndexUsed)),
			zap.Error(err),
		)
		return PlaceholderUnavailable
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return PlaceholderEmpty
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetInterpretation(ctx, hash, text, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache interpretation", zap.Error(err))
		}
	}

	return text
}
