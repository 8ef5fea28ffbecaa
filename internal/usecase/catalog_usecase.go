package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/domain"
	"github.com/salar-zonal-stats/internal/domain/repository"
	"github.com/salar-zonal-stats/internal/pkg/errors"
	"github.com/salar-zonal-stats/internal/usecase/dto"
)

// CatalogUseCase - use case для каталога саларов и индексов
type CatalogUseCase struct {
	salarRepo repository.SalarRepository
	logger    *zap.Logger
}

// NewCatalogUseCase - создание нового CatalogUseCase
func NewCatalogUseCase(salarRepo repository.SalarRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		salarRepo: salarRepo,
		logger:    logger,
	}
}

// ListSalars - список саларов, опционально по типу окружения
func (uc *CatalogUseCase) ListSalars(ctx context.Context, environment string) (*dto.SalarsResponse, error) {
	var (
		salars []domain.Salar
		err    error
	)

	if environment == "" {
		salars, err = uc.salarRepo.List(ctx)
	} else {
		env := domain.Environment(environment)
		if !env.IsValid() {
			return nil, errors.ErrInvalidEnvironment.WithDetails(map[string]interface{}{
				"environment": environment,
			})
		}
		salars, err = uc.salarRepo.ListByEnvironment(ctx, env)
	}
	if err != nil {
		uc.logger.Error("Failed to list salars",
			zap.String("environment", environment),
			zap.Error(err),
		)
		return nil, errors.ErrCatalogUnavailable
	}

	if salars == nil {
		salars = []domain.Salar{}
	}

	return &dto.SalarsResponse{
		Salars: salars,
		Total:  len(salars),
	}, nil
}

// Resolve - поиск салара по имени. nil, nil если салар не найден
func (uc *CatalogUseCase) Resolve(ctx context.Context, name string) (*domain.Salar, error) {
	salar, err := uc.salarRepo.GetByName(ctx, name)
	if err != nil {
		return nil, errors.ErrCatalogUnavailable.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}
	return salar, nil
}

// ListIndices - известные индексы и выделяемые ими классы
func (uc *CatalogUseCase) ListIndices() *dto.IndicesResponse {
	indices := domain.SpectralIndices()
	infos := make([]domain.IndexInfo, 0, len(indices))
	for _, idx := range indices {
		info := domain.IndexInfo{Index: idx}
		if class, ok := domain.TargetClass(idx); ok {
			info.TargetClass = &class
		}
		infos = append(infos, info)
	}
	return &dto.IndicesResponse{Indices: infos}
}
