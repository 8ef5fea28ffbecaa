package repository

import (
	"context"

	"github.com/salar-zonal-stats/internal/domain"
)

// SalarRepository определяет методы для работы с каталогом саларов
type SalarRepository interface {
	// List возвращает все салары, отсортированные по имени
	List(ctx context.Context) ([]domain.Salar, error)

	// ListByEnvironment возвращает салары заданного окружения
	ListByEnvironment(ctx context.Context, env domain.Environment) ([]domain.Salar, error)

	// GetByName ищет салар по имени без учёта регистра. Возвращает nil, nil если не найден
	GetByName(ctx context.Context, name string) (*domain.Salar, error)
}
